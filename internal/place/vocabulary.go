package place

import "strings"

// Keyword maps a component-name fragment to its icon.
type Keyword struct {
	Word string
	Icon string
}

// vocabulary is matched in order and the first hit wins. Longer names sit
// ahead of the generic words they contain ("viewModel" before "view",
// "userSession" before "session"), so do not sort it.
var vocabulary = []Keyword{
	{"diContainer", "🫙"},
	{"tabBarController", "🎥"},
	{"viewController", "🎥"},
	{"overlayController", "🎥"},
	{"navigationController", "🧭"},
	{"rootView", "📺"},
	{"viewModel", "🧠"},
	{"repository", "🗄"},
	{"userSession", "🧔🏻‍♂️"},
	{"session", "💼"},
	{"configuration", "🧾"},
	{"customization", "👕"},
	{"keychain", "🔐"},
	{"useCase", "🎞"},
	{"textField", "✍️"},
	{"factory", "🏭"},
	{"coder", "👨‍💻"},
	{"manager", "🤖"},
	{"view", "🏙️"},
	{"cell", "🏙️"},
	{"helper", "🙏"},
	{"button", "⏺️"},
	{"database", "📀"},
	{"tabBar", "🗂️"},
	{"node", "🏙️"},
	{"engine", "🔧"},
}

var loweredVocabulary = func() []string {
	out := make([]string, len(vocabulary))
	for i, kw := range vocabulary {
		out[i] = strings.ToLower(kw.Word)
	}
	return out
}()

// IconFor returns the icon of the first vocabulary keyword contained in
// component, ignoring case, or Sentinel when none is.
func IconFor(component string) string {
	lowered := strings.ToLower(component)
	for i, word := range loweredVocabulary {
		if strings.Contains(lowered, word) {
			return vocabulary[i].Icon
		}
	}
	return Sentinel
}

// Vocabulary returns a copy of the keyword table in match order.
func Vocabulary() []Keyword {
	return append([]Keyword(nil), vocabulary...)
}
