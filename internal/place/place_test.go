package place

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive_ViewModelScenario(t *testing.T) {
	p := Derive("/app/Sources/UserViewModel.swift", "", 42)

	assert.Equal(t, "UserViewModel", p.Component)
	assert.Equal(t, "", p.TypeLabel)
	assert.Equal(t, 42, p.Line)
	assert.Equal(t, "🧠", p.Icon)
	assert.Equal(t, " 🧠 UserViewModel:42 ===", p.SmallPrefix())
}

func TestDerive_Deterministic(t *testing.T) {
	a := Derive(`C:\src\Cart.viewModel.swift`, "Cart", 7)
	b := Derive(`C:\src\Cart.viewModel.swift`, "Cart", 7)
	assert.Equal(t, a, b)
}

func TestComponentName(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"unix path", "/a/b/LoginManager.swift", "LoginManager"},
		{"windows path", `C:\a\b\LoginManager.go`, "LoginManager"},
		{"mixed separators", `/a\b/LoginManager.go`, "LoginManager"},
		{"no directory", "LoginManager.go", "LoginManager"},
		{"no extension", "/a/LoginManager", "LoginManager"},
		{"trailing separator", "/a/LoginManager.go/", "LoginManager"},
		{"compound name", "/a/LCLogger.viewController.swift", "LCLoggerViewController"},
		{"three segments", "user.profile.view.go", "userProfileView"},
		{"empty segment skipped", "cart..cell.go", "cartCell"},
		{"hidden file", "/a/.env", "Env"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, componentName(tt.path))
		})
	}
}

func TestDerive_TypeLabel(t *testing.T) {
	p := Derive("/a/CartRepository.go", "Cart", 3)
	assert.Equal(t, "(Cart)", p.TypeLabel)
	assert.Equal(t, "CartRepository(Cart)", p.Raw())
	assert.Equal(t, " 🗄 CartRepository(Cart):3 ===", p.SmallPrefix())
}

func TestIconFor_FirstMatchWins(t *testing.T) {
	tests := []struct {
		component string
		want      string
	}{
		{"UserViewModel", "🧠"},
		{"MainViewController", "🎥"},
		{"ProfileView", "🏙️"},
		{"UserSessionManager", "🧔🏻‍♂️"},
		{"SessionManager", "💼"},
		{"ViewModelFactory", "🧠"},
		{"TabBarController", "🎥"},
		{"TabBar", "🗂️"},
		{"AppDIContainer", "🫙"},
		{"ImageDecoder", "👨‍💻"},
		{"RenderEngine", "🔧"},
		{"sqlitedatabase", "📀"},
		{"Main", Sentinel},
		{"", Sentinel},
	}
	for _, tt := range tests {
		t.Run(tt.component, func(t *testing.T) {
			assert.Equal(t, tt.want, IconFor(tt.component))
		})
	}
}

func TestIconFor_UsesComponentNotTypeLabel(t *testing.T) {
	p := Derive("/a/Main.go", "Manager", 1)
	assert.Equal(t, Sentinel, p.Icon)
}

func TestPrefix_PadsToWidth(t *testing.T) {
	p := Derive("/a/SomeManager.swift", "", 1)
	got := p.Prefix()

	// icon(1) + "SomeManager"(11) + 5 = 17, so 33 spaces.
	want := " 🤖 SomeManager" + strings.Repeat(" ", 33) + "==="
	assert.Equal(t, want, got)
}

func TestPrefix_SentinelSubtractsOne(t *testing.T) {
	p := Derive("/a/Main.go", "", 1)

	// "==="(3) + "Main"(4) + 5 - 1 = 11, so 39 spaces.
	want := " === Main" + strings.Repeat(" ", 39) + "==="
	assert.Equal(t, want, p.Prefix())
}

func TestPrefix_CountsGraphemesNotBytes(t *testing.T) {
	p := Derive("/a/UserSession.go", "", 1)
	require.Equal(t, "🧔🏻‍♂️", p.Icon)

	// The icon is one grapheme: 1 + 11 + 5 = 17.
	want := " 🧔🏻‍♂️ UserSession" + strings.Repeat(" ", 33) + "==="
	assert.Equal(t, want, p.Prefix())
}

func TestPrefix_LongNamesKeepOneSpace(t *testing.T) {
	long := strings.Repeat("x", 60) + "Manager"
	p := Derive("/a/"+long+".go", "", 1)
	assert.True(t, strings.HasSuffix(p.Prefix(), long+" ==="), "prefix = %q", p.Prefix())
}

func TestSmallPrefix_LineRoundTrips(t *testing.T) {
	for _, line := range []int{0, 1, 42, 100000} {
		p := Derive("/a/Thing.go", "", line)
		assert.True(t, strings.HasSuffix(p.SmallPrefix(), ":"+strconv.Itoa(line)+" ==="), "small prefix = %q", p.SmallPrefix())
		assert.Equal(t, line, p.Line)
	}
}

func TestVocabulary_ReturnsCopy(t *testing.T) {
	v := Vocabulary()
	require.NotEmpty(t, v)
	assert.Equal(t, "diContainer", v[0].Word)
	assert.Equal(t, "engine", v[len(v)-1].Word)

	v[0].Icon = "x"
	assert.Equal(t, "🫙", Vocabulary()[0].Icon)
}
