package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// truncate shortens s to at most width terminal cells.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// indexFold reports the byte range of the first case-insensitive occurrence
// of substr in s. ok is false when there is none or substr is empty.
func indexFold(s, substr string) (start, end int, ok bool) {
	if substr == "" {
		return 0, 0, false
	}
	for i := 0; i < len(s); {
		if n := prefixFold(s[i:], substr); n > 0 {
			return i, i + n, true
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return 0, 0, false
}

// prefixFold returns how many bytes of s match prefix ignoring case, or 0.
func prefixFold(s, prefix string) int {
	n := 0
	for prefix != "" {
		if s == "" {
			return 0
		}
		pr, psize := utf8.DecodeRuneInString(prefix)
		sr, ssize := utf8.DecodeRuneInString(s)
		if pr != sr && !strings.EqualFold(string(pr), string(sr)) {
			return 0
		}
		prefix, s = prefix[psize:], s[ssize:]
		n += ssize
	}
	return n
}
