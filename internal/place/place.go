// Package place derives the human-readable call-site tag attached to every
// console record: an icon chosen from the component name plus the component,
// an optional type annotation and the source line.
package place

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Sentinel is the icon used when no vocabulary keyword matches.
const Sentinel = "==="

// prefixWidth is the rendered width Prefix pads towards.
const prefixWidth = 50

// Place identifies where a record originated.
type Place struct {
	Component string // file name without directories or extension, camel-joined
	TypeLabel string // "(label)" or empty
	Line      int
	Icon      string
}

// Derive builds a Place from a source file path, an optional type annotation
// and a line number. It accepts any input.
func Derive(filePath, typeLabel string, line int) Place {
	component := componentName(filePath)
	if typeLabel != "" {
		typeLabel = "(" + typeLabel + ")"
	}
	return Place{
		Component: component,
		TypeLabel: typeLabel,
		Line:      line,
		Icon:      IconFor(component),
	}
}

// Raw returns the component followed by its type label.
func (p Place) Raw() string {
	return p.Component + p.TypeLabel
}

// Prefix is the verbose, column-aligned tag used by lifecycle records.
func (p Place) Prefix() string {
	raw := p.Raw()
	length := uniseg.GraphemeClusterCount(p.Icon) + uniseg.GraphemeClusterCount(raw) + 5
	if p.Icon == Sentinel {
		length--
	}
	spaces := max(prefixWidth-length, 1)
	return fmt.Sprintf(" %s %s%s===", p.Icon, raw, strings.Repeat(" ", spaces))
}

// SmallPrefix is the compact tag used by plain records.
func (p Place) SmallPrefix() string {
	return fmt.Sprintf(" %s %s:%d ===", p.Icon, p.Raw(), p.Line)
}

// componentName strips directories and the extension from path and joins
// dot-separated segments camel-case style ("User.viewModel" -> "UserViewModel").
func componentName(path string) string {
	name := strings.TrimRight(path, `/\`)
	if idx := strings.LastIndexAny(name, `/\`); idx >= 0 {
		name = name[idx+1:]
	}
	// A leading dot marks a hidden file, not an extension.
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}

	var b strings.Builder
	for i, part := range strings.Split(name, ".") {
		if part == "" {
			continue
		}
		if i == 0 {
			b.WriteString(part)
			continue
		}
		r, size := utf8.DecodeRuneInString(part)
		b.WriteString(strings.ToUpper(string(r)))
		b.WriteString(part[size:])
	}
	return b.String()
}
