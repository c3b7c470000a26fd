// Package record defines the immutable console log record and its display format.
package record

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/five82/devlog/internal/clock"
	"github.com/five82/devlog/internal/place"
)

// Kind distinguishes plain messages from object lifecycle events.
type Kind int

const (
	KindPlain Kind = iota
	KindConstruct
	KindDestruct
)

func (k Kind) String() string {
	switch k {
	case KindConstruct:
		return "construct"
	case KindDestruct:
		return "destruct"
	default:
		return "plain"
	}
}

const timestampLayout = "15:04:05"

// Location is the source position a record is attributed to.
type Location struct {
	File string
	Line int
}

// Record is a single console entry. It is fully determined at construction
// and never changed afterwards; copies are safe to share.
type Record struct {
	ID        uuid.UUID
	Message   string
	Place     place.Place
	Timestamp string // HH:MM:SS
	Kind      Kind
	Seq       int // construct/destruct sequence number, zero for plain records
}

// Builder creates records stamped with the time of its clock.
type Builder struct {
	Clock clock.Clock
}

// Build derives the place from loc and typeLabel and stringifies message.
func (b Builder) Build(message any, typeLabel string, loc Location, kind Kind, seq int) Record {
	if kind == KindPlain {
		seq = 0
	}
	return Record{
		ID:        uuid.New(),
		Message:   Stringify(message),
		Place:     place.Derive(loc.File, typeLabel, loc.Line),
		Timestamp: clock.Or(b.Clock).Now().Format(timestampLayout),
		Kind:      kind,
		Seq:       seq,
	}
}

// Stringify renders any value the way the console displays it; nil is empty.
func Stringify(message any) string {
	switch v := message.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Formatted is the display string shown by the console and used for search.
func (r Record) Formatted() string {
	suffix := ""
	if r.Message != "" {
		suffix = " (" + r.Message + ")"
	}
	switch r.Kind {
	case KindConstruct:
		return fmt.Sprintf("%d    INIT %s", r.Seq, r.Place.Prefix()) + suffix
	case KindDestruct:
		return fmt.Sprintf("%d  DEINIT %s", r.Seq, r.Place.Prefix()) + suffix
	default:
		return fmt.Sprintf("%s ===%s %s ===", r.Timestamp, r.Place.SmallPrefix(), r.Message)
	}
}
