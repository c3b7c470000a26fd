package console

import (
	"context"
	"log/slog"
	"runtime"
	"slices"
	"strings"

	"github.com/five82/devlog/internal/record"
)

// typeAttrKey names the top-level attribute used as the record type label.
const typeAttrKey = "type"

// Handler is a slog.Handler that writes into a console Logger. The record's
// PC supplies the call site; attributes are appended to the message as
// key=value pairs.
type Handler struct {
	logger    *Logger
	level     slog.Leveler
	attrs     []string
	typeLabel string
	groups    []string
}

// NewHandler returns a handler for l. A nil level means slog.LevelInfo.
func NewHandler(l *Logger, level slog.Leveler) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{logger: l, level: level}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level() && h.logger.Enabled()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	c := call{typeLabel: h.typeLabel, explicit: true}
	if r.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		f, _ := frames.Next()
		c.loc = record.Location{File: f.File, Line: f.Line}
	}

	parts := slices.Clone(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		if len(h.groups) == 0 && a.Key == typeAttrKey {
			c.typeLabel = a.Value.String()
			return true
		}
		parts = appendAttr(parts, h.groups, a)
		return true
	})

	h.logger.emit(record.KindPlain, 0, joinMessage(levelTag(r.Level), r.Message, parts), c)
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := h.clone()
	for _, a := range attrs {
		if len(h.groups) == 0 && a.Key == typeAttrKey {
			nh.typeLabel = a.Value.String()
			continue
		}
		nh.attrs = appendAttr(nh.attrs, h.groups, a)
	}
	return nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := h.clone()
	nh.groups = append(nh.groups, name)
	return nh
}

func (h *Handler) clone() *Handler {
	nh := *h
	nh.attrs = slices.Clone(h.attrs)
	nh.groups = slices.Clone(h.groups)
	return &nh
}

func appendAttr(parts []string, groups []string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return parts
	}
	if a.Value.Kind() == slog.KindGroup {
		inner := groups
		if a.Key != "" {
			inner = append(slices.Clone(groups), a.Key)
		}
		for _, ga := range a.Value.Group() {
			parts = appendAttr(parts, inner, ga)
		}
		return parts
	}
	key := a.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}
	return append(parts, key+"="+a.Value.String())
}

func levelTag(level slog.Level) string {
	if level == slog.LevelInfo {
		return ""
	}
	return level.String()
}

func joinMessage(tag, msg string, parts []string) string {
	var b strings.Builder
	if tag != "" {
		b.WriteString(tag)
		b.WriteString(" ")
	}
	b.WriteString(msg)
	for _, p := range parts {
		b.WriteString(" ")
		b.WriteString(p)
	}
	return b.String()
}
