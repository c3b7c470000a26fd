package console

import (
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap/zapcore"

	"github.com/five82/devlog/internal/record"
)

type zapCore struct {
	zapcore.LevelEnabler
	logger *Logger
	fields []zapcore.Field
}

// NewZapCore returns a zapcore.Core that writes entries into l. The entry
// caller supplies the call site and a named logger's name becomes the type
// label.
func NewZapCore(l *Logger, enab zapcore.LevelEnabler) zapcore.Core {
	return &zapCore{LevelEnabler: enab, logger: l}
}

func (c *zapCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = append(slices.Clone(c.fields), fields...)
	return &clone
}

func (c *zapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) && c.logger.Enabled() {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *zapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	parts := make([]string, 0, len(enc.Fields))
	for _, k := range slices.Sorted(maps.Keys(enc.Fields)) {
		parts = append(parts, fmt.Sprintf("%s=%v", k, enc.Fields[k]))
	}

	tag := ""
	if ent.Level != zapcore.InfoLevel {
		tag = ent.Level.CapitalString()
	}

	cl := call{typeLabel: ent.LoggerName, explicit: true}
	if ent.Caller.Defined {
		cl.loc = record.Location{File: ent.Caller.File, Line: ent.Caller.Line}
	}
	c.logger.emit(record.KindPlain, 0, joinMessage(tag, ent.Message, parts), cl)
	return nil
}

func (c *zapCore) Sync() error { return nil }
