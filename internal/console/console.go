// Package console is the logging facade: it builds records for plain and
// lifecycle messages, echoes them to an optional writer and appends them to
// the store the console view reads.
package console

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/five82/devlog/internal/clock"
	"github.com/five82/devlog/internal/record"
)

const (
	// SpacerText is the message written by Spacer.
	SpacerText = "-=-=-=-=-=-=-=-=-=-=-=-=-=-=-"
	// ErrorPrefix starts every message written by Error.
	ErrorPrefix = "‼️ Error: "
)

// Sink receives records and hands out lifecycle sequence numbers.
// *state.Store implements it.
type Sink interface {
	Append(r record.Record)
	NextConstruct() int
	NextDestruct() int
}

// ErrorDescriber lets an error supply the text Error logs instead of Error().
type ErrorDescriber interface {
	ErrorDescription() string
}

// Logger records console messages. It is safe for concurrent use.
type Logger struct {
	sink    Sink
	builder record.Builder
	enabled atomic.Bool

	outMu  sync.Mutex
	out    io.Writer
	prefix string
	suffix string
}

// Option configures a Logger.
type Option func(*Logger)

// WithOutput echoes every formatted record to w, one per line.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) { l.out = w }
}

// WithPrefix sets the text written before each echoed line.
func WithPrefix(prefix string) Option {
	return func(l *Logger) { l.prefix = prefix }
}

// WithSuffix sets the text written after each echoed line.
func WithSuffix(suffix string) Option {
	return func(l *Logger) { l.suffix = suffix }
}

// WithClock sets the clock used for record timestamps.
func WithClock(c clock.Clock) Option {
	return func(l *Logger) { l.builder.Clock = c }
}

// WithEnabled sets the initial enabled state. Loggers start enabled.
func WithEnabled(enabled bool) Option {
	return func(l *Logger) { l.enabled.Store(enabled) }
}

// New returns a Logger appending to sink.
func New(sink Sink, opts ...Option) *Logger {
	l := &Logger{sink: sink}
	l.enabled.Store(true)
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SetEnabled turns recording and echoing on or off. Lifecycle counters keep
// advancing while disabled.
func (l *Logger) SetEnabled(enabled bool) { l.enabled.Store(enabled) }

// Enabled reports whether the logger records messages.
func (l *Logger) Enabled() bool { return l.enabled.Load() }

// Log records a plain message.
func (l *Logger) Log(message any, opts ...CallOption) {
	l.emit(record.KindPlain, 0, message, resolve(opts))
}

// Construct records an object construction.
func (l *Logger) Construct(message any, opts ...CallOption) {
	c := resolve(opts)
	l.emit(record.KindConstruct, l.sink.NextConstruct(), message, c)
}

// Destruct records an object destruction.
func (l *Logger) Destruct(message any, opts ...CallOption) {
	c := resolve(opts)
	l.emit(record.KindDestruct, l.sink.NextDestruct(), message, c)
}

// Error records err as a plain message.
func (l *Logger) Error(err error, opts ...CallOption) {
	l.emit(record.KindPlain, 0, ErrorPrefix+describe(err), resolve(opts))
}

// Spacer records a visual separator line.
func (l *Logger) Spacer(opts ...CallOption) {
	l.emit(record.KindPlain, 0, SpacerText, resolve(opts))
}

func (l *Logger) emit(kind record.Kind, seq int, message any, c call) {
	if !l.Enabled() {
		return
	}
	r := l.builder.Build(message, c.typeLabel, c.loc, kind, seq)
	l.echo(r.Formatted())
	l.sink.Append(r)
}

func (l *Logger) echo(line string) {
	if l.out == nil {
		return
	}
	if l.prefix != "" {
		line = l.prefix + " - " + line
	}
	if l.suffix != "" {
		line += " " + l.suffix
	}

	l.outMu.Lock()
	defer l.outMu.Unlock()
	_, _ = fmt.Fprintln(l.out, line)
}

func describe(err error) string {
	if err == nil {
		return "<nil>"
	}
	var d ErrorDescriber
	if errors.As(err, &d) {
		return d.ErrorDescription()
	}
	return err.Error()
}
