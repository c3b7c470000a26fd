package console

import (
	"runtime"

	"github.com/five82/devlog/internal/record"
)

// userFrame is the depth of the exported method's caller as seen from
// callerLocation: callerLocation <- resolve <- Logger method <- user.
const userFrame = 3

// CallOption adjusts a single logging call.
type CallOption func(*call)

type call struct {
	typeLabel string
	loc       record.Location
	explicit  bool
}

// WithType annotates the record with a type label shown after the component.
func WithType(label string) CallOption {
	return func(c *call) { c.typeLabel = label }
}

// At attributes the record to file and line instead of the caller.
func At(file string, line int) CallOption {
	return func(c *call) {
		c.loc = record.Location{File: file, Line: line}
		c.explicit = true
	}
}

// resolve must be called directly from an exported Logger method.
func resolve(opts []CallOption) call {
	var c call
	for _, opt := range opts {
		opt(&c)
	}
	if !c.explicit {
		c.loc = callerLocation(userFrame)
	}
	return c
}

func callerLocation(depth int) record.Location {
	_, file, line, ok := runtime.Caller(depth)
	if !ok {
		return record.Location{}
	}
	return record.Location{File: file, Line: line}
}
