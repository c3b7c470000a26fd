package ui

import (
	"sync/atomic"

	"github.com/five82/devlog/internal/record"
	"github.com/five82/devlog/internal/state"
)

// feed is the store observer behind the view. OnAppended runs on whichever
// goroutine appended, so it only parks the newest sequence; the refresh tick
// takes it. Between two ticks any number of appends collapse into one refresh
// carrying the latest records.
type feed struct {
	pending atomic.Pointer[[]record.Record]
}

// OnAppended parks records unless a longer sequence is already parked.
// Concurrent appends may notify out of order; the store only grows, so the
// longer sequence is the newer one.
func (f *feed) OnAppended(records []record.Record) {
	for {
		cur := f.pending.Load()
		if cur != nil && len(*cur) >= len(records) {
			return
		}
		if f.pending.CompareAndSwap(cur, &records) {
			return
		}
	}
}

// take returns the parked sequence and clears it, or nil when nothing was
// appended since the last call.
func (f *feed) take() []record.Record {
	p := f.pending.Swap(nil)
	if p == nil {
		return nil
	}
	return *p
}

func subscribe(store *state.Store) (*feed, func()) {
	f := &feed{}
	return f, store.Subscribe(f)
}
