package state

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/five82/devlog/internal/record"
)

// Observer is notified after every append with the full updated sequence.
// The slice is a read-only view shared with other observers; do not modify it.
type Observer interface {
	OnAppended(records []record.Record)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(records []record.Record)

// OnAppended calls f.
func (f ObserverFunc) OnAppended(records []record.Record) { f(records) }

type subscription struct {
	id  uint64
	obs Observer
}

// Store is the append-only console buffer. The zero value is ready to use.
type Store struct {
	mu        sync.RWMutex
	records   []record.Record
	observers []subscription
	nextSubID uint64

	constructs atomic.Int64
	destructs  atomic.Int64
}

// Append adds r to the end of the sequence and notifies observers in the
// order they subscribed, in the caller's goroutine.
func (s *Store) Append(r record.Record) {
	s.mu.Lock()
	s.records = append(s.records, r)
	// Entries below len are never rewritten, so a clipped slice is an
	// immutable view even while later appends grow the backing array.
	view := slices.Clip(s.records)
	observers := slices.Clone(s.observers)
	s.mu.Unlock()

	for _, sub := range observers {
		sub.obs.OnAppended(view)
	}
}

// Snapshot returns a copy of the current contents.
func (s *Store) Snapshot() []record.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneRecords(s.records)
}

// Len returns the number of records appended so far.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Subscribe registers obs for future appends. The returned func removes it
// and may be called any number of times.
func (s *Store) Subscribe(obs Observer) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSubID++
	id := s.nextSubID
	s.observers = append(s.observers, subscription{id: id, obs: obs})

	var once sync.Once
	return func() {
		once.Do(func() { s.unsubscribe(id) })
	}
}

func (s *Store) unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = slices.DeleteFunc(s.observers, func(sub subscription) bool {
		return sub.id == id
	})
}

// NextConstruct returns the next construct sequence number, starting at 1.
func (s *Store) NextConstruct() int {
	return int(s.constructs.Add(1))
}

// NextDestruct returns the next destruct sequence number, starting at 1.
func (s *Store) NextDestruct() int {
	return int(s.destructs.Add(1))
}

func cloneRecords(records []record.Record) []record.Record {
	if len(records) == 0 {
		return nil
	}
	dup := make([]record.Record, len(records))
	copy(dup, records)
	return dup
}
