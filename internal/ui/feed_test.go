package ui

import (
	"testing"

	"github.com/five82/devlog/internal/record"
	"github.com/five82/devlog/internal/state"
)

func TestFeed_KeepsOnlyLatest(t *testing.T) {
	store := &state.Store{}
	f, cancel := subscribe(store)
	defer cancel()

	if got := f.take(); got != nil {
		t.Fatalf("take() on idle feed = %v, want nil", got)
	}

	for i := range 5 {
		store.Append(record.Record{Message: string(rune('a' + i))})
	}
	got := f.take()
	if len(got) != 5 || got[4].Message != "e" {
		t.Fatalf("take() = %+v, want the five records", got)
	}
	if again := f.take(); again != nil {
		t.Fatalf("second take() = %v, want nil", again)
	}
}

func TestFeed_CancelStopsUpdates(t *testing.T) {
	store := &state.Store{}
	f, cancel := subscribe(store)
	cancel()

	store.Append(record.Record{Message: "x"})
	if got := f.take(); got != nil {
		t.Fatalf("take() after cancel = %v, want nil", got)
	}
}

func TestFeed_IgnoresOlderNotification(t *testing.T) {
	f := &feed{}
	newer := []record.Record{{Message: "a"}, {Message: "b"}}

	f.OnAppended(newer)
	f.OnAppended(newer[:1])

	if got := f.take(); len(got) != 2 {
		t.Fatalf("take() = %d records, want 2", len(got))
	}
}
