package state

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/devlog/internal/record"
)

func makeRecord(i int) record.Record {
	return record.Builder{}.Build(fmt.Sprintf("msg %d", i), "", record.Location{File: "/a/Thing.go", Line: i}, record.KindPlain, 0)
}

func TestStore_AppendPreservesOrder(t *testing.T) {
	var s Store

	var appended []record.Record
	for i := 0; i < 25; i++ {
		r := makeRecord(i)
		appended = append(appended, r)
		s.Append(r)
	}

	snap := s.Snapshot()
	require.Len(t, snap, 25)
	assert.Equal(t, appended, snap)
	assert.Equal(t, 25, s.Len())
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	var s Store
	s.Append(makeRecord(1))

	snap := s.Snapshot()
	snap[0].Message = "changed"

	assert.Equal(t, "msg 1", s.Snapshot()[0].Message)
}

func TestStore_EmptySnapshot(t *testing.T) {
	var s Store
	assert.Empty(t, s.Snapshot())
	assert.Zero(t, s.Len())
}

func TestStore_ObserversNotifiedInOrderWithFullSequence(t *testing.T) {
	var s Store
	var calls []string

	s.Subscribe(ObserverFunc(func(records []record.Record) {
		calls = append(calls, fmt.Sprintf("first:%d", len(records)))
	}))
	s.Subscribe(ObserverFunc(func(records []record.Record) {
		calls = append(calls, fmt.Sprintf("second:%d", len(records)))
	}))

	s.Append(makeRecord(1))
	s.Append(makeRecord(2))

	assert.Equal(t, []string{"first:1", "second:1", "first:2", "second:2"}, calls)
}

func TestStore_ObserverViewIsStableAcrossAppends(t *testing.T) {
	var s Store
	var views [][]record.Record
	s.Subscribe(ObserverFunc(func(records []record.Record) {
		views = append(views, records)
	}))

	first := makeRecord(1)
	s.Append(first)
	for i := 2; i <= 10; i++ {
		s.Append(makeRecord(i))
	}

	require.Len(t, views, 10)
	require.Len(t, views[0], 1)
	assert.Equal(t, first, views[0][0])
	assert.Len(t, views[9], 10)
}

func TestStore_CancelStopsNotifications(t *testing.T) {
	var s Store
	count := 0
	cancel := s.Subscribe(ObserverFunc(func([]record.Record) { count++ }))

	s.Append(makeRecord(1))
	cancel()
	cancel()
	s.Append(makeRecord(2))

	assert.Equal(t, 1, count)
	assert.Equal(t, 2, s.Len())
}

func TestStore_ObserverMayAppend(t *testing.T) {
	var s Store
	s.Subscribe(ObserverFunc(func(records []record.Record) {
		if len(records) == 1 {
			s.Append(makeRecord(99))
		}
	}))

	s.Append(makeRecord(1))

	snap := s.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "msg 99", snap[1].Message)
}

func TestStore_CountersAreIndependent(t *testing.T) {
	var s Store

	var constructs, destructs []int
	constructs = append(constructs, s.NextConstruct())
	destructs = append(destructs, s.NextDestruct())
	constructs = append(constructs, s.NextConstruct())
	constructs = append(constructs, s.NextConstruct())
	destructs = append(destructs, s.NextDestruct())

	assert.Equal(t, []int{1, 2, 3}, constructs)
	assert.Equal(t, []int{1, 2}, destructs)
}

func TestStore_ConcurrentAppends(t *testing.T) {
	var s Store
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				s.Append(makeRecord(i))
				_ = s.Snapshot()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 800, s.Len())
}
