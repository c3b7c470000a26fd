package console

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/devlog/internal/clock"
	"github.com/five82/devlog/internal/record"
	"github.com/five82/devlog/internal/state"
)

func newTestLogger(opts ...Option) (*Logger, *state.Store, *bytes.Buffer) {
	store := &state.Store{}
	var out bytes.Buffer
	fixed := clock.NewFixed(time.Date(2025, 1, 2, 10, 0, 0, 0, time.Local))
	opts = append([]Option{WithOutput(&out), WithClock(fixed)}, opts...)
	return New(store, opts...), store, &out
}

func TestLog_AppendsAndEchoes(t *testing.T) {
	l, store, out := newTestLogger()

	l.Log("Test", At("/app/Sources/UserViewModel.swift", 42))

	snap := store.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "10:00:00 === 🧠 UserViewModel:42 === Test ===", snap[0].Formatted())
	assert.Equal(t, snap[0].Formatted()+"\n", out.String())
}

func TestLog_CapturesCallSite(t *testing.T) {
	l, store, _ := newTestLogger()

	l.Log("here")

	snap := store.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "console_test", snap[0].Place.Component)
	assert.Positive(t, snap[0].Place.Line)
}

func TestCallSite_SameForEveryMethod(t *testing.T) {
	l, store, _ := newTestLogger()

	l.Log("a")
	l.Construct(nil)
	l.Destruct(nil)
	l.Error(errors.New("x"))
	l.Spacer()

	for _, r := range store.Snapshot() {
		assert.Equal(t, "console_test", r.Place.Component, "kind %s", r.Kind)
	}
}

func TestLog_WithType(t *testing.T) {
	l, store, _ := newTestLogger()

	l.Log(1, WithType("Cart"), At("/a/CartManager.go", 5))

	r := store.Snapshot()[0]
	assert.Equal(t, "1", r.Message)
	assert.Equal(t, " 🤖 CartManager(Cart):5 ===", r.Place.SmallPrefix())
}

func TestLifecycle_CountersIndependent(t *testing.T) {
	l, store, _ := newTestLogger()
	at := At("/a/SomeManager.swift", 1)

	l.Construct(nil, at)
	l.Destruct("gone", at)
	l.Construct(nil, at)
	l.Destruct(nil, at)
	l.Construct("third", at)

	var constructs, destructs []int
	for _, r := range store.Snapshot() {
		switch r.Kind {
		case record.KindConstruct:
			constructs = append(constructs, r.Seq)
		case record.KindDestruct:
			destructs = append(destructs, r.Seq)
		}
	}
	assert.Equal(t, []int{1, 2, 3}, constructs)
	assert.Equal(t, []int{1, 2}, destructs)
}

func TestConstruct_EmptyMessageHasNoSuffix(t *testing.T) {
	l, store, _ := newTestLogger()

	l.Construct(nil, At("/a/SomeManager.swift", 1))

	got := store.Snapshot()[0].Formatted()
	assert.True(t, strings.HasPrefix(got, "1    INIT  🤖 SomeManager "), "formatted = %q", got)
	assert.True(t, strings.HasSuffix(got, "==="), "formatted = %q", got)
}

func TestDisabled_RecordsNothingButCountsAdvance(t *testing.T) {
	l, store, out := newTestLogger(WithEnabled(false))
	at := At("/a/SomeManager.swift", 1)

	l.Log("hidden", at)
	l.Construct(nil, at)
	l.Destruct(nil, at)
	assert.False(t, l.Enabled())
	assert.Zero(t, store.Len())
	assert.Empty(t, out.String())

	l.SetEnabled(true)
	l.Construct(nil, at)
	l.Destruct(nil, at)

	snap := store.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, 2, snap[0].Seq)
	assert.Equal(t, 2, snap[1].Seq)
}

func TestEcho_PrefixAndSuffix(t *testing.T) {
	l, _, out := newTestLogger(WithPrefix("APP"), WithSuffix("<<"))

	l.Log("hi", At("/a/Main.go", 3))

	assert.Equal(t, "APP - 10:00:00 === === Main:3 === hi === <<\n", out.String())
}

func TestEcho_NoOutputWriter(t *testing.T) {
	store := &state.Store{}
	l := New(store)

	l.Log("quiet")

	assert.Equal(t, 1, store.Len())
}

type describedErr struct{}

func (describedErr) Error() string            { return "raw" }
func (describedErr) ErrorDescription() string { return "described" }

func TestError_Messages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"plain", errors.New("boom"), "‼️ Error: boom"},
		{"describer", describedErr{}, "‼️ Error: described"},
		{"wrapped describer", fmt.Errorf("load: %w", describedErr{}), "‼️ Error: described"},
		{"nil", nil, "‼️ Error: <nil>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, store, _ := newTestLogger()
			l.Error(tt.err)
			assert.Equal(t, tt.want, store.Snapshot()[0].Message)
		})
	}
}

func TestSpacer(t *testing.T) {
	l, store, _ := newTestLogger()

	l.Spacer(At("/a/Main.go", 1))

	r := store.Snapshot()[0]
	assert.Equal(t, SpacerText, r.Message)
	assert.Equal(t, record.KindPlain, r.Kind)
}
