package clock

import (
	"testing"
	"time"
)

func TestRealClock_Now(t *testing.T) {
	before := time.Now()
	got := RealClock{}.Now()
	after := time.Now()
	if got.Before(before) || got.After(after) {
		t.Fatalf("Now() = %v, want between %v and %v", got, before, after)
	}
}

func TestFixedClock_Now(t *testing.T) {
	fixed := time.Date(2025, 11, 6, 10, 30, 0, 0, time.UTC)
	c := NewFixed(fixed)
	if !c.Now().Equal(fixed) || !c.Now().Equal(c.Now()) {
		t.Fatalf("Now() = %v, want %v on every call", c.Now(), fixed)
	}
}

func TestOr(t *testing.T) {
	if _, ok := Or(nil).(RealClock); !ok {
		t.Fatalf("Or(nil) = %T, want RealClock", Or(nil))
	}
	fixed := NewFixed(time.Unix(0, 0))
	if got := Or(fixed); got != Clock(fixed) {
		t.Fatalf("Or(fixed) = %v, want %v", got, fixed)
	}
}
