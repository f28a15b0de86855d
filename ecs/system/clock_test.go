package system

import (
	"testing"
	"time"
)

func TestClockTicks(t *testing.T) {
	cases := []struct {
		name  string
		tps   int
		ticks int
		want  time.Duration
	}{
		{"round_at_60", 60, 3600, 60 * time.Second},
		{"marker_at_60", 60, 54, 900 * time.Millisecond},
		{"default_tps", 0, 60, time.Second},
		{"thirty_tps", 30, 45, 1500 * time.Millisecond},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			clock := NewClock(c.tps)
			for i := 0; i < c.ticks; i++ {
				clock.Update(nil)
			}
			if got := clock.Now(); got != c.want {
				t.Fatalf("Now() = %v, want %v", got, c.want)
			}
			if clock.Ticks() != int64(c.ticks) {
				t.Fatalf("Ticks() = %d, want %d", clock.Ticks(), c.ticks)
			}
		})
	}
}

func TestClockIntervalsAreExact(t *testing.T) {
	clock := NewClock(DefaultTPS)
	for i := 0; i < 7; i++ {
		clock.Advance()
	}
	start := clock.Now()
	for i := 0; i < 54; i++ {
		clock.Advance()
	}
	if got := clock.Now() - start; got != 900*time.Millisecond {
		t.Fatalf("54 ticks from an odd start = %v, want 900ms", got)
	}
	if clock.Step() != time.Second/60 {
		t.Fatalf("unexpected step %v", clock.Step())
	}
}
