package debounce

import (
	"testing"
	"time"
)

var base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return base.Add(time.Duration(ms) * time.Millisecond)
}

func TestFirstNavigationAlwaysAnimates(t *testing.T) {
	d := New(417 * time.Millisecond)
	if !d.ShouldAnimate(1, at(0)) {
		t.Fatalf("expected first navigation to animate")
	}
}

func TestRapidNavigationSnapsToStill(t *testing.T) {
	d := New(417 * time.Millisecond)
	d.ShouldAnimate(7, at(0))
	if d.ShouldAnimate(7, at(100)) {
		t.Fatalf("expected navigation 100ms after the last to be suppressed")
	}
}

func TestWindowMeasuredFromLastRecordedEvent(t *testing.T) {
	d := New(417 * time.Millisecond)
	if !d.ShouldAnimate(7, at(0)) {
		t.Fatalf("expected t=0 to animate")
	}
	if d.ShouldAnimate(7, at(100)) {
		t.Fatalf("expected t=100 to be suppressed (100 < 417)")
	}
	// The suppressed event still recorded its timestamp, so the next delta
	// is measured from t=100, not t=0.
	if !d.ShouldAnimate(7, at(600)) {
		t.Fatalf("expected t=600 to animate (500 >= 417)")
	}
}

func TestExactWindowBoundaryAnimates(t *testing.T) {
	d := New(417 * time.Millisecond)
	d.ShouldAnimate(3, at(0))
	if !d.ShouldAnimate(3, at(417)) {
		t.Fatalf("expected delta == window to animate")
	}
}

func TestTabsAreIndependent(t *testing.T) {
	d := New(417 * time.Millisecond)
	d.ShouldAnimate(1, at(0))
	if !d.ShouldAnimate(2, at(50)) {
		t.Fatalf("expected tab 2's first navigation to animate despite tab 1's history")
	}
}

func TestSuppressionHoldsAcrossBurst(t *testing.T) {
	d := New(417 * time.Millisecond)
	d.ShouldAnimate(5, at(0))
	for _, ms := range []int{100, 200, 300, 400, 500} {
		if d.ShouldAnimate(5, at(ms)) {
			t.Fatalf("expected navigation at t=%d to be suppressed", ms)
		}
	}
	if !d.ShouldAnimate(5, at(1000)) {
		t.Fatalf("expected navigation at t=1000 to animate (500 >= 417)")
	}
}

func TestPruneDropsClosedTabs(t *testing.T) {
	d := New(417 * time.Millisecond)
	d.ShouldAnimate(1, at(0))
	d.ShouldAnimate(2, at(0))
	d.ShouldAnimate(3, at(0))
	d.Prune(map[int]struct{}{2: {}})
	if got := d.Len(); got != 1 {
		t.Fatalf("expected 1 tracked tab after prune, got %d", got)
	}
	// Tab 1's history is gone, so its next navigation counts as the first.
	if !d.ShouldAnimate(1, at(50)) {
		t.Fatalf("expected pruned tab to animate again")
	}
}
