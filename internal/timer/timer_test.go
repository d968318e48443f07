package timer

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/fluxtab/tabaction/internal/browser"
	"github.com/fluxtab/tabaction/internal/icon"
)

const testDelay = 30 * time.Millisecond

// settleMargin is generous so slow CI machines do not flake.
const settleMargin = 10 * testDelay

type recorder struct {
	mu      sync.Mutex
	applied []string
}

func (r *recorder) apply(tabID int, asset string) {
	r.mu.Lock()
	r.applied = append(r.applied, fmt.Sprintf("%d:%s", tabID, asset))
	r.mu.Unlock()
}

func (r *recorder) entries() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.applied...)
}

func testResolve(state browser.LoadState, phase icon.Phase) string {
	return fmt.Sprintf("%s/%s", state, phase)
}

func TestStartAnimationAppliesClipThenStill(t *testing.T) {
	rec := &recorder{}
	set := NewSet(testDelay, testResolve, rec.apply)

	set.StartAnimation(4, browser.StateLoading)
	if !set.HasPending(4) {
		t.Fatalf("expected a pending settle timer after StartAnimation")
	}
	time.Sleep(settleMargin)
	if set.HasPending(4) {
		t.Fatalf("expected timer to have fired and removed its entry")
	}

	got := rec.entries()
	want := []string{"4:loading/transition", "4:loading/settled"}
	if len(got) != len(want) {
		t.Fatalf("expected %d applications, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("application %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRestartLeavesExactlyOneTimer(t *testing.T) {
	rec := &recorder{}
	set := NewSet(testDelay, testResolve, rec.apply)

	set.StartAnimation(3, browser.StateLoading)
	set.StartAnimation(3, browser.StateLoading)
	if !set.HasPending(3) {
		t.Fatalf("expected one pending timer after double start")
	}
	time.Sleep(settleMargin)

	settled := 0
	for _, entry := range rec.entries() {
		if entry == "3:loading/settled" {
			settled++
		}
	}
	if settled != 1 {
		t.Fatalf("expected exactly one settle application, got %d (%v)", settled, rec.entries())
	}
}

func TestRestartMidWaitSupersedesOldTimer(t *testing.T) {
	rec := &recorder{}
	set := NewSet(testDelay, testResolve, rec.apply)

	set.StartAnimation(3, browser.StateLoading)
	time.Sleep(testDelay / 2)
	set.StartAnimation(3, browser.StateIdle)
	time.Sleep(settleMargin)

	entries := rec.entries()
	for _, entry := range entries {
		if entry == "3:loading/settled" {
			t.Fatalf("superseded timer still settled: %v", entries)
		}
	}
	last := entries[len(entries)-1]
	if last != "3:idle/settled" {
		t.Fatalf("expected final application to settle the new state, got %v", entries)
	}
}

func TestSkipAnimationAppliesStillImmediately(t *testing.T) {
	rec := &recorder{}
	set := NewSet(testDelay, testResolve, rec.apply)

	set.SkipAnimation(9, browser.StateIdle)
	if set.HasPending(9) {
		t.Fatalf("skip must not schedule a timer")
	}
	got := rec.entries()
	if len(got) != 1 || got[0] != "9:idle/settled" {
		t.Fatalf("expected a single immediate settle, got %v", got)
	}
}

func TestSkipCancelsPendingTimer(t *testing.T) {
	rec := &recorder{}
	set := NewSet(testDelay, testResolve, rec.apply)

	set.StartAnimation(5, browser.StateLoading)
	set.SkipAnimation(5, browser.StateIdle)
	if set.HasPending(5) {
		t.Fatalf("expected skip to cancel the pending timer")
	}
	time.Sleep(settleMargin)

	entries := rec.entries()
	for _, entry := range entries {
		if entry == "5:loading/settled" {
			t.Fatalf("canceled timer still fired: %v", entries)
		}
	}
	last := entries[len(entries)-1]
	if last != "5:idle/settled" {
		t.Fatalf("expected skip's still frame to be the last application, got %v", entries)
	}
}

func TestSkipIsIdempotentForUnknownTab(t *testing.T) {
	rec := &recorder{}
	set := NewSet(testDelay, testResolve, rec.apply)
	set.SkipAnimation(42, browser.StateIdle)
	set.SkipAnimation(42, browser.StateIdle)
	if got := rec.entries(); len(got) != 2 {
		t.Fatalf("expected two settle applications, got %v", got)
	}
}

func TestTimersAreIndependentPerTab(t *testing.T) {
	rec := &recorder{}
	set := NewSet(testDelay, testResolve, rec.apply)

	set.StartAnimation(1, browser.StateLoading)
	set.StartAnimation(2, browser.StateLoading)
	set.SkipAnimation(1, browser.StateIdle)
	if set.HasPending(1) {
		t.Fatalf("tab 1 timer should be canceled")
	}
	if !set.HasPending(2) {
		t.Fatalf("tab 2 timer must survive tab 1's cancellation")
	}
	time.Sleep(settleMargin)
	found := false
	for _, entry := range rec.entries() {
		if entry == "2:loading/settled" {
			found = true
		}
	}
	if !found {
		t.Fatalf("tab 2 timer never settled: %v", rec.entries())
	}
}

func TestPruneCancelsTimersForClosedTabs(t *testing.T) {
	rec := &recorder{}
	set := NewSet(testDelay, testResolve, rec.apply)

	set.StartAnimation(1, browser.StateLoading)
	set.StartAnimation(2, browser.StateLoading)
	set.Prune(map[int]struct{}{2: {}})
	if set.HasPending(1) {
		t.Fatalf("expected pruned tab's timer to be canceled")
	}
	if !set.HasPending(2) {
		t.Fatalf("expected surviving tab's timer to remain")
	}
}
