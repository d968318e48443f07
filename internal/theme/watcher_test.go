package theme

import "testing"

func TestDefaultIsLight(t *testing.T) {
	w := NewWatcher(nil)
	if w.IsDark() {
		t.Fatalf("expected light default before any observation")
	}
}

func TestObserveRecognisesDarkTheme(t *testing.T) {
	w := NewWatcher([]string{"theme/nightfall"})
	if !w.Observe([]string{"ext/unrelated", "theme/nightfall"}) {
		t.Fatalf("expected observation to report a change")
	}
	if !w.IsDark() {
		t.Fatalf("expected dark flag after observing a known dark theme")
	}
}

func TestObserveUnknownThemesStaysLight(t *testing.T) {
	w := NewWatcher([]string{"theme/nightfall"})
	if w.Observe([]string{"theme/daybreak"}) {
		t.Fatalf("expected no change when no known dark theme is enabled")
	}
	if w.IsDark() {
		t.Fatalf("expected light flag for unknown themes")
	}
}

func TestObserveReportsChangeOnlyOnFlip(t *testing.T) {
	w := NewWatcher([]string{"theme/nightfall"})
	if !w.Observe([]string{"theme/nightfall"}) {
		t.Fatalf("expected first dark observation to report change")
	}
	if w.Observe([]string{"theme/nightfall"}) {
		t.Fatalf("expected repeat observation to report no change")
	}
	if !w.Observe(nil) {
		t.Fatalf("expected disabling the dark theme to report change")
	}
	if w.IsDark() {
		t.Fatalf("expected light flag after dark theme disabled")
	}
}

func TestSetDarkOverwrites(t *testing.T) {
	w := NewWatcher(nil)
	if !w.SetDark(true) {
		t.Fatalf("expected change on first SetDark(true)")
	}
	if w.SetDark(true) {
		t.Fatalf("expected no change on repeated SetDark(true)")
	}
	if !w.IsDark() {
		t.Fatalf("expected dark flag set")
	}
}

func TestSelectMatchesFlag(t *testing.T) {
	if Select(false) != Light() {
		t.Fatalf("expected light styles for false")
	}
	if Select(true) != Dark() {
		t.Fatalf("expected dark styles for true")
	}
}
