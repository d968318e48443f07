package platform

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/fluxtab/tabaction/internal/browser"
	"github.com/fluxtab/tabaction/internal/logging"
)

func TestOSClassFromUserAgent(t *testing.T) {
	cases := []struct {
		ua   string
		want string
	}{
		{"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)", "mac"},
		{"Mozilla/5.0 (Windows NT 10.0; Win64; x64)", "win"},
		{"Mozilla/5.0 (X11; Linux x86_64)", "linux"},
		{"Mozilla/5.0 (X11; FreeBSD amd64)", "linux"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := OSClassFromUserAgent(tc.ua); got != tc.want {
			t.Fatalf("OSClassFromUserAgent(%q) = %q, want %q", tc.ua, got, tc.want)
		}
	}
}

func TestShortcutLabel(t *testing.T) {
	if got := ShortcutLabel("mac"); got != "⌘R" {
		t.Fatalf("mac shortcut = %q", got)
	}
	if got := ShortcutLabel("win"); got != "Ctrl+R" {
		t.Fatalf("win shortcut = %q", got)
	}
	if got := ShortcutLabel("linux"); got != "Ctrl+R" {
		t.Fatalf("linux shortcut = %q", got)
	}
}

type staticVersion struct {
	v   browser.Version
	err error
}

func (s staticVersion) Version(context.Context) (browser.Version, error) {
	return s.v, s.err
}

func TestDetectPrefersHostUserAgent(t *testing.T) {
	src := staticVersion{v: browser.Version{UserAgent: "Mozilla/5.0 (Macintosh)"}}
	if got := Detect(context.Background(), src); got != "⌘R" {
		t.Fatalf("expected host user agent to win, got %q", got)
	}
}

func TestDetectFallsBackToLocalOS(t *testing.T) {
	logging.Configure(filepath.Join(t.TempDir(), "test.log"))
	src := staticVersion{err: errors.New("host unreachable")}
	got := Detect(context.Background(), src)
	if got != "⌘R" && got != "Ctrl+R" {
		t.Fatalf("expected a known shortcut from local fallback, got %q", got)
	}
}
