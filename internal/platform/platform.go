// Package platform resolves the OS class and the human-readable reload
// shortcut embedded in the idle title.
package platform

import (
	"context"
	"runtime"
	"strings"

	"github.com/fluxtab/tabaction/internal/browser"
	"github.com/fluxtab/tabaction/internal/logging"
)

// VersionSource is the slice of the host client detection needs.
type VersionSource interface {
	Version(ctx context.Context) (browser.Version, error)
}

// OSClassFromUserAgent maps a host user-agent string to an OS class.
func OSClassFromUserAgent(ua string) string {
	switch {
	case strings.Contains(ua, "Macintosh"), strings.Contains(ua, "Mac OS X"):
		return "mac"
	case strings.Contains(ua, "Windows"):
		return "win"
	case ua == "":
		return ""
	}
	return "linux"
}

// ShortcutLabel returns the reload shortcut for an OS class.
func ShortcutLabel(osClass string) string {
	if osClass == "mac" {
		return "⌘R"
	}
	return "Ctrl+R"
}

// Detect resolves the reload shortcut from the host's user agent, falling
// back to the local OS when the host cannot be asked. Intended to run off
// the event loop; the result arrives whenever it arrives.
func Detect(ctx context.Context, src VersionSource) string {
	if src != nil {
		v, err := src.Version(ctx)
		if err == nil {
			if class := OSClassFromUserAgent(v.UserAgent); class != "" {
				return ShortcutLabel(class)
			}
		} else {
			logging.Error(err)
		}
	}
	if runtime.GOOS == "darwin" {
		return ShortcutLabel("mac")
	}
	return ShortcutLabel(runtime.GOOS)
}
