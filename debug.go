package marionette

import (
	"fmt"
	"os"
)

// debugEnabled gates diagnostics and disposed-pose checks. Off by default;
// the checks sit on per-event paths.
var debugEnabled bool

// SetDebug enables or disables debug diagnostics for the whole package.
// Marionette is single-threaded, so this is a plain flag.
func SetDebug(enabled bool) {
	debugEnabled = enabled
}

// debugf prints a diagnostic line to stderr when debug mode is on.
func debugf(format string, args ...any) {
	if !debugEnabled {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[marionette] "+format+"\n", args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed pose
// is used in an apply or flip operation. Only active in debug mode; in
// release mode the stale data is used silently.
func debugCheckDisposed(p *Pose, op string) {
	if debugEnabled && p.IsDisposed() {
		panic(fmt.Sprintf("marionette debug: %s on disposed pose %q", op, p.Name))
	}
}
