package runlog

import "time"

// DefaultLayout is the timestamp layout used for every log line unless the
// caller supplies their own.  It sorts lexicographically, so a well-formed
// log file is ordered by its line prefixes.
const DefaultLayout = "2006-01-02 15:04:05"

// now is indirected so tests can pin the clock.
var now = time.Now

// Timestamp returns the current local time rendered with the given layout
// and wrapped in a single pair of square brackets, e.g.
// "[2026-08-29 10:15:04]".  An empty layout selects DefaultLayout.
//
// The layout is handed to time.Format unvalidated; characters that are not
// layout elements appear verbatim in the result, which is exactly what the
// underlying facility does with them.
func Timestamp(layout string) string {
	if layout == "" {
		layout = DefaultLayout
	}
	return "[" + now().Format(layout) + "]"
}
