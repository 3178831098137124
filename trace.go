package runlog

import (
	"os"

	clog "github.com/charmbracelet/log"
)

// trace is the diagnostic channel: it reports what each operation decided to
// do (removing a file, creating one, appending, sending) on stderr, well
// away from the log file itself.  It stays quiet until SetVerbose(true).
var trace = clog.NewWithOptions(os.Stderr, clog.Options{
	Prefix: "runlog",
	Level:  clog.ErrorLevel,
})

// SetVerbose turns the diagnostic trace on or off.
func SetVerbose(on bool) {
	if on {
		trace.SetLevel(clog.DebugLevel)
	} else {
		trace.SetLevel(clog.ErrorLevel)
	}
}
