package runlog

import "os"

// The functions in this file terminate the whole process.  They exist for
// one-shot scripts where "finish the log" and "finish the program" are the
// same step; anything that intends to keep running must call Stop or
// Relay.Send instead and handle the error itself.

// osExit is indirected for the exit-status tests.
var osExit = os.Exit

// StopAndExit appends the closing record and then terminates the process:
// exit status 0 if the record was written, 1 otherwise.  It never returns.
func StopAndExit(path string) {
	code := 0
	if err := Stop(path); err != nil {
		trace.Error("stop log", "err", err)
		code = 1
	}
	osExit(code)
}

// SendAndExit mails the log at path and terminates the process with status 0
// on success and 1 on any failure.  The specific failure is reduced to that
// binary status; it is traced on the diagnostic channel first.  It never
// returns.
func (r Relay) SendAndExit(path string) {
	code := 0
	if err := r.Send(path); err != nil {
		trace.Error("send log", "err", err)
		code = 1
	}
	osExit(code)
}
