package runlog

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a required input is empty.  Filesystem
// failures are not translated: errors from Start, Write and Stop wrap the
// underlying OS error, so errors.Is against fs.ErrNotExist and
// fs.ErrPermission works as usual.
var ErrInvalidArgument = errors.New("invalid argument")

// TransportError wraps any failure encountered while mailing a log file: an
// unreadable file, an unreachable relay or a rejected message.  The cause is
// preserved via Unwrap rather than reduced to a bare status.
type TransportError struct {
	Server string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("send log via %s: %v", e.Server, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
