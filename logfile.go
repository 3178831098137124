// Package runlog maintains a single plain-text run log: a file that is
// created once, appended to any number of times and closed with a trailer
// line, optionally mailed somewhere afterwards.  Every record is one line
// prefixed with a bracketed timestamp.
//
// Each call opens and closes the file on its own; no state is carried
// between calls beyond the path the caller holds.  That also means nothing
// protects a single path against concurrent use from several processes: a
// Start racing a Write can interleave arbitrarily.  Use one path per run.
package runlog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Fixed texts of the opening and closing records.
const (
	startedText  = "Log Started processing."
	finishedText = "Log Finished"
)

// Start creates a fresh log file called name inside dir and writes the
// opening record.  Any existing file at that path is removed first, without
// confirmation; its previous content is lost.  The directory must already
// exist, Start does not create it.
//
// The joined path is returned for feeding to Write, Stop and Relay.Send.
func Start(dir, name string) (string, error) {
	if dir == "" || name == "" {
		return "", fmt.Errorf("start log: directory and file name must be non-empty: %w", ErrInvalidArgument)
	}
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err == nil {
		trace.Debug("removing existing log file", "path", path)
		if err := os.Remove(path); err != nil {
			return "", fmt.Errorf("start log: remove previous file: %w", err)
		}
	}
	trace.Debug("creating new log file", "path", path)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("start log: %w", err)
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "%s %s\n", Timestamp(""), startedText); err != nil {
		return "", fmt.Errorf("start log: write opening record: %w", err)
	}
	return path, nil
}

// Write appends one timestamped line per message to the log at path.  The
// message text follows the timestamp verbatim, embedded newlines included.
// The file is opened in append mode and closed again before Write returns.
func Write(path string, messages ...string) error {
	if len(messages) == 0 {
		return nil
	}
	f, err := openAppend(path)
	if err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	defer f.Close()
	for _, msg := range messages {
		trace.Debug("appending line", "path", path, "message", msg)
		if _, err := fmt.Fprintf(f, "%s %s\n", Timestamp(""), msg); err != nil {
			return fmt.Errorf("write log: %w", err)
		}
	}
	return nil
}

// WriteFrom appends one timestamped line per line read from r.  It is the
// piped form of Write: a stream of messages in, one record per message out.
// The number of records written is returned.
func WriteFrom(path string, r io.Reader) (int, error) {
	f, err := openAppend(path)
	if err != nil {
		return 0, fmt.Errorf("write log: %w", err)
	}
	defer f.Close()
	n := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if _, err := fmt.Fprintf(f, "%s %s\n", Timestamp(""), sc.Text()); err != nil {
			return n, fmt.Errorf("write log: %w", err)
		}
		n++
	}
	if err := sc.Err(); err != nil {
		return n, fmt.Errorf("write log: read messages: %w", err)
	}
	return n, nil
}

// Stop appends the closing record to the log at path and returns.  Unlike
// StopAndExit it leaves the process running, so the caller can go on to
// mail the finished log.
func Stop(path string) error {
	trace.Debug("finishing log", "path", path)
	f, err := openAppend(path)
	if err != nil {
		return fmt.Errorf("stop log: %w", err)
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "%s %s\n", Timestamp(""), finishedText); err != nil {
		return fmt.Errorf("stop log: write closing record: %w", err)
	}
	return nil
}

func openAppend(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
}
