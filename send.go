package runlog

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"
)

// Relay describes the SMTP relay used to mail a finished log.  Username and
// Password may be left empty for relays that accept unauthenticated mail
// from this host.  An empty Subject falls back to the log file path.
type Relay struct {
	Server   string
	Port     int // 25 if zero
	Username string
	Password string
	From     string
	To       string // one or more addresses, comma separated
	Subject  string
}

// Send reads the whole log file at path and mails it as the plain-text body
// of a single message.  Any failure, whether reading the file, reaching the
// relay or having the message rejected, comes back as a *TransportError
// wrapping the cause.
func (r Relay) Send(path string) error {
	if r.Server == "" || r.From == "" || r.To == "" {
		return fmt.Errorf("send log: relay server, from and to must be non-empty: %w", ErrInvalidArgument)
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return &TransportError{Server: r.Server, Err: err}
	}
	recipients := splitRecipients(r.To)
	subject := r.Subject
	if subject == "" {
		subject = path
	}
	// Compose headers and body.  RFC 5322 requires CRLF line endings.
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		r.From, strings.Join(recipients, ", "), subject, body)
	port := r.Port
	if port == 0 {
		port = 25
	}
	addr := fmt.Sprintf("%s:%d", r.Server, port)
	var auth smtp.Auth
	if r.Username != "" {
		auth = smtp.PlainAuth("", r.Username, r.Password, r.Server)
	}
	trace.Debug("sending log", "path", path, "relay", addr, "to", r.To)
	if err := smtp.SendMail(addr, auth, r.From, recipients, []byte(msg)); err != nil {
		return &TransportError{Server: r.Server, Err: err}
	}
	return nil
}

// splitRecipients turns a comma separated address list into its elements,
// trimming surrounding whitespace and dropping empties.
func splitRecipients(to string) []string {
	var out []string
	for _, p := range strings.Split(to, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
