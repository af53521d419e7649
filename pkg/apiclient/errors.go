package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"
)

var (
	// ErrTransport: request tidak sampai ke upstream (network, timeout, cancel).
	ErrTransport = errors.New("upstream unreachable")
	// ErrUpstreamStatus: upstream menjawab dengan status non-2xx.
	ErrUpstreamStatus = errors.New("upstream returned an error status")
	// ErrDecode: body 2xx tidak bisa di-decode ke bentuk yang diharapkan.
	ErrDecode = errors.New("upstream response could not be decoded")
)

// StatusError carries the upstream status and a human-readable message.
type StatusError struct {
	Status  int
	Message string
	Method  string
	Path    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: upstream status %d: %s", e.Method, e.Path, e.Status, e.Message)
}

func (e *StatusError) Unwrap() error {
	return ErrUpstreamStatus
}

// ClientError reports a 4xx answer, which is usually safe to show to the user as is.
func (e *StatusError) ClientError() bool {
	return e.Status >= 400 && e.Status < 500
}

// AsStatusError unwraps err to a *StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

const maxMessageLen = 300

// normalizeMessage picks message, then error, then detail, then the raw text, then the status text.
func normalizeMessage(status int, body []byte) string {
	var payload map[string]any
	if json.Unmarshal(body, &payload) == nil {
		for _, key := range []string{"message", "error", "detail"} {
			if s, ok := payload[key].(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}

	text := strings.TrimSpace(string(body))
	if text != "" && utf8.ValidString(text) && !strings.HasPrefix(text, "{") && !strings.HasPrefix(text, "<") {
		return truncate(text, maxMessageLen)
	}

	if st := http.StatusText(status); st != "" {
		return st
	}
	return fmt.Sprintf("status %d", status)
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
