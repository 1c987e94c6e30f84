// Package api defines the JSON response envelope shared by every handler.
package api

import (
	"fmt"
	"strconv"
	"time"
)

// ErrorBody is the failure envelope. The Error field carries the
// underlying detail only in development.
type ErrorBody struct {
	Msg   string `json:"msg"`
	Error string `json:"error,omitempty"`
}

// MessageBody is the minimal success envelope.
type MessageBody struct {
	Msg string `json:"msg"`
}

// Error builds a failure envelope. The error detail is attached only
// when dev is true; production responses never expose internals.
func Error(msg string, err error, dev bool) ErrorBody {
	body := ErrorBody{Msg: msg}
	if dev && err != nil {
		body.Error = err.Error()
	}
	return body
}

// dateLayouts lists the accepted request date formats, most specific first.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate parses a request date field. Clients send either a plain
// calendar date or a full RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// ParseID parses a numeric path parameter into a primary key.
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return uint(id), nil
}
