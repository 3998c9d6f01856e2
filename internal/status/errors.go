// internal/status/errors.go
package status

import (
	"fmt"
	"strings"
)

// ParseError reports command output that did not have the expected shape.
type ParseError struct {
	Command string
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse `%s`: %s", e.Command, e.Reason)
}

func newParseError(name string, args []string, reason string) *ParseError {
	return &ParseError{
		Command: strings.Join(append([]string{name}, args...), " "),
		Reason:  reason,
	}
}
