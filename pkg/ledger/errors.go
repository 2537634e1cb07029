package ledger

import (
	"fmt"
	"strings"
)

// InputError reports missing or malformed source data.
// Path, Line and Column are filled in when known.
type InputError struct {
	Path   string
	Line   int
	Column string
	Err    error
}

func (e *InputError) Error() string {
	var where []string
	if e.Path != "" {
		where = append(where, e.Path)
	}
	if e.Line > 0 {
		where = append(where, fmt.Sprintf("line %d", e.Line))
	}
	if e.Column != "" {
		where = append(where, fmt.Sprintf("column %q", e.Column))
	}
	if len(where) == 0 {
		return fmt.Sprintf("invalid input: %v", e.Err)
	}
	return fmt.Sprintf("invalid input (%s): %v", strings.Join(where, ", "), e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
