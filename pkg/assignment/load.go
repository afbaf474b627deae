package assignment

import (
	"fmt"

	"github.com/henderiw/sectionpairs/pkg/section"
)

// LineError reports the input line a parse failure happened on.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Load parses every line into a new table. It stops at the first malformed
// line and returns no table in that case.
func Load(lines []string) (Table, error) {
	t := NewTable()
	for i, l := range lines {
		p, err := section.ParsePair(l)
		if err != nil {
			return nil, &LineError{Line: i + 1, Err: err}
		}
		if err := t.Add(i+1, p); err != nil {
			return nil, err
		}
	}
	return t, nil
}
