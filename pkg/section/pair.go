package section

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"k8s.io/apimachinery/pkg/labels"
)

var ErrNoComma = errors.New("no comma")

const (
	LabelNeedsReconsideration = "needs-reconsideration"
	LabelAnyOverlap           = "any-overlap"
)

// Pair holds the section assignments of two elves, read from one line.
type Pair struct {
	First  Range
	Second Range
}

func NewPair(first, second Range) Pair {
	return Pair{First: first, Second: second}
}

// ParsePair parses a line of the form "<from>-<to>,<from>-<to>".
func ParsePair(s string) (Pair, error) {
	var p Pair
	c := strings.IndexByte(s, ',')
	if c == -1 {
		return p, fmt.Errorf("%w in pair %q", ErrNoComma, s)
	}
	first, err := ParseRange(s[:c])
	if err != nil {
		return p, fmt.Errorf("first assignment: %w", err)
	}
	second, err := ParseRange(s[c+1:])
	if err != nil {
		return p, fmt.Errorf("second assignment: %w", err)
	}
	return NewPair(first, second), nil
}

func (r Pair) String() string {
	return fmt.Sprintf("%s,%s", r.First, r.Second)
}

// NeedsReconsideration returns whether one assignment fully contains the
// other, in which case one elf only cleans sections their partner already
// cleans.
func (r Pair) NeedsReconsideration() bool {
	return r.First.FullyContains(r.Second) || r.Second.FullyContains(r.First)
}

// HasAnyOverlap returns whether the two assignments share at least one section.
func (r Pair) HasAnyOverlap() bool {
	return r.First.OverlapsWith(r.Second) || r.Second.OverlapsWith(r.First)
}

// Labels classifies the pair.
func (r Pair) Labels() labels.Set {
	return labels.Set{
		LabelNeedsReconsideration: strconv.FormatBool(r.NeedsReconsideration()),
		LabelAnyOverlap:           strconv.FormatBool(r.HasAnyOverlap()),
	}
}
