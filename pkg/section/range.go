package section

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrNoHyphen  = errors.New("no hyphen")
	ErrInvalidID = errors.New("invalid id")
)

// Range is an inclusive interval of section IDs. A Range whose from is
// greater than its to is not rejected; the predicates below evaluate
// their bounds literally and their result for such a Range is undefined.
type Range struct {
	from ID
	to   ID
}

func RangeFrom(from, to uint32) Range {
	return Range{
		from: NewID(from),
		to:   NewID(to),
	}
}

// From returns the lower bound of r.
func (r Range) From() ID { return r.from }

// To returns the upper bound of r.
func (r Range) To() ID { return r.to }

// ParseRange parses a range of the form "<from>-<to>".
func ParseRange(s string) (Range, error) {
	var r Range
	h := strings.IndexByte(s, '-')
	if h == -1 {
		return r, fmt.Errorf("%w in range %q", ErrNoHyphen, s)
	}
	from, to := s[:h], s[h+1:]
	fromUint32, err := strconv.ParseUint(from, 10, IDBitSize)
	if err != nil {
		return r, fmt.Errorf("%w: from id %q in range %q: %w", ErrInvalidID, from, s, numError(err))
	}
	toUint32, err := strconv.ParseUint(to, 10, IDBitSize)
	if err != nil {
		return r, fmt.Errorf("%w: to id %q in range %q: %w", ErrInvalidID, to, s, numError(err))
	}
	return RangeFrom(uint32(fromUint32), uint32(toUint32)), nil
}

// numError strips the strconv wrapper, the caller already quotes the input.
func numError(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.from, r.to)
}

// CoveredBy returns whether r is entirely contained within other.
func (r Range) CoveredBy(other Range) bool {
	return lessOrEq(other.From(), r.from) && lessOrEq(r.to, other.To())
}

// FullyContains returns whether other is entirely contained within r.
func (r Range) FullyContains(other Range) bool {
	return other.CoveredBy(r)
}

// CoversStartOf returns whether the first ID of other lies within r.
func (r Range) CoversStartOf(other Range) bool {
	return lessOrEq(r.from, other.From()) && lessOrEq(other.From(), r.to)
}

// CoversEndOf returns whether the last ID of other lies within r.
func (r Range) CoversEndOf(other Range) bool {
	return lessOrEq(r.from, other.To()) && lessOrEq(other.To(), r.to)
}

// OverlapsWith returns whether r covers the start or the end of other.
// It is not symmetric: when r sits strictly inside other it covers
// neither end, so callers check both directions.
func (r Range) OverlapsWith(other Range) bool {
	return r.CoversStartOf(other) || r.CoversEndOf(other)
}
