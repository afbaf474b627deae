package section

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/tj/assert"
)

func TestParseRange(t *testing.T) {
	cases := map[string]struct {
		s           string
		expected    Range
		expectedErr []error
	}{
		"Normal": {
			s:        "2-4",
			expected: RangeFrom(2, 4),
		},
		"SinglePoint": {
			s:        "0-0",
			expected: RangeFrom(0, 0),
		},
		"MaxID": {
			s:        "4294967295-4294967295",
			expected: RangeFrom(4294967295, 4294967295),
		},
		"Reversed": {
			s:        "8-3",
			expected: RangeFrom(8, 3),
		},
		"NoHyphen": {
			s:           "24",
			expectedErr: []error{ErrNoHyphen},
		},
		"NonNumericFrom": {
			s:           "abc-4",
			expectedErr: []error{ErrInvalidID, strconv.ErrSyntax},
		},
		"EmptyTo": {
			s:           "4-",
			expectedErr: []error{ErrInvalidID, strconv.ErrSyntax},
		},
		"Overflow": {
			s:           "1-4294967296",
			expectedErr: []error{ErrInvalidID, strconv.ErrRange},
		},
		"Negative": {
			s:           "-1-4",
			expectedErr: []error{ErrInvalidID},
		},
		"Whitespace": {
			s:           " 1-4",
			expectedErr: []error{ErrInvalidID},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := ParseRange(tc.s)
			if len(tc.expectedErr) != 0 {
				for _, e := range tc.expectedErr {
					require.ErrorIs(t, err, e)
				}
				assert.Equal(t, Range{}, r)
				return
			}
			assert.NoError(t, err)
			if diff := cmp.Diff(tc.expected, r, cmp.AllowUnexported(Range{})); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
			assert.Equal(t, tc.s, r.String())
		})
	}
}

func TestRangePredicates(t *testing.T) {
	cases := map[string]struct {
		r, other      Range
		coveredBy     bool
		fullyContains bool
		coversStartOf bool
		coversEndOf   bool
	}{
		"Disjoint": {
			r:     RangeFrom(2, 4),
			other: RangeFrom(6, 8),
		},
		"Adjacent": {
			r:     RangeFrom(2, 3),
			other: RangeFrom(4, 5),
		},
		"TouchingEnd": {
			r:             RangeFrom(5, 7),
			other:         RangeFrom(7, 9),
			coversStartOf: true,
		},
		"Contains": {
			r:             RangeFrom(2, 8),
			other:         RangeFrom(3, 7),
			fullyContains: true,
			coversStartOf: true,
			coversEndOf:   true,
		},
		"Inside": {
			r:         RangeFrom(3, 7),
			other:     RangeFrom(2, 8),
			coveredBy: true,
		},
		"SharedEnd": {
			r:           RangeFrom(6, 6),
			other:       RangeFrom(4, 6),
			coveredBy:   true,
			coversEndOf: true,
		},
		"Equal": {
			r:             RangeFrom(0, 0),
			other:         RangeFrom(0, 0),
			coveredBy:     true,
			fullyContains: true,
			coversStartOf: true,
			coversEndOf:   true,
		},
		"Reversed": {
			r:         RangeFrom(8, 3),
			other:     RangeFrom(4, 6),
			coveredBy: true,
		},
		"ReversedOther": {
			r:             RangeFrom(4, 6),
			other:         RangeFrom(8, 3),
			fullyContains: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.coveredBy, tc.r.CoveredBy(tc.other), "CoveredBy")
			assert.Equal(t, tc.fullyContains, tc.r.FullyContains(tc.other), "FullyContains")
			assert.Equal(t, tc.coversStartOf, tc.r.CoversStartOf(tc.other), "CoversStartOf")
			assert.Equal(t, tc.coversEndOf, tc.r.CoversEndOf(tc.other), "CoversEndOf")
		})
	}
}
