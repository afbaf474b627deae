package assignment

import (
	"fmt"
	"io"

	"github.com/henderiw/sectionpairs/pkg/section"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/selection"
)

type Report struct {
	NeedsReconsideration int
	AnyOverlap           int
}

// NewReport counts the entries of t classified as needing reconsideration
// and as having any overlap.
func NewReport(t Table) (Report, error) {
	reconsider, err := getLabelSelector(map[string]string{section.LabelNeedsReconsideration: "true"})
	if err != nil {
		return Report{}, err
	}
	overlap, err := getLabelSelector(map[string]string{section.LabelAnyOverlap: "true"})
	if err != nil {
		return Report{}, err
	}
	return Report{
		NeedsReconsideration: len(t.GetByLabel(reconsider)),
		AnyOverlap:           len(t.GetByLabel(overlap)),
	}, nil
}

func (r Report) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "Assignments needing reconsideration: %d\nAssignments with any overlap: %d\n",
		r.NeedsReconsideration, r.AnyOverlap)
	return int64(n), err
}

func getLabelSelector(l map[string]string) (labels.Selector, error) {
	fullselector := labels.NewSelector()
	for k, v := range l {
		req, err := labels.NewRequirement(k, selection.Equals, []string{v})
		if err != nil {
			return nil, err
		}
		fullselector = fullselector.Add(*req)
	}
	return fullselector, nil
}

// Summarize reads all of rd, then parses and classifies every line.
func Summarize(rd io.Reader) (Report, error) {
	lines, err := ReadLines(rd)
	if err != nil {
		return Report{}, err
	}
	t, err := Load(lines)
	if err != nil {
		return Report{}, err
	}
	return NewReport(t)
}
