package assignment

import (
	"github.com/henderiw/sectionpairs/pkg/section"
	"k8s.io/apimachinery/pkg/labels"
)

type Entry interface {
	Line() int
	Pair() section.Pair
	Labels() labels.Set
}

type entry struct {
	line   int
	pair   section.Pair
	labels labels.Set
}

type Entries []Entry

func (r entry) Line() int          { return r.line }
func (r entry) Pair() section.Pair { return r.pair }
func (r entry) Labels() labels.Set { return r.labels }

func NewEntry(line int, p section.Pair) Entry {
	return entry{
		line:   line,
		pair:   p,
		labels: p.Labels(),
	}
}
