package assignment

import (
	"fmt"

	"github.com/emirpasic/gods/v2/maps/treemap"
	"github.com/henderiw/sectionpairs/pkg/section"
	"k8s.io/apimachinery/pkg/labels"
)

// Table holds the parsed assignment pairs keyed by their 1-based line number.
// It is not safe for concurrent use.
type Table interface {
	Add(line int, p section.Pair) error
	Get(line int) (Entry, error)
	Count() int

	Iterate() *Iterator
	GetByLabel(selector labels.Selector) Entries
}

func NewTable() Table {
	return &table{
		entries: treemap.New[int, Entry](),
	}
}

type table struct {
	entries *treemap.Map[int, Entry]
}

func (r *table) validate(line int) error {
	if line < 1 {
		return fmt.Errorf("line %d is out of range, lines start at 1", line)
	}
	return nil
}

func (r *table) Add(line int, p section.Pair) error {
	if err := r.validate(line); err != nil {
		return err
	}
	if _, ok := r.entries.Get(line); ok {
		return fmt.Errorf("line %d is already added", line)
	}
	r.entries.Put(line, NewEntry(line, p))
	return nil
}

func (r *table) Get(line int) (Entry, error) {
	if err := r.validate(line); err != nil {
		return nil, err
	}
	e, ok := r.entries.Get(line)
	if !ok {
		return nil, fmt.Errorf("no match found for line: %d", line)
	}
	return e, nil
}

func (r *table) Count() int {
	return r.entries.Size()
}

// Iterate returns an iterator over a snapshot of the table in line order.
func (r *table) Iterate() *Iterator {
	return &Iterator{current: -1, entries: r.entries.Values()}
}

func (r *table) GetByLabel(selector labels.Selector) Entries {
	entries := Entries{}
	iter := r.Iterate()
	for iter.Next() {
		if selector.Matches(iter.Value().Labels()) {
			entries = append(entries, iter.Value())
		}
	}
	return entries
}
