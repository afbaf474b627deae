package assignment

type Iterator struct {
	current int
	entries []Entry
}

func (r *Iterator) Value() Entry {
	return r.entries[r.current]
}

func (r *Iterator) Next() bool {
	r.current++
	return r.current < len(r.entries)
}
