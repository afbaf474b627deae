package section

import "strconv"

const IDBitSize = 32

// ID is the number of a single camp section.
type ID uint32

func NewID(id uint32) ID { return ID(id) }

func (r ID) String() string {
	return strconv.FormatUint(uint64(r), 10)
}

// Compare returns an integer comparing two IDs.
// The result will be 0 if r == id2, -1 if r < id2, and +1 if r > id2.
func (r ID) Compare(id2 ID) int {
	if r < id2 {
		return -1
	}
	if r > id2 {
		return 1
	}
	return 0
}

func lessOrEq(id1, id2 ID) bool { return id1.Compare(id2) <= 0 }
