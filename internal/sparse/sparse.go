// Package sparse provides a sparse set of input positions.
//
// A sparse set supports O(1) insertion, membership testing and clearing while
// keeping a dense list of its members in insertion order. The repetition
// closure uses the dense list as a breadth-first worklist over the positions
// 0..len of the current input, so Clear between start positions costs nothing
// regardless of input length.
package sparse

import "github.com/coregx/regular/internal/conv"

// SparseSet is a set of positions in [0, capacity).
type SparseSet struct {
	sparse []uint32 // position -> index in dense
	dense  []uint32 // members in insertion order
}

// NewSparseSet creates a new sparse set able to hold positions in [0, capacity).
func NewSparseSet(capacity int) *SparseSet {
	n := conv.IntToUint32(capacity)
	return &SparseSet{
		sparse: make([]uint32, n),
		dense:  make([]uint32, 0, n),
	}
}

// Insert adds pos to the set. It reports whether pos was newly added.
// Panics if pos is outside [0, capacity).
func (s *SparseSet) Insert(pos int) bool {
	if s.Contains(pos) {
		return false
	}
	if pos < 0 || pos >= len(s.sparse) {
		panic("sparse: position out of range")
	}
	s.sparse[pos] = conv.IntToUint32(len(s.dense))
	s.dense = append(s.dense, conv.IntToUint32(pos))
	return true
}

// Contains reports whether pos is in the set.
func (s *SparseSet) Contains(pos int) bool {
	if pos < 0 || pos >= len(s.sparse) {
		return false
	}
	idx := s.sparse[pos]
	return int(idx) < len(s.dense) && int(s.dense[idx]) == pos
}

// Len returns the number of members.
func (s *SparseSet) Len() int {
	return len(s.dense)
}

// IsEmpty returns true if the set has no members.
func (s *SparseSet) IsEmpty() bool {
	return len(s.dense) == 0
}

// At returns the i-th member in insertion order.
// Members inserted while iterating with At are visited by the same loop,
// which is what makes the set usable as a worklist.
func (s *SparseSet) At(i int) int {
	return int(s.dense[i])
}

// Clear removes all members in O(1).
func (s *SparseSet) Clear() {
	s.dense = s.dense[:0]
}

// Capacity returns the exclusive upper bound on positions.
func (s *SparseSet) Capacity() int {
	return len(s.sparse)
}

// Resize changes the capacity and clears the set.
// The backing arrays are reused when they are large enough.
func (s *SparseSet) Resize(capacity int) {
	n := conv.IntToUint32(capacity)
	if int(n) <= cap(s.sparse) {
		s.sparse = s.sparse[:n]
	} else {
		s.sparse = make([]uint32, n)
	}
	if int(n) > cap(s.dense) {
		s.dense = make([]uint32, 0, n)
	}
	s.Clear()
}

// Values returns the members in insertion order.
// The returned slice is valid until the next mutation.
func (s *SparseSet) Values() []int {
	out := make([]int, len(s.dense))
	for i, v := range s.dense {
		out[i] = int(v)
	}
	return out
}
