package containers

import "fmt"

// MovableSet is a set of integers in [0,n) supporting O(1) membership test,
// insertion, deletion, and positional iteration: callers can ask for the
// i-th element currently present in the set, in whatever order insertion
// left them. It is implemented as a dense array of present elements plus a
// sparse array mapping each value to its index in the dense array — the
// classic "swap with the last element" trick for O(1) deletion.
type MovableSet struct {
	n       int
	dense   []int // dense[i] = i-th present value
	sparse  []int // sparse[v] = index of v in dense, valid only if present[v]
	present []bool
}

// NewMovableSet creates an empty MovableSet over the universe [0,n).
func NewMovableSet(n int) (*MovableSet, error) {
	if n < 0 {
		return nil, ErrNegativeCapacity
	}

	return &MovableSet{
		dense:   make([]int, 0, n),
		sparse:  make([]int, n),
		present: make([]bool, n),
		n:       n,
	}, nil
}

// Len returns the number of elements currently present.
func (s *MovableSet) Len() int { return len(s.dense) }

// Contains reports whether v is currently a member.
func (s *MovableSet) Contains(v int) bool {
	return v >= 0 && v < s.n && s.present[v]
}

// Insert adds v to the set. Inserting an already-present value is a no-op.
func (s *MovableSet) Insert(v int) error {
	if v < 0 || v >= s.n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, v, s.n)
	}
	if s.present[v] {
		return nil
	}
	s.sparse[v] = len(s.dense)
	s.dense = append(s.dense, v)
	s.present[v] = true

	return nil
}

// Remove deletes v from the set by swapping it with the last dense element.
// Removing an absent value is a no-op.
func (s *MovableSet) Remove(v int) error {
	if v < 0 || v >= s.n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, v, s.n)
	}
	if !s.present[v] {
		return nil
	}
	idx := s.sparse[v]
	last := len(s.dense) - 1
	moved := s.dense[last]
	s.dense[idx] = moved
	s.sparse[moved] = idx
	s.dense = s.dense[:last]
	s.present[v] = false

	return nil
}

// At returns the i-th element currently present, in the set's internal
// (insertion-with-swap) order. Callers that need a stable enumeration order
// should sort the result of Elements instead.
func (s *MovableSet) At(i int) (int, error) {
	if i < 0 || i >= len(s.dense) {
		return 0, fmt.Errorf("%w: position %d (size %d)", ErrIndexOutOfRange, i, len(s.dense))
	}

	return s.dense[i], nil
}

// Elements returns a snapshot copy of the dense member array.
func (s *MovableSet) Elements() []int {
	out := make([]int, len(s.dense))
	copy(out, s.dense)

	return out
}

// Clear empties the set without shrinking its backing storage.
func (s *MovableSet) Clear() {
	for _, v := range s.dense {
		s.present[v] = false
	}
	s.dense = s.dense[:0]
}
