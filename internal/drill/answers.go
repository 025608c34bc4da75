package drill

import "sort"

// AnswerSet is an immutable set of candidate answers. The zero value is
// the empty set. With returns a new set and never alters the receiver.
type AnswerSet struct {
	m map[int]struct{}
}

// With returns a set containing the receiver's values and v.
func (s AnswerSet) With(v int) AnswerSet {
	if s.Has(v) {
		return s
	}
	m := make(map[int]struct{}, len(s.m)+1)
	for k := range s.m {
		m[k] = struct{}{}
	}
	m[v] = struct{}{}
	return AnswerSet{m: m}
}

// Has reports whether v is in the set.
func (s AnswerSet) Has(v int) bool {
	_, ok := s.m[v]
	return ok
}

// Len returns the number of values.
func (s AnswerSet) Len() int {
	return len(s.m)
}

// Values returns the members in ascending order.
func (s AnswerSet) Values() []int {
	out := make([]int, 0, len(s.m))
	for k := range s.m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
