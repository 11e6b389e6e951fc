package selection

// ToppingSet is an insertion-ordered set of topping names. The zero value
// is an empty set. Values are treated as immutable: With and Without return
// new sets and never modify the receiver.
type ToppingSet struct {
	order []string
	index map[string]struct{}
}

// NewToppingSet builds a set from names, dropping duplicates.
func NewToppingSet(names ...string) ToppingSet {
	var s ToppingSet
	for _, name := range names {
		if !s.Has(name) {
			s = s.With(name)
		}
	}
	return s
}

// Has reports whether name is a member.
func (s ToppingSet) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Len returns the number of members.
func (s ToppingSet) Len() int {
	return len(s.order)
}

// Names returns the members in insertion order.
func (s ToppingSet) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// With returns a copy of the set that includes name.
func (s ToppingSet) With(name string) ToppingSet {
	if s.Has(name) {
		return s
	}
	next := ToppingSet{
		order: make([]string, len(s.order), len(s.order)+1),
		index: make(map[string]struct{}, len(s.order)+1),
	}
	copy(next.order, s.order)
	next.order = append(next.order, name)
	for _, member := range next.order {
		next.index[member] = struct{}{}
	}
	return next
}

// Without returns a copy of the set that excludes name.
func (s ToppingSet) Without(name string) ToppingSet {
	if !s.Has(name) {
		return s
	}
	next := ToppingSet{
		order: make([]string, 0, len(s.order)-1),
		index: make(map[string]struct{}, len(s.order)-1),
	}
	for _, member := range s.order {
		if member == name {
			continue
		}
		next.order = append(next.order, member)
		next.index[member] = struct{}{}
	}
	return next
}

// Toggle removes name when present and adds it otherwise.
func (s ToppingSet) Toggle(name string) ToppingSet {
	if s.Has(name) {
		return s.Without(name)
	}
	return s.With(name)
}

// Equal reports whether both sets hold the same members in the same order.
func (s ToppingSet) Equal(other ToppingSet) bool {
	if len(s.order) != len(other.order) {
		return false
	}
	for i := range s.order {
		if s.order[i] != other.order[i] {
			return false
		}
	}
	return true
}
