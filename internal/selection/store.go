package selection

// Selection is an immutable snapshot of the builder state.
type Selection struct {
	Size     string
	Toppings ToppingSet
}

// Equal reports whether two snapshots hold the same size and toppings.
func (s Selection) Equal(other Selection) bool {
	return s.Size == other.Size && s.Toppings.Equal(other.Toppings)
}

// Observer is notified after every state transition.
type Observer func(prev, next Selection)

// Option configures a Store.
type Option func(*Store)

// WithToppings seeds the initial topping selection.
func WithToppings(names ...string) Option {
	return func(s *Store) {
		s.state.Toppings = NewToppingSet(names...)
	}
}

// WithObserver registers a change observer.
func WithObserver(fn Observer) Option {
	return func(s *Store) {
		if fn != nil {
			s.observers = append(s.observers, fn)
		}
	}
}

// Store holds the current size and topping selection for one builder.
// It is owned by the builder root and is not safe for concurrent use; the
// UI delivers every interaction on a single goroutine.
type Store struct {
	state     Selection
	observers []Observer
}

// NewStore creates a store with the given initial size and no toppings.
func NewStore(initialSize string, opts ...Option) *Store {
	s := &Store{state: Selection{Size: initialSize}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Size returns the selected size.
func (s *Store) Size() string {
	return s.state.Size
}

// Toppings returns the selected toppings in selection order.
func (s *Store) Toppings() []string {
	return s.state.Toppings.Names()
}

// HasTopping reports whether name is currently selected.
func (s *Store) HasTopping(name string) bool {
	return s.state.Toppings.Has(name)
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Selection {
	return s.state
}

// SetSize replaces the selected size. The value is not validated.
func (s *Store) SetSize(size string) {
	s.Update(func(prev Selection) Selection {
		prev.Size = size
		return prev
	})
}

// ToggleTopping adds name when absent and removes it when present.
func (s *Store) ToggleTopping(name string) {
	s.Update(func(prev Selection) Selection {
		prev.Toppings = prev.Toppings.Toggle(name)
		return prev
	})
}

// Update replaces the state with fn applied to the latest state.
// Observers run only when the state actually changed.
func (s *Store) Update(fn func(Selection) Selection) {
	prev := s.state
	next := fn(prev)
	s.state = next
	if prev.Equal(next) {
		return
	}
	for _, observer := range s.observers {
		observer(prev, next)
	}
}
