package selection

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreInitialState(t *testing.T) {
	t.Parallel()

	store := NewStore("medium")
	require.Equal(t, "medium", store.Size())
	require.Empty(t, store.Toppings())
	require.Equal(t, 0, store.Snapshot().Toppings.Len())
}

func TestToggleTopping(t *testing.T) {
	t.Parallel()

	t.Run("adds then removes", func(t *testing.T) {
		t.Parallel()
		store := NewStore("medium")

		store.ToggleTopping("tomato")
		require.True(t, store.HasTopping("tomato"))
		require.Equal(t, []string{"tomato"}, store.Toppings())

		store.ToggleTopping("tomato")
		require.False(t, store.HasTopping("tomato"))
		require.Empty(t, store.Toppings())
	})

	t.Run("keeps selection order", func(t *testing.T) {
		t.Parallel()
		store := NewStore("medium")

		store.ToggleTopping("tomato")
		store.ToggleTopping("cheese")
		store.ToggleTopping("mushrooms")
		store.ToggleTopping("cheese")
		store.ToggleTopping("cheese")

		require.Equal(t, []string{"tomato", "mushrooms", "cheese"}, store.Toppings())
	})

	t.Run("accepts names outside any catalog", func(t *testing.T) {
		t.Parallel()
		store := NewStore("medium")

		store.ToggleTopping("pineapple")
		require.True(t, store.HasTopping("pineapple"))
	})
}

func TestToggleParity(t *testing.T) {
	t.Parallel()

	names := []string{"cheese", "mushrooms", "tomato", "olives"}
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		store := NewStore("medium")
		counts := map[string]int{}

		steps := rng.Intn(40)
		for i := 0; i < steps; i++ {
			name := names[rng.Intn(len(names))]
			counts[name]++
			store.ToggleTopping(name)
		}

		for _, name := range names {
			assert.Equal(t, counts[name]%2 == 1, store.HasTopping(name), "round %d topping %s", round, name)
		}
		assert.Len(t, store.Toppings(), len(NewToppingSet(store.Toppings()...).Names()))
	}
}

func TestSetSizeIdempotent(t *testing.T) {
	t.Parallel()

	once := NewStore("medium", WithToppings("cheese"))
	once.SetSize("large")

	twice := NewStore("medium", WithToppings("cheese"))
	twice.SetSize("large")
	twice.SetSize("large")

	require.True(t, once.Snapshot().Equal(twice.Snapshot()))
	require.Equal(t, "large", twice.Size())
}

func TestSetSizeIsNotValidated(t *testing.T) {
	t.Parallel()

	store := NewStore("medium")
	store.SetSize("colossal")
	require.Equal(t, "colossal", store.Size())
}

func TestUpdateUsesLatestState(t *testing.T) {
	t.Parallel()

	store := NewStore("medium")
	for i := 0; i < 3; i++ {
		store.Update(func(prev Selection) Selection {
			prev.Toppings = prev.Toppings.Toggle("cheese")
			return prev
		})
	}
	require.True(t, store.HasTopping("cheese"))
}

func TestSnapshotIsImmutable(t *testing.T) {
	t.Parallel()

	store := NewStore("medium", WithToppings("cheese"))
	before := store.Snapshot()

	store.ToggleTopping("tomato")
	store.SetSize("small")

	require.Equal(t, "medium", before.Size)
	require.Equal(t, []string{"cheese"}, before.Toppings.Names())

	names := store.Toppings()
	names[0] = "mutated"
	require.Equal(t, []string{"cheese", "tomato"}, store.Toppings())
}

func TestObservers(t *testing.T) {
	t.Parallel()

	type transition struct{ prev, next Selection }
	var seen []transition

	store := NewStore("medium", WithObserver(func(prev, next Selection) {
		seen = append(seen, transition{prev, next})
	}), WithObserver(nil))

	store.SetSize("medium")
	require.Empty(t, seen, "no-op transitions are not reported")

	store.SetSize("small")
	store.ToggleTopping("tomato")
	require.Len(t, seen, 2)
	require.Equal(t, "medium", seen[0].prev.Size)
	require.Equal(t, "small", seen[0].next.Size)
	require.False(t, seen[1].prev.Toppings.Has("tomato"))
	require.True(t, seen[1].next.Toppings.Has("tomato"))
}

func TestToppingSet(t *testing.T) {
	t.Parallel()

	set := NewToppingSet("a", "b", "a", "c")
	require.Equal(t, []string{"a", "b", "c"}, set.Names())
	require.Equal(t, 3, set.Len())

	without := set.Without("b")
	require.Equal(t, []string{"a", "c"}, without.Names())
	require.True(t, set.Has("b"), "receiver is unchanged")

	require.True(t, set.With("a").Equal(set))
	require.True(t, set.Without("z").Equal(set))
	require.False(t, set.Equal(NewToppingSet("c", "b", "a")))

	var zero ToppingSet
	require.False(t, zero.Has("a"))
	require.Equal(t, []string{"a"}, zero.Toggle("a").Names())
}
