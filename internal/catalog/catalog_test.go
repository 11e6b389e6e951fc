package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPizzaCatalog(t *testing.T) {
	t.Parallel()

	v := Pizza()
	require.Equal(t, []string{"cheese", "mushrooms", "tomato"}, v.ToppingNames())
	require.Equal(t, []string{"small", "medium", "large"}, v.SizeNames())
	require.Equal(t, "medium", v.DefaultSize())

	tomato, ok := v.LookupTopping("tomato")
	require.True(t, ok)
	assert.Len(t, tomato.Placements, 6)
	assert.Equal(t, Style{Width: 30, BorderRadius: 10}, tomato.Style)

	cheese, ok := v.LookupTopping("cheese")
	require.True(t, ok)
	assert.Len(t, cheese.Placements, 3)
	assert.Equal(t, Style{Width: 20}, cheese.Style)

	mushrooms, ok := v.LookupTopping("mushrooms")
	require.True(t, ok)
	assert.Len(t, mushrooms.Placements, 6)
	assert.Equal(t, Style{Width: 22, BorderRadius: 11}, mushrooms.Style)
}

func TestCookieCatalog(t *testing.T) {
	t.Parallel()

	v := Cookie()
	require.Equal(t, []string{"candy", "zigzag"}, v.ToppingNames())

	candy, _ := v.LookupTopping("candy")
	zigzag, _ := v.LookupTopping("zigzag")
	assert.Len(t, candy.Placements, 3)
	assert.Len(t, zigzag.Placements, 6)
	assert.NotEqual(t, candy.Style, zigzag.Style)
}

func TestLookupSize(t *testing.T) {
	t.Parallel()

	v := Pizza()

	large, ok := v.LookupSize("large")
	require.True(t, ok)
	assert.Equal(t, Size{Name: "large", Width: 350, MarginLeft: -17}, large)

	small, ok := v.LookupSize("small")
	require.True(t, ok)
	assert.Equal(t, 150, small.Width)
	assert.Zero(t, small.MarginLeft)

	_, ok = v.LookupSize("jumbo")
	assert.False(t, ok)
}

func TestLookupVariant(t *testing.T) {
	t.Parallel()

	v, err := Lookup(" Cookie ")
	require.NoError(t, err)
	assert.Equal(t, "cookie", v.Name)

	_, err = Lookup("calzone")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cookie, pizza")
}

func TestMiddleOption(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", MiddleOption(nil))
	assert.Equal(t, "only", MiddleOption([]string{"only"}))
	assert.Equal(t, "b", MiddleOption([]string{"a", "b", "c"}))
	assert.Equal(t, "c", MiddleOption([]string{"a", "b", "c", "d"}))
}

func TestToppingNamesAreUnique(t *testing.T) {
	t.Parallel()

	for _, name := range VariantNames() {
		v, err := Lookup(name)
		require.NoError(t, err)
		seen := map[string]bool{}
		for _, topping := range v.Toppings {
			require.False(t, seen[topping.Name], "duplicate topping %q in %s", topping.Name, name)
			seen[topping.Name] = true
		}
	}
}

func TestVariantsAreIsolatedCopies(t *testing.T) {
	t.Parallel()

	p := Pizza()
	p.Sizes[1].Width = 999
	p.Toppings[2].Placements[0].Top = "0%"
	p.Toppings[0].Style.Width = 1

	fresh := Pizza()
	assert.Equal(t, 250, fresh.Sizes[1].Width)
	assert.Equal(t, PresetCenter, fresh.Toppings[2].Placements[0])
	assert.Equal(t, 20, fresh.Toppings[0].Style.Width)
	assert.Equal(t, 250, Cookie().Sizes[1].Width, "cookie keeps its own size table")

	looked, err := Lookup("pizza")
	require.NoError(t, err)
	looked.Sizes[0].Name = "tiny"
	assert.Equal(t, "small", Pizza().Sizes[0].Name)
}
