package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/toppings/internal/catalog"
	"github.com/alexisbeaulieu97/toppings/internal/selection"
)

func sel(size string, toppings ...string) selection.Selection {
	return selection.Selection{Size: size, Toppings: selection.NewToppingSet(toppings...)}
}

func TestComposeMediumWithoutToppings(t *testing.T) {
	t.Parallel()

	comp := Compose(catalog.Pizza(), sel("medium"))

	require.Equal(t, "Pizza: medium with no toppings", comp.Summary)
	require.Equal(t, 250, comp.Width)
	require.NotNil(t, comp.Base)
	assert.Equal(t, 250, comp.Base.Width)
	assert.Zero(t, comp.Base.MarginLeft)
	assert.Empty(t, comp.Layers)
	assert.Zero(t, comp.InstanceCount())
}

func TestComposeLargeWithTomato(t *testing.T) {
	t.Parallel()

	comp := Compose(catalog.Pizza(), sel("large", "tomato"))

	require.Equal(t, "Pizza: large with tomato", comp.Summary)
	require.NotNil(t, comp.Base)
	assert.Equal(t, 350, comp.Base.Width)
	assert.Equal(t, -17, comp.Base.MarginLeft)

	require.Len(t, comp.Layers, 1)
	tomato := comp.Layers[0]
	require.Equal(t, "tomato", tomato.Name)
	require.Len(t, tomato.Instances, 6)
	assert.Equal(t, catalog.Style{Width: 30, BorderRadius: 10}, tomato.Style)

	want, _ := catalog.Pizza().LookupTopping("tomato")
	for i, inst := range tomato.Instances {
		assert.Equal(t, want.Placements[i], inst.Placement)
	}
	assert.InDelta(t, 160, tomato.Instances[0].X, 0.0001)
	assert.InDelta(t, 160, tomato.Instances[0].Y, 0.0001)
}

func TestComposeCookieSmallWithCandyAndZigzag(t *testing.T) {
	t.Parallel()

	comp := Compose(catalog.Cookie(), sel("small", "candy", "zigzag"))

	candy, ok := comp.Layer("candy")
	require.True(t, ok)
	zigzag, ok := comp.Layer("zigzag")
	require.True(t, ok)

	assert.Len(t, candy.Instances, 3)
	assert.Len(t, zigzag.Instances, 6)
	assert.Equal(t, catalog.Style{Width: 24, BorderRadius: 12}, candy.Style)
	assert.Equal(t, catalog.Style{Width: 18}, zigzag.Style)
	assert.Equal(t, 9, comp.InstanceCount())
	assert.Equal(t, "Cookie: small with candy, zigzag", comp.Summary)
}

func TestComposeUsesCatalogOrderForLayers(t *testing.T) {
	t.Parallel()

	comp := Compose(catalog.Pizza(), sel("medium", "tomato", "cheese", "mushrooms"))

	names := make([]string, 0, len(comp.Layers))
	for _, layer := range comp.Layers {
		names = append(names, layer.Name)
	}
	require.Equal(t, []string{"cheese", "mushrooms", "tomato"}, names)
	require.Equal(t, "Pizza: medium with tomato, cheese, mushrooms", comp.Summary)
}

func TestComposeUnknownSize(t *testing.T) {
	t.Parallel()

	comp := Compose(catalog.Pizza(), sel("jumbo", "cheese"))

	assert.Nil(t, comp.Base)
	assert.Zero(t, comp.Width)
	assert.Equal(t, "Pizza: jumbo with cheese", comp.Summary)
	assert.Len(t, comp.Layers, 1)
}

func TestComposeIgnoresUncatalogedToppings(t *testing.T) {
	t.Parallel()

	comp := Compose(catalog.Pizza(), sel("small", "pineapple"))

	assert.Empty(t, comp.Layers)
	assert.Equal(t, "Pizza: small with pineapple", comp.Summary)
}

func TestComposeIsPure(t *testing.T) {
	t.Parallel()

	inputs := []selection.Selection{
		sel("small"),
		sel("medium", "cheese"),
		sel("large", "tomato", "mushrooms"),
		sel("unknown", "tomato"),
	}

	for _, in := range inputs {
		first := Compose(catalog.Pizza(), in)
		second := Compose(catalog.Pizza(), in)
		require.Equal(t, first, second)
	}
}

func TestSummaryDefaultsLabel(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Pizza: small with no toppings", Summary("", sel("small")))
}
