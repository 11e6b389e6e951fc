package selection

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequire(t *testing.T) {
	t.Parallel()

	store := NewStore("medium")
	got, err := Require(store, "SizeSelector")
	require.NoError(t, err)
	require.Same(t, store, got)

	got, err = Require(nil, "SizeSelector")
	require.Nil(t, got)
	require.ErrorIs(t, err, ErrOutsideBuilder)

	var scopeErr *ScopeError
	require.True(t, errors.As(err, &scopeErr))
	require.Equal(t, "SizeSelector", scopeErr.Component)
	require.Equal(t, "SizeSelector: builder components must be used inside a Builder", err.Error())
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewStore("large")
	ctx := NewContext(context.Background(), store)

	got, err := FromContext(ctx, "Preview")
	require.NoError(t, err)
	require.Same(t, store, got)
}

func TestFromContextWithoutStore(t *testing.T) {
	t.Parallel()

	_, err := FromContext(context.Background(), "ToppingSelector")
	require.ErrorIs(t, err, ErrOutsideBuilder)

	_, err = FromContext(NewContext(context.Background(), nil), "ToppingSelector")
	require.ErrorIs(t, err, ErrOutsideBuilder)
}

func TestScopeErrorWithoutComponent(t *testing.T) {
	t.Parallel()

	err := &ScopeError{}
	require.Equal(t, ErrOutsideBuilder.Error(), err.Error())
}
