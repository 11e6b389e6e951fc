package selection

import (
	"context"
	"errors"
	"fmt"
)

// ErrOutsideBuilder is matched by every ScopeError via errors.Is.
var ErrOutsideBuilder = errors.New("builder components must be used inside a Builder")

// ScopeError reports a component used without an active store.
type ScopeError struct {
	Component string
}

func (e *ScopeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Component == "" {
		return ErrOutsideBuilder.Error()
	}
	return fmt.Sprintf("%s: %s", e.Component, ErrOutsideBuilder.Error())
}

// Is makes errors.Is(err, ErrOutsideBuilder) succeed.
func (e *ScopeError) Is(target error) bool {
	return target == ErrOutsideBuilder
}

// Require returns the store or a ScopeError naming component.
func Require(store *Store, component string) (*Store, error) {
	if store == nil {
		return nil, &ScopeError{Component: component}
	}
	return store, nil
}

type storeKey struct{}

// NewContext returns a context carrying store.
func NewContext(ctx context.Context, store *Store) context.Context {
	return context.WithValue(ctx, storeKey{}, store)
}

// FromContext extracts the store published by NewContext.
func FromContext(ctx context.Context, component string) (*Store, error) {
	if ctx == nil {
		return Require(nil, component)
	}
	store, _ := ctx.Value(storeKey{}).(*Store)
	return Require(store, component)
}
