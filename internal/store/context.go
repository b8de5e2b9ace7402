package store

import (
	"context"
	"errors"
)

// ErrNotProvisioned is returned when the store is requested from a context
// that was never provisioned with one. This is a programming error, not a
// runtime data error: callers must not recover from it by defaulting.
var ErrNotProvisioned = errors.New("store: used outside a provisioned scope")

type contextKey struct{}

// WithStore provisions the store into the context, scoping where it may be
// used from.
func WithStore(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the provisioned store, or ErrNotProvisioned when the
// context was never provisioned.
func FromContext(ctx context.Context) (*Store, error) {
	s, ok := ctx.Value(contextKey{}).(*Store)
	if !ok || s == nil {
		return nil, ErrNotProvisioned
	}
	return s, nil
}

// MustFromContext returns the provisioned store, panicking on an
// unprovisioned context. Use at call sites where provisioning is a startup
// invariant and absence means the program is miswired.
func MustFromContext(ctx context.Context) *Store {
	s, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return s
}
