package screen

import (
	"context"

	"social-admin-dashboard/internal/model"
)

// Binding hands every session its own screen of one kind.
type Binding[T any] struct {
	name    string
	reg     *Registry[*Screen[T]]
	factory func() *Screen[T]
}

// NewBinding returns a binding that builds screens with factory.
func NewBinding[T any](name string, reg *Registry[*Screen[T]], factory func() *Screen[T]) *Binding[T] {
	return &Binding[T]{name: name, reg: reg, factory: factory}
}

// Bind returns the session's screen. A new screen is mounted with the
// session's access token; an existing one is handed the token again, which
// reloads it only when the token changed.
func (b *Binding[T]) Bind(ctx context.Context, sc model.Scope) *Screen[T] {
	s, created := b.reg.GetOrCreate(sc.SessionID, b.name, b.factory)
	if created {
		s.Mount(ctx, sc.AccessToken)
	} else {
		s.SetToken(ctx, sc.AccessToken)
	}
	return s
}

// Lookup returns the session's screen without mounting one.
func (b *Binding[T]) Lookup(sessionID string) (*Screen[T], bool) {
	return b.reg.Get(sessionID, b.name)
}

// Unmount closes the session's screen.
func (b *Binding[T]) Unmount(sessionID string) bool {
	return b.reg.Remove(sessionID, b.name)
}

// CloseSession unmounts every screen the session holds in this binding's registry.
func (b *Binding[T]) CloseSession(sessionID string) int {
	return b.reg.CloseSession(sessionID)
}
