package session

import (
	"context"

	"github.com/gin-gonic/gin"
)

type storeKey struct{}

// WithStore provisions store into ctx.
func WithStore(ctx context.Context, store *Store) context.Context {
	return context.WithValue(ctx, storeKey{}, store)
}

// FromContext returns the provisioned store. Calling it outside a provider
// is a programming error and panics.
func FromContext(ctx context.Context) *Store {
	store, ok := ctx.Value(storeKey{}).(*Store)
	if !ok || store == nil {
		panic("session store used outside provider")
	}
	return store
}

// Provide is gin middleware that provisions store into every request context.
func Provide(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(WithStore(c.Request.Context(), store))
		c.Next()
	}
}
