package navigation

import (
	"context"
	"sync"
)

// Navigator moves the user to another page.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// Recorder remembers requested destinations; the page host turns the last
// one into a redirect.
type Recorder struct {
	mu      sync.Mutex
	history []string
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Navigate(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = append(r.history, path)
}

// Target returns the most recent destination, or "".
func (r *Recorder) Target() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.history) == 0 {
		return ""
	}
	return r.history[len(r.history)-1]
}

// History returns every destination in request order.
func (r *Recorder) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.history...)
}

type navigatorKey struct{}

// WithNavigator scopes nav to the request carried by ctx.
func WithNavigator(ctx context.Context, nav Navigator) context.Context {
	return context.WithValue(ctx, navigatorKey{}, nav)
}

// FromContext returns the request-scoped navigator, if any.
func FromContext(ctx context.Context) (Navigator, bool) {
	nav, ok := ctx.Value(navigatorKey{}).(Navigator)
	return nav, ok && nav != nil
}

// From returns the request-scoped navigator or fallback.
// With neither, navigation requests are dropped.
func From(ctx context.Context, fallback Navigator) Navigator {
	if nav, ok := FromContext(ctx); ok {
		return nav
	}
	if fallback != nil {
		return fallback
	}
	return NavigatorFunc(func(string) {})
}
