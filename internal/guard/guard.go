// Package guard decides whether a protected page may render for the
// current session.
package guard

import (
	"sync"

	"github.com/skybook/skybook-web/internal/models"
	"github.com/skybook/skybook-web/internal/navigation"
	"github.com/skybook/skybook-web/internal/session"
)

// Kind is the outcome class of a guard decision.
type Kind int

const (
	// Loading means the session is not settled yet; render nothing.
	Loading Kind = iota
	// Redirect means navigate to Target instead of rendering.
	Redirect
	// Render means the protected content may be shown.
	Render
)

func (k Kind) String() string {
	switch k {
	case Loading:
		return "loading"
	case Redirect:
		return "redirect"
	default:
		return "render"
	}
}

// Decision is what a protected page should do.
type Decision struct {
	Kind   Kind   `json:"kind"`
	Target string `json:"target,omitempty"`
}

// Decide applies the access rules to a session observation. An empty
// allow-list only requires a signed-in user.
func Decide(state session.State, allowed []models.Role) Decision {
	if state.Loading {
		return Decision{Kind: Loading}
	}
	if state.User == nil {
		return Decision{Kind: Redirect, Target: navigation.LoginPath}
	}
	if len(allowed) > 0 && !contains(allowed, state.User.Role) {
		return Decision{Kind: Redirect, Target: navigation.HomeFor(state.User.Role)}
	}
	return Decision{Kind: Render}
}

func contains(roles []models.Role, role models.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// Source is the observable session a Guard follows.
type Source interface {
	State() session.State
	Subscribe(fn func(session.State)) func()
}

// Guard keeps an up-to-date decision for one allow-list.
type Guard struct {
	src Source

	mu          sync.RWMutex
	allowed     []models.Role
	current     Decision
	watchers    []func(Decision)
	unsubscribe func()
}

// New creates a guard for allowed and starts following src.
func New(src Source, allowed ...models.Role) *Guard {
	g := &Guard{
		src:     src,
		allowed: append([]models.Role(nil), allowed...),
	}
	g.current = Decide(src.State(), g.allowed)
	g.unsubscribe = src.Subscribe(func(session.State) {
		g.recompute()
	})
	return g
}

// Decision returns the decision for the latest session state.
func (g *Guard) Decision() Decision {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.current
}

// Allowed returns the current allow-list.
func (g *Guard) Allowed() []models.Role {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]models.Role(nil), g.allowed...)
}

// SetAllowed replaces the allow-list and recomputes.
func (g *Guard) SetAllowed(allowed ...models.Role) {
	g.mu.Lock()
	g.allowed = append([]models.Role(nil), allowed...)
	g.mu.Unlock()
	g.recompute()
}

// Watch calls fn whenever the decision changes.
func (g *Guard) Watch(fn func(Decision)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.watchers = append(g.watchers, fn)
}

// Close stops following the session.
func (g *Guard) Close() {
	if g.unsubscribe != nil {
		g.unsubscribe()
	}
}

// recompute reads the source again rather than trusting the notified
// snapshot, so out-of-order notifications cannot leave a stale decision.
func (g *Guard) recompute() {
	state := g.src.State()

	g.mu.Lock()
	next := Decide(state, g.allowed)
	changed := next != g.current
	g.current = next
	watchers := append(make([]func(Decision), 0, len(g.watchers)), g.watchers...)
	g.mu.Unlock()

	if !changed {
		return
	}
	for _, fn := range watchers {
		fn(next)
	}
}
