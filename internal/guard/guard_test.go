package guard_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skybook/skybook-web/internal/guard"
	"github.com/skybook/skybook-web/internal/models"
	"github.com/skybook/skybook-web/internal/session"
	"github.com/skybook/skybook-web/pkg/skyapi"
)

var (
	member = &models.User{ID: "u1", Role: models.RoleUser}
	admin  = &models.User{ID: "a1", Role: models.RoleAdmin}
)

func TestDecide(t *testing.T) {
	userOnly := []models.Role{models.RoleUser}
	adminOnly := []models.Role{models.RoleAdmin}

	tests := []struct {
		name     string
		state    session.State
		allowed  []models.Role
		expected guard.Decision
	}{
		{
			name:     "loading renders nothing",
			state:    session.State{Loading: true, User: member, IsAuthenticated: true},
			allowed:  userOnly,
			expected: guard.Decision{Kind: guard.Loading},
		},
		{
			name:     "anonymous goes to login",
			state:    session.State{},
			allowed:  userOnly,
			expected: guard.Decision{Kind: guard.Redirect, Target: "/login"},
		},
		{
			name:     "admin on user page goes to dashboard",
			state:    session.State{User: admin, IsAuthenticated: true},
			allowed:  userOnly,
			expected: guard.Decision{Kind: guard.Redirect, Target: "/admin"},
		},
		{
			name:     "member on admin page goes to search",
			state:    session.State{User: member, IsAuthenticated: true},
			allowed:  adminOnly,
			expected: guard.Decision{Kind: guard.Redirect, Target: "/search"},
		},
		{
			name:     "member on user page renders",
			state:    session.State{User: member, IsAuthenticated: true},
			allowed:  userOnly,
			expected: guard.Decision{Kind: guard.Render},
		},
		{
			name:     "no allow-list only needs a user",
			state:    session.State{User: admin, IsAuthenticated: true},
			expected: guard.Decision{Kind: guard.Render},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, guard.Decide(tt.state, tt.allowed))
		})
	}
}

// fakeAuth answers login for whichever user is configured.
type fakeAuth struct {
	mock.Mock
	user *models.User
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*skyapi.AuthResponse, error) {
	return &skyapi.AuthResponse{Token: "t", Data: skyapi.AuthData{User: f.user}}, nil
}

func (f *fakeAuth) Register(ctx context.Context, req models.RegisterRequest) (*skyapi.AuthResponse, error) {
	return &skyapi.AuthResponse{}, nil
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.Called()
	return nil
}

func (f *fakeAuth) GetCurrentUser(ctx context.Context) (*models.User, error) {
	return f.user, nil
}

func TestGuard_FollowsSession(t *testing.T) {
	auth := &fakeAuth{user: member}
	auth.On("Logout").Return()
	store := session.New(auth, session.NewMemoryTokenStore(""), nil)

	g := guard.New(store, models.RoleUser)
	defer g.Close()

	var mu sync.Mutex
	var seen []guard.Decision
	g.Watch(func(d guard.Decision) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, d)
	})

	assert.Equal(t, guard.Loading, g.Decision().Kind)

	store.Init(context.Background())
	assert.Equal(t, guard.Decision{Kind: guard.Redirect, Target: "/login"}, g.Decision())

	_, err := store.Login(context.Background(), "ada@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, guard.Render, g.Decision().Kind)

	store.Logout(context.Background())
	store.Wait()
	assert.Equal(t, guard.Decision{Kind: guard.Redirect, Target: "/login"}, g.Decision())

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, seen)
	assert.Equal(t, guard.Decision{Kind: guard.Redirect, Target: "/login"}, seen[len(seen)-1])
}

func TestGuard_SetAllowed(t *testing.T) {
	auth := &fakeAuth{user: admin}
	store := session.New(auth, session.NewMemoryTokenStore(""), nil)
	store.Init(context.Background())
	_, err := store.Login(context.Background(), "root@example.com", "secret123")
	require.NoError(t, err)

	g := guard.New(store, models.RoleUser)
	defer g.Close()
	assert.Equal(t, guard.Decision{Kind: guard.Redirect, Target: "/admin"}, g.Decision())

	g.SetAllowed(models.RoleAdmin)
	assert.Equal(t, guard.Render, g.Decision().Kind)
	assert.Equal(t, []models.Role{models.RoleAdmin}, g.Allowed())
}

func TestGuard_CloseStopsFollowing(t *testing.T) {
	auth := &fakeAuth{user: member}
	store := session.New(auth, session.NewMemoryTokenStore(""), nil)

	g := guard.New(store, models.RoleUser)
	g.Close()

	store.Init(context.Background())
	assert.Equal(t, guard.Loading, g.Decision().Kind)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "loading", guard.Loading.String())
	assert.Equal(t, "redirect", guard.Redirect.String())
	assert.Equal(t, "render", guard.Render.String())
}

func TestGuard_WatcherAddedDuringNotification(t *testing.T) {
	auth := &fakeAuth{user: member}
	store := session.New(auth, session.NewMemoryTokenStore(""), nil)

	g := guard.New(store, models.RoleUser)
	defer g.Close()

	var first, second []guard.Kind
	g.Watch(func(d guard.Decision) {
		first = append(first, d.Kind)
		if len(first) == 1 {
			g.Watch(func(d guard.Decision) {
				second = append(second, d.Kind)
			})
		}
	})

	store.Init(context.Background())
	assert.Equal(t, []guard.Kind{guard.Redirect}, first)
	assert.Empty(t, second, "a watcher joins from the next change")

	_, err := store.Login(context.Background(), "ada@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, []guard.Kind{guard.Redirect, guard.Loading, guard.Render}, first)
	assert.Equal(t, []guard.Kind{guard.Loading, guard.Render}, second)
}
