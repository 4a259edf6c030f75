// Package session owns the signed-in user of the running application.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/skybook/skybook-web/internal/models"
	"github.com/skybook/skybook-web/internal/navigation"
	apperrors "github.com/skybook/skybook-web/pkg/errors"
	"github.com/skybook/skybook-web/pkg/jwt"
	"github.com/skybook/skybook-web/pkg/logger"
	"github.com/skybook/skybook-web/pkg/metrics"
	"github.com/skybook/skybook-web/pkg/skyapi"
	"go.uber.org/zap"
)

// AuthAPI is the part of the booking API the session needs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*skyapi.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*skyapi.AuthResponse, error)
	Logout(ctx context.Context) error
	GetCurrentUser(ctx context.Context) (*models.User, error)
}

// State is an observation of the session.
type State struct {
	User            *models.User `json:"user"`
	IsAuthenticated bool         `json:"isAuthenticated"`
	Loading         bool         `json:"loading"`
}

// Role returns the signed-in role, or "".
func (s State) Role() models.Role {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}

// Store is the single source of truth for who is signed in.
type Store struct {
	auth   AuthAPI
	tokens TokenStore
	nav    navigation.Navigator
	now    func() time.Time

	mu         sync.RWMutex
	user       *models.User
	loading    bool
	processing bool // a Login or Register is in flight

	subMu   sync.Mutex
	subs    map[int]func(State)
	nextSub int

	initOnce sync.Once
	ready    chan struct{}
	pending  sync.WaitGroup
}

// New creates a store in the loading state. Call Init (or Start) to restore
// a persisted session.
func New(auth AuthAPI, tokens TokenStore, nav navigation.Navigator) *Store {
	return &Store{
		auth:    auth,
		tokens:  tokens,
		nav:     nav,
		now:     time.Now,
		loading: true,
		subs:    make(map[int]func(State)),
		ready:   make(chan struct{}),
	}
}

// State returns the current observation. IsAuthenticated is derived from User
// here and nowhere else.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

func (s *Store) stateLocked() State {
	return State{
		User:            s.user,
		IsAuthenticated: s.user != nil,
		Loading:         s.loading,
	}
}

// Ready is closed once Init has finished.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

// Start runs Init in the background.
func (s *Store) Start(ctx context.Context) {
	go s.Init(ctx)
}

// Init restores the session from the persisted token. It never fails: any
// problem leaves the visitor signed out. Only the first call does any work.
func (s *Store) Init(ctx context.Context) {
	s.initOnce.Do(func() {
		defer close(s.ready)
		user := s.restore(ctx)
		s.update(func() {
			s.user = user
			s.loading = s.processing
		})
	})
}

func (s *Store) restore(ctx context.Context) *models.User {
	token, err := s.tokens.Load()
	if err != nil {
		logger.Warn("Failed to read persisted token", zap.Error(err))
		return nil
	}
	if token == "" {
		logger.Debug("No persisted session")
		return nil
	}
	if jwt.Expired(token, s.now()) {
		logger.Info("Persisted session expired")
		s.clearToken()
		return nil
	}

	user, err := s.auth.GetCurrentUser(ctx)
	if err != nil {
		logger.Info("Could not restore session", zap.Error(err))
		if errors.Is(err, apperrors.ErrUnauthorized) {
			s.clearToken()
		}
		return nil
	}

	logger.Info("Session restored", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return user
}

// Login signs in, persists the token and returns the backend payload. It
// fails with ErrBusy while another Login or Register is in flight.
func (s *Store) Login(ctx context.Context, email, password string) (resp *skyapi.AuthResponse, err error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()
	defer func() {
		metrics.LoginAttempts.WithLabelValues(metrics.Status(err)).Inc()
	}()

	resp, err = s.auth.Login(ctx, email, password)
	if err != nil {
		logger.Warn("Login failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	if resp.User() == nil {
		return nil, fmt.Errorf("login response carried no user: %w", apperrors.ErrUnauthorized)
	}

	if err := s.tokens.Save(resp.Token); err != nil {
		return nil, fmt.Errorf("persist token: %w", err)
	}

	user := resp.User()
	s.update(func() {
		s.user = user
	})
	logger.Info("User signed in", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return resp, nil
}

// Register creates an account. It never signs the caller in and, like
// Login, fails with ErrBusy while another call is in flight.
func (s *Store) Register(ctx context.Context, email, password, name string) (resp *skyapi.AuthResponse, err error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()
	defer func() {
		metrics.Registrations.WithLabelValues(metrics.Status(err)).Inc()
	}()

	resp, err = s.auth.Register(ctx, models.RegisterRequest{
		Name:            name,
		Email:           email,
		Password:        password,
		PasswordConfirm: password,
	})
	if err != nil {
		logger.Warn("Registration failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	logger.Info("Account registered", zap.String("email", email))
	return resp, nil
}

// Logout signs out locally, sends the user to the login page and tells the
// backend in the background. A failed backend call is only logged.
func (s *Store) Logout(ctx context.Context) {
	token, _ := s.tokens.Load() //nolint:errcheck // an unreadable token is cleared below anyway

	s.update(func() {
		s.user = nil
	})
	s.clearToken()
	navigation.From(ctx, s.nav).Navigate(navigation.LoginPath)

	callCtx := context.WithoutCancel(ctx)
	if token != "" {
		callCtx = skyapi.WithToken(callCtx, token)
	}

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		if err := s.auth.Logout(callCtx); err != nil {
			logger.Warn("Logout request failed", zap.Error(err))
		}
	}()
}

// Wait blocks until background calls started by Logout have finished.
func (s *Store) Wait() {
	s.pending.Wait()
}

// CanAccess reports whether the signed-in user holds role. An empty role
// only requires a signed-in user.
func (s *Store) CanAccess(role models.Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return false
	}
	if role == "" {
		return true
	}
	return s.user.Role == role
}

// Subscribe registers fn to receive every new State. The returned function
// removes the subscription.
func (s *Store) Subscribe(fn func(State)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

func (s *Store) begin() error {
	var busy bool
	s.change(func() bool {
		if s.processing {
			busy = true
			return false
		}
		s.processing = true
		s.loading = true
		return true
	})
	if busy {
		logger.Debug("Session call rejected while another is in flight")
		return apperrors.ErrBusy
	}
	return nil
}

func (s *Store) end() {
	s.update(func() {
		s.processing = false
		s.loading = false
	})
}

// update applies mutate under the lock and notifies subscribers outside it.
func (s *Store) update(mutate func()) {
	s.change(func() bool {
		mutate()
		return true
	})
}

// change is update for mutations that may turn out to be no-ops; subscribers
// are only notified when mutate reports a change.
func (s *Store) change(mutate func() bool) {
	s.mu.Lock()
	changed := mutate()
	state := s.stateLocked()
	s.mu.Unlock()
	if !changed {
		return
	}

	s.subMu.Lock()
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}

func (s *Store) clearToken() {
	if err := s.tokens.Clear(); err != nil {
		logger.Warn("Failed to clear persisted token", zap.Error(err))
	}
}
