package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/skybook/skybook-web/internal/middleware"
	"github.com/skybook/skybook-web/internal/models"
	"github.com/skybook/skybook-web/internal/session"
	"github.com/skybook/skybook-web/internal/toast"
	"github.com/skybook/skybook-web/pkg/logger"
	"github.com/skybook/skybook-web/pkg/skyapi"
)

func init() {
	gin.SetMode(gin.TestMode)

	if err := logger.Initialize(logger.Config{
		Level:       "debug",
		Environment: "development",
	}); err != nil {
		panic(err)
	}
}

var (
	traveller = &models.User{ID: "u1", Name: "Ada", Email: "ada@example.com", Role: models.RoleUser}
	admin     = &models.User{ID: "a1", Name: "Root", Email: "root@example.com", Role: models.RoleAdmin}
)

// stubAuth restores user from any persisted token.
type stubAuth struct {
	user *models.User
}

func (a stubAuth) Login(context.Context, string, string) (*skyapi.AuthResponse, error) {
	return nil, &skyapi.APIError{Message: "not used", StatusCode: http.StatusBadRequest}
}

func (a stubAuth) Register(context.Context, models.RegisterRequest) (*skyapi.AuthResponse, error) {
	return nil, &skyapi.APIError{Message: "not used", StatusCode: http.StatusBadRequest}
}

func (a stubAuth) Logout(context.Context) error { return nil }

func (a stubAuth) GetCurrentUser(context.Context) (*models.User, error) {
	if a.user == nil {
		return nil, &skyapi.APIError{Message: "Not logged in", StatusCode: http.StatusUnauthorized}
	}
	return a.user, nil
}

// newSession returns an initialised store signed in as user (nil for anonymous).
func newSession(user *models.User) *session.Store {
	token := ""
	if user != nil {
		token = "opaque-token"
	}
	store := session.New(stubAuth{user: user}, session.NewMemoryTokenStore(token), nil)
	store.Init(context.Background())
	return store
}

func newToasts() *toast.Channel {
	return toast.New(toast.NewManualClock(time.Now()), 0)
}

func newRouter(store *session.Store) *gin.Engine {
	router := gin.New()
	router.Use(middleware.NavigationMiddleware(), session.Provide(store))
	return router
}

func serve(router http.Handler, method, target string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, http.NoBody)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func httptestServe(h http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, http.NoBody))
	return w
}

// decodedPage is Page with Data left raw for per-test decoding.
type decodedPage struct {
	Title   string          `json:"title"`
	Path    string          `json:"path"`
	Nav     NavView         `json:"nav"`
	Session session.State   `json:"session"`
	Toasts  []toast.Message `json:"toasts"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decodePage(t *testing.T, w *httptest.ResponseRecorder, data any) decodedPage {
	t.Helper()
	var page decodedPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page), w.Body.String())
	if data != nil && len(page.Data) > 0 {
		require.NoError(t, json.Unmarshal(page.Data, data))
	}
	return page
}
