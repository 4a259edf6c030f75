package handlers

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skybook/skybook-web/internal/models"
	"github.com/skybook/skybook-web/internal/navigation"
	apperrors "github.com/skybook/skybook-web/pkg/errors"
	"github.com/skybook/skybook-web/pkg/skyapi"
)

func navigateTo(path string) func(mock.Arguments) {
	return func(args mock.Arguments) {
		ctx := args.Get(0).(context.Context)
		navigation.From(ctx, nil).Navigate(path)
	}
}

func TestAuthHandler_LoginPageRedirectsSignedIn(t *testing.T) {
	handler := NewAuthHandler(new(MockAuthService), NewPages(newToasts()))

	t.Run("traveller", func(t *testing.T) {
		router := newRouter(newSession(traveller))
		router.GET("/login", handler.LoginPage)

		w := serve(router, http.MethodGet, "/login", nil)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, navigation.SearchPath, w.Header().Get("Location"))
	})

	t.Run("anonymous sees the form", func(t *testing.T) {
		router := newRouter(newSession(nil))
		router.GET("/login", handler.LoginPage)

		w := serve(router, http.MethodGet, "/login", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Login", decodePage(t, w, nil).Title)
	})
}

func TestAuthHandler_LoginSuccessRedirects(t *testing.T) {
	svc := new(MockAuthService)
	form := models.LoginForm{Email: "root@example.com", Password: "secret123"}
	svc.On("Login", mock.Anything, form).Run(navigateTo(navigation.AdminPath)).Return(admin, nil)

	router := newRouter(newSession(nil))
	router.POST("/login", NewAuthHandler(svc, NewPages(newToasts())).Login)

	w := serve(router, http.MethodPost, "/login", url.Values{
		"email":    {form.Email},
		"password": {form.Password},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, navigation.AdminPath, w.Header().Get("Location"))
	svc.AssertExpectations(t)
}

func TestAuthHandler_LoginFailure(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "backend rejects credentials",
			err:     &skyapi.APIError{Message: "Incorrect email or password", StatusCode: 401},
			status:  http.StatusUnauthorized,
			message: "Incorrect email or password",
		},
		{
			name:    "missing fields",
			err:     apperrors.NewValidationError("", "Email and password are required"),
			status:  http.StatusBadRequest,
			message: "Email and password are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAuthService)
			svc.On("Login", mock.Anything, mock.Anything).Return(nil, tt.err)

			router := newRouter(newSession(nil))
			router.POST("/login", NewAuthHandler(svc, NewPages(newToasts())).Login)

			w := serve(router, http.MethodPost, "/login", url.Values{"email": {"ada@example.com"}})

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.message, decodePage(t, w, nil).Error)
		})
	}
}

func TestAuthHandler_RegisterSuccessRedirectsToLogin(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Register", mock.Anything, mock.AnythingOfType("models.RegisterForm")).
		Run(navigateTo(navigation.LoginPath)).Return(nil)

	router := newRouter(newSession(nil))
	router.POST("/register", NewAuthHandler(svc, NewPages(newToasts())).Register)

	w := serve(router, http.MethodPost, "/register", url.Values{
		"name":            {"Ada"},
		"email":           {"ada@example.com"},
		"password":        {"longenough"},
		"confirmPassword": {"longenough"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, navigation.LoginPath, w.Header().Get("Location"))
}

func TestAuthHandler_RegisterValidation(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Register", mock.Anything, mock.Anything).
		Return(apperrors.NewValidationError("confirmPassword", "Passwords do not match"))

	router := newRouter(newSession(nil))
	router.POST("/register", NewAuthHandler(svc, NewPages(newToasts())).Register)

	w := serve(router, http.MethodPost, "/register", url.Values{
		"name":            {"Ada"},
		"email":           {"ada@example.com"},
		"password":        {"longenough"},
		"confirmPassword": {"different1"},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var form models.RegisterForm
	page := decodePage(t, w, &form)
	assert.Equal(t, "Passwords do not match", page.Error)
	assert.Equal(t, "ada@example.com", form.Email)
	assert.Empty(t, form.Password, "passwords are never echoed back")
}

func TestAuthHandler_Logout(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Logout", mock.Anything).Run(navigateTo(navigation.LoginPath)).Return()

	router := newRouter(newSession(traveller))
	router.POST("/logout", NewAuthHandler(svc, NewPages(newToasts())).Logout)

	w := serve(router, http.MethodPost, "/logout", nil)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, navigation.LoginPath, w.Header().Get("Location"))
	svc.AssertExpectations(t)
}
