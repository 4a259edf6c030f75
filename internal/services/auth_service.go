package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/skybook/skybook-web/internal/models"
	"github.com/skybook/skybook-web/internal/navigation"
	apperrors "github.com/skybook/skybook-web/pkg/errors"
	"github.com/skybook/skybook-web/pkg/logger"
	"github.com/skybook/skybook-web/pkg/skyapi"
)

// MinPasswordLength is the shortest password the register page accepts.
const MinPasswordLength = 8

const (
	msgLoginOK            = "Login successful!"
	msgLoginFailed        = "Invalid email or password"
	msgRegisterOK         = "Registration successful! Redirecting to login..."
	msgRegisterFailed     = "Registration failed. Please try again."
	msgPasswordsDiffer    = "Passwords do not match"
	msgPasswordTooShort   = "Password must be at least 8 characters"
	msgNameRequired       = "Name is required"
	msgEmailRequired      = "Email is required"
	msgCredentialsMissing = "Email and password are required"
)

// AuthService backs the login and register pages.
type AuthService struct {
	session SessionStore
	toasts  Notifier
}

func NewAuthService(session SessionStore, toasts Notifier) *AuthService {
	return &AuthService{session: session, toasts: toasts}
}

// Login signs in and sends the user to their role's landing page.
func (s *AuthService) Login(ctx context.Context, form models.LoginForm) (*models.User, error) {
	email := strings.TrimSpace(form.Email)
	if email == "" || form.Password == "" {
		s.toasts.Error(msgCredentialsMissing)
		return nil, apperrors.NewValidationError("email", msgCredentialsMissing)
	}

	resp, err := s.session.Login(ctx, email, form.Password)
	if err != nil {
		s.toasts.Error(skyapi.MessageOr(err, msgLoginFailed))
		return nil, err
	}

	user := resp.User()
	s.toasts.Success(msgLoginOK)
	navigation.From(ctx, nil).Navigate(navigation.HomeFor(user.Role))
	return user, nil
}

// Register checks the form locally, creates the account and sends the user
// to the login page. The new user is not signed in.
func (s *AuthService) Register(ctx context.Context, form models.RegisterForm) error {
	if err := checkRegistration(form); err != nil {
		if ve, ok := apperrors.AsValidation(err); ok {
			s.toasts.Error(ve.Message)
		}
		return err
	}

	name := strings.TrimSpace(form.Name)
	email := strings.TrimSpace(form.Email)
	if _, err := s.session.Register(ctx, email, form.Password, name); err != nil {
		s.toasts.Error(skyapi.MessageOr(err, msgRegisterFailed))
		return err
	}

	logger.Info("Registration completed", zap.String("email", email))
	s.toasts.Success(msgRegisterOK)
	navigation.From(ctx, nil).Navigate(navigation.LoginPath)
	return nil
}

func checkRegistration(form models.RegisterForm) error {
	if strings.TrimSpace(form.Name) == "" {
		return apperrors.NewValidationError("name", msgNameRequired)
	}
	if strings.TrimSpace(form.Email) == "" {
		return apperrors.NewValidationError("email", msgEmailRequired)
	}
	if form.Password != form.ConfirmPassword {
		return apperrors.NewValidationError("confirmPassword", msgPasswordsDiffer)
	}
	if len(form.Password) < MinPasswordLength {
		return apperrors.NewValidationError("password", msgPasswordTooShort)
	}
	return nil
}

// Logout signs out. The session store performs the navigation.
func (s *AuthService) Logout(ctx context.Context) {
	s.session.Logout(ctx)
}
