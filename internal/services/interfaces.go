package services

import (
	"context"
	"net/url"

	"github.com/skybook/skybook-web/internal/models"
	"github.com/skybook/skybook-web/internal/toast"
	"github.com/skybook/skybook-web/pkg/skyapi"
)

// SessionStore is the part of the session the auth pages drive.
type SessionStore interface {
	Login(ctx context.Context, email, password string) (*skyapi.AuthResponse, error)
	Register(ctx context.Context, email, password, name string) (*skyapi.AuthResponse, error)
	Logout(ctx context.Context)
}

// Notifier shows toasts.
type Notifier interface {
	Success(message string) toast.Message
	Error(message string) toast.Message
	Info(message string) toast.Message
}

// FlightsAPI is the flight call group of the booking backend.
type FlightsAPI interface {
	List(ctx context.Context, params url.Values) ([]models.Flight, error)
	Search(ctx context.Context, q skyapi.SearchQuery) ([]models.Flight, error)
	Create(ctx context.Context, in models.FlightInput) (*models.Flight, error)
	Update(ctx context.Context, id string, in models.FlightInput) (*models.Flight, error)
	Delete(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) (*models.Flight, error)
	Stats(ctx context.Context) (models.Stats, error)
}

// BookingsAPI is the booking call group of the booking backend.
type BookingsAPI interface {
	Mine(ctx context.Context) ([]models.Booking, error)
	Get(ctx context.Context, id string) (*models.Booking, error)
	Cancel(ctx context.Context, id string) (*models.Booking, error)
	All(ctx context.Context) ([]models.Booking, error)
	Stats(ctx context.Context) (models.Stats, error)
}

// PaymentsAPI is the admin side of the payment call group.
type PaymentsAPI interface {
	All(ctx context.Context) ([]models.Payment, error)
	Refund(ctx context.Context, paymentID, reason string) (*models.Payment, error)
	Stats(ctx context.Context) (models.Stats, error)
}

// UsersAPI is the admin user call group.
type UsersAPI interface {
	DashboardStats(ctx context.Context) (models.Stats, error)
}

// AuthServiceInterface defines the login, register and logout pages' actions
type AuthServiceInterface interface {
	Login(ctx context.Context, form models.LoginForm) (*models.User, error)
	Register(ctx context.Context, form models.RegisterForm) error
	Logout(ctx context.Context)
}

// SearchServiceInterface defines flight search
type SearchServiceInterface interface {
	Search(ctx context.Context, form models.SearchForm) ([]FlightResult, error)
	All(ctx context.Context) ([]FlightResult, error)
}

// BookingsServiceInterface defines the traveller's booking pages
type BookingsServiceInterface interface {
	List(ctx context.Context, owner string) ([]models.Booking, error)
	Refresh(ctx context.Context, owner string) ([]models.Booking, error)
	Details(ctx context.Context, id string) (*models.Booking, error)
	Cancel(ctx context.Context, id string) (*models.Booking, error)
}

// AdminServiceInterface defines the back office pages
type AdminServiceInterface interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
	Stats(ctx context.Context) (*StatsOverview, error)
	Flights(ctx context.Context) ([]models.Flight, error)
	SaveFlight(ctx context.Context, id string, form models.FlightForm) ([]models.Flight, error)
	DeleteFlight(ctx context.Context, id string) ([]models.Flight, error)
	CancelFlight(ctx context.Context, id string) ([]models.Flight, error)
	Bookings(ctx context.Context) (*BookingsOverview, error)
	CancelBooking(ctx context.Context, id string) (*BookingsOverview, error)
	Payments(ctx context.Context) (*PaymentsOverview, error)
	Refund(ctx context.Context, paymentID string, form models.RefundForm) (*PaymentsOverview, error)
}

// ContactServiceInterface defines the contact page action
type ContactServiceInterface interface {
	Submit(ctx context.Context, form models.ContactForm) *models.ContactResponse
}

// Ensure services implement their interfaces
var _ AuthServiceInterface = (*AuthService)(nil)
var _ SearchServiceInterface = (*SearchService)(nil)
var _ BookingsServiceInterface = (*BookingsService)(nil)
var _ AdminServiceInterface = (*AdminService)(nil)
var _ ContactServiceInterface = (*ContactService)(nil)

// Ensure the API client satisfies the call groups
var _ FlightsAPI = (*skyapi.FlightsAPI)(nil)
var _ BookingsAPI = (*skyapi.BookingsAPI)(nil)
var _ PaymentsAPI = (*skyapi.PaymentsAPI)(nil)
var _ UsersAPI = (*skyapi.UsersAPI)(nil)
