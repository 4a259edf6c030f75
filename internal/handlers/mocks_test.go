package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/skybook/skybook-web/internal/models"
	"github.com/skybook/skybook-web/internal/services"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, form models.LoginForm) (*models.User, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Register(ctx context.Context, form models.RegisterForm) error {
	args := m.Called(ctx, form)
	return args.Error(0)
}

func (m *MockAuthService) Logout(ctx context.Context) {
	m.Called(ctx)
}

type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, form models.SearchForm) ([]services.FlightResult, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]services.FlightResult), args.Error(1)
}

func (m *MockSearchService) All(ctx context.Context) ([]services.FlightResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]services.FlightResult), args.Error(1)
}

type MockBookingsService struct {
	mock.Mock
}

func (m *MockBookingsService) List(ctx context.Context, owner string) ([]models.Booking, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingsService) Refresh(ctx context.Context, owner string) ([]models.Booking, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingsService) Details(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingsService) Cancel(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Dashboard(ctx context.Context) (*services.Dashboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.Dashboard), args.Error(1)
}

func (m *MockAdminService) Stats(ctx context.Context) (*services.StatsOverview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.StatsOverview), args.Error(1)
}

func (m *MockAdminService) Flights(ctx context.Context) ([]models.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flight), args.Error(1)
}

func (m *MockAdminService) SaveFlight(ctx context.Context, id string, form models.FlightForm) ([]models.Flight, error) {
	args := m.Called(ctx, id, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flight), args.Error(1)
}

func (m *MockAdminService) DeleteFlight(ctx context.Context, id string) ([]models.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flight), args.Error(1)
}

func (m *MockAdminService) CancelFlight(ctx context.Context, id string) ([]models.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flight), args.Error(1)
}

func (m *MockAdminService) Bookings(ctx context.Context) (*services.BookingsOverview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.BookingsOverview), args.Error(1)
}

func (m *MockAdminService) CancelBooking(ctx context.Context, id string) (*services.BookingsOverview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.BookingsOverview), args.Error(1)
}

func (m *MockAdminService) Payments(ctx context.Context) (*services.PaymentsOverview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.PaymentsOverview), args.Error(1)
}

func (m *MockAdminService) Refund(ctx context.Context, paymentID string, form models.RefundForm) (*services.PaymentsOverview, error) {
	args := m.Called(ctx, paymentID, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.PaymentsOverview), args.Error(1)
}
