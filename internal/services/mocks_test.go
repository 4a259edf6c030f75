package services_test

import (
	"context"
	"net/url"

	"github.com/stretchr/testify/mock"

	"github.com/skybook/skybook-web/internal/models"
	"github.com/skybook/skybook-web/pkg/skyapi"
)

// MockSessionStore is a mock implementation of services.SessionStore
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Login(ctx context.Context, email, password string) (*skyapi.AuthResponse, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*skyapi.AuthResponse), args.Error(1)
}

func (m *MockSessionStore) Register(ctx context.Context, email, password, name string) (*skyapi.AuthResponse, error) {
	args := m.Called(ctx, email, password, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*skyapi.AuthResponse), args.Error(1)
}

func (m *MockSessionStore) Logout(ctx context.Context) {
	m.Called(ctx)
}

// MockFlightsAPI is a mock implementation of services.FlightsAPI
type MockFlightsAPI struct {
	mock.Mock
}

func (m *MockFlightsAPI) List(ctx context.Context, params url.Values) ([]models.Flight, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flight), args.Error(1)
}

func (m *MockFlightsAPI) Search(ctx context.Context, q skyapi.SearchQuery) ([]models.Flight, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flight), args.Error(1)
}

func (m *MockFlightsAPI) Create(ctx context.Context, in models.FlightInput) (*models.Flight, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flight), args.Error(1)
}

func (m *MockFlightsAPI) Update(ctx context.Context, id string, in models.FlightInput) (*models.Flight, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flight), args.Error(1)
}

func (m *MockFlightsAPI) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFlightsAPI) Cancel(ctx context.Context, id string) (*models.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flight), args.Error(1)
}

func (m *MockFlightsAPI) Stats(ctx context.Context) (models.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Stats), args.Error(1)
}

// MockBookingsAPI is a mock implementation of services.BookingsAPI
type MockBookingsAPI struct {
	mock.Mock
}

func (m *MockBookingsAPI) Mine(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingsAPI) Get(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingsAPI) Cancel(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingsAPI) All(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingsAPI) Stats(ctx context.Context) (models.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Stats), args.Error(1)
}

// MockPaymentsAPI is a mock implementation of services.PaymentsAPI
type MockPaymentsAPI struct {
	mock.Mock
}

func (m *MockPaymentsAPI) All(ctx context.Context) ([]models.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *MockPaymentsAPI) Refund(ctx context.Context, paymentID, reason string) (*models.Payment, error) {
	args := m.Called(ctx, paymentID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *MockPaymentsAPI) Stats(ctx context.Context) (models.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Stats), args.Error(1)
}

// MockUsersAPI is a mock implementation of services.UsersAPI
type MockUsersAPI struct {
	mock.Mock
}

func (m *MockUsersAPI) DashboardStats(ctx context.Context) (models.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Stats), args.Error(1)
}
