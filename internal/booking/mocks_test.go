package booking_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/skybook/skybook-web/internal/booking"
	"github.com/skybook/skybook-web/internal/models"
	"github.com/skybook/skybook-web/internal/toast"
	"github.com/skybook/skybook-web/pkg/logger"
)

func init() {
	if err := logger.Initialize(logger.Config{
		Level:       "debug",
		Environment: "development",
	}); err != nil {
		panic(err)
	}
}

type MockFlights struct {
	mock.Mock
}

func (m *MockFlights) Get(ctx context.Context, id string) (*models.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flight), args.Error(1)
}

type MockBookings struct {
	mock.Mock
}

func (m *MockBookings) Create(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

type MockPayments struct {
	mock.Mock
}

func (m *MockPayments) Initiate(ctx context.Context, req models.PaymentRequest) (*models.PaymentInitiation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentInitiation), args.Error(1)
}

func (m *MockPayments) Verify(ctx context.Context, reference string) (*models.PaymentVerification, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentVerification), args.Error(1)
}

// allOpen makes every seat available.
type allOpen struct{}

func (allOpen) Float64() float64 { return 0.99 }

// firstBlocked blocks the first n seats and opens the rest.
type firstBlocked struct {
	n, i int
}

func (r *firstBlocked) Float64() float64 {
	r.i++
	if r.i <= r.n {
		return 0.1
	}
	return 0.9
}

type fixture struct {
	flights  *MockFlights
	bookings *MockBookings
	payments *MockPayments
	toasts   *toast.Channel
	deps     booking.Deps
}

func newFixture() *fixture {
	f := &fixture{
		flights:  new(MockFlights),
		bookings: new(MockBookings),
		payments: new(MockPayments),
		toasts:   toast.New(toast.NewManualClock(time.Now()), 0),
	}
	f.deps = booking.Deps{
		Flights:  f.flights,
		Bookings: f.bookings,
		Payments: f.payments,
		Notifier: f.toasts,
		Rand:     allOpen{},
	}
	return f
}

func (f *fixture) lastToast() toast.Message {
	list := f.toasts.List()
	if len(list) == 0 {
		return toast.Message{}
	}
	return list[len(list)-1]
}

var testFlight = &models.Flight{
	ID:             "FL100",
	Airline:        "SkyAir",
	FlightNumber:   "SA100",
	Origin:         "LOS",
	Destination:    "ABV",
	BasePrice:      299,
	SeatsAvailable: 120,
}
