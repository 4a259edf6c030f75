package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/skybook/skybook-web/internal/models"
	apperrors "github.com/skybook/skybook-web/pkg/errors"
	"github.com/skybook/skybook-web/pkg/logger"
	"github.com/skybook/skybook-web/pkg/skyapi"
)

const (
	recentBookingsLimit = 5
	msgRefundOK         = "Refund issued successfully"
	msgRefundFailed     = "Failed to issue refund"
)

// Dashboard is the admin landing page.
type Dashboard struct {
	TotalFlights      int              `json:"totalFlights"`
	TotalBookings     int              `json:"totalBookings"`
	ConfirmedBookings int              `json:"confirmedBookings"`
	Revenue           float64          `json:"revenue"`
	PendingPayments   int              `json:"pendingPayments"`
	RecentBookings    []models.Booking `json:"recentBookings"`
}

// StatsOverview collects the backend's own statistics endpoints.
type StatsOverview struct {
	Dashboard models.Stats `json:"dashboard"`
	Flights   models.Stats `json:"flights"`
	Bookings  models.Stats `json:"bookings"`
	Payments  models.Stats `json:"payments"`
}

type BookingCounts struct {
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
	Cancelled int `json:"cancelled"`
}

type BookingsOverview struct {
	Bookings []models.Booking `json:"bookings"`
	Counts   BookingCounts    `json:"counts"`
}

// PaymentTotals are amounts summed per status group.
type PaymentTotals struct {
	Completed float64 `json:"completed"`
	Pending   float64 `json:"pending"`
	Failed    float64 `json:"failed"`
}

type PaymentsOverview struct {
	Payments []models.Payment `json:"payments"`
	Totals   PaymentTotals    `json:"totals"`
}

// AdminService backs the back office pages. Every mutation is followed by
// a refetch of the affected list.
type AdminService struct {
	flights  FlightsAPI
	bookings BookingsAPI
	payments PaymentsAPI
	users    UsersAPI
	toasts   Notifier
}

func NewAdminService(flights FlightsAPI, bookings BookingsAPI, payments PaymentsAPI, users UsersAPI, toasts Notifier) *AdminService {
	return &AdminService{
		flights:  flights,
		bookings: bookings,
		payments: payments,
		users:    users,
		toasts:   toasts,
	}
}

// Dashboard loads flights, bookings and payments concurrently.
func (s *AdminService) Dashboard(ctx context.Context) (*Dashboard, error) {
	var (
		flights  []models.Flight
		bookings []models.Booking
		payments []models.Payment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		flights, err = s.flights.List(gctx, nil)
		return err
	})
	g.Go(func() (err error) {
		bookings, err = s.bookings.All(gctx)
		return err
	})
	g.Go(func() (err error) {
		payments, err = s.payments.All(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("Failed to load admin dashboard", zap.Error(err))
		return nil, fmt.Errorf("load dashboard: %w", err)
	}

	d := &Dashboard{
		TotalFlights:   len(flights),
		TotalBookings:  len(bookings),
		RecentBookings: bookings[:min(recentBookingsLimit, len(bookings))],
	}
	for _, b := range bookings {
		if b.Status == models.BookingConfirmed {
			d.ConfirmedBookings++
		}
	}
	for _, p := range payments {
		switch p.Status {
		case models.PaymentStatusSuccess:
			d.Revenue += p.Amount
		case models.PaymentStatusInitiated:
			d.PendingPayments++
		}
	}
	d.Revenue = math.Round(d.Revenue*100) / 100
	return d, nil
}

// Stats gathers the backend statistics endpoints concurrently.
func (s *AdminService) Stats(ctx context.Context) (*StatsOverview, error) {
	out := &StatsOverview{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Dashboard, err = s.users.DashboardStats(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Flights, err = s.flights.Stats(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Bookings, err = s.bookings.Stats(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Payments, err = s.payments.Stats(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error("Failed to load statistics", zap.Error(err))
		return nil, fmt.Errorf("load statistics: %w", err)
	}
	return out, nil
}

func (s *AdminService) Flights(ctx context.Context) ([]models.Flight, error) {
	flights, err := s.flights.List(ctx, nil)
	if err != nil {
		logger.Warn("Failed to list flights", zap.Error(err))
		return nil, err
	}
	return flights, nil
}

// SaveFlight creates a flight when id is empty and updates it otherwise.
func (s *AdminService) SaveFlight(ctx context.Context, id string, form models.FlightForm) ([]models.Flight, error) {
	in, err := flightInput(form)
	if err != nil {
		return nil, err
	}

	if id == "" {
		created, err := s.flights.Create(ctx, in)
		if err != nil {
			logger.Error("Failed to create flight", zap.String("flight_number", in.FlightNumber), zap.Error(err))
			return nil, err
		}
		if created != nil {
			logger.Info("Flight created", zap.String("flight_id", created.ID))
		}
	} else {
		if _, err := s.flights.Update(ctx, id, in); err != nil {
			logger.Error("Failed to update flight", zap.String("flight_id", id), zap.Error(err))
			return nil, err
		}
		logger.Info("Flight updated", zap.String("flight_id", id))
	}
	return s.Flights(ctx)
}

func (s *AdminService) DeleteFlight(ctx context.Context, id string) ([]models.Flight, error) {
	if err := s.flights.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete flight", zap.String("flight_id", id), zap.Error(err))
		return nil, err
	}
	logger.Info("Flight deleted", zap.String("flight_id", id))
	return s.Flights(ctx)
}

func (s *AdminService) CancelFlight(ctx context.Context, id string) ([]models.Flight, error) {
	if _, err := s.flights.Cancel(ctx, id); err != nil {
		logger.Error("Failed to cancel flight", zap.String("flight_id", id), zap.Error(err))
		return nil, err
	}
	logger.Info("Flight cancelled", zap.String("flight_id", id))
	return s.Flights(ctx)
}

func (s *AdminService) Bookings(ctx context.Context) (*BookingsOverview, error) {
	bookings, err := s.bookings.All(ctx)
	if err != nil {
		logger.Warn("Failed to list bookings", zap.Error(err))
		return nil, err
	}

	out := &BookingsOverview{Bookings: bookings}
	for _, b := range bookings {
		switch b.Status {
		case models.BookingConfirmed:
			out.Counts.Confirmed++
		case models.BookingPending:
			out.Counts.Pending++
		case models.BookingCancelled:
			out.Counts.Cancelled++
		}
	}
	return out, nil
}

func (s *AdminService) CancelBooking(ctx context.Context, id string) (*BookingsOverview, error) {
	if _, err := s.bookings.Cancel(ctx, id); err != nil {
		logger.Error("Failed to cancel booking", zap.String("booking_id", id), zap.Error(err))
		return nil, err
	}
	logger.Info("Booking cancelled by admin", zap.String("booking_id", id))
	return s.Bookings(ctx)
}

func (s *AdminService) Payments(ctx context.Context) (*PaymentsOverview, error) {
	payments, err := s.payments.All(ctx)
	if err != nil {
		logger.Warn("Failed to list payments", zap.Error(err))
		return nil, err
	}

	out := &PaymentsOverview{Payments: payments}
	for _, p := range payments {
		switch p.Status {
		case models.PaymentStatusSuccess, string(models.PaymentCompleted):
			out.Totals.Completed += p.Amount
		case models.PaymentStatusInitiated, string(models.PaymentPending):
			out.Totals.Pending += p.Amount
		case models.PaymentStatusFailed:
			out.Totals.Failed += p.Amount
		}
	}
	return out, nil
}

func (s *AdminService) Refund(ctx context.Context, paymentID string, form models.RefundForm) (*PaymentsOverview, error) {
	if _, err := s.payments.Refund(ctx, paymentID, strings.TrimSpace(form.Reason)); err != nil {
		logger.Error("Failed to refund payment", zap.String("payment_id", paymentID), zap.Error(err))
		s.toasts.Error(skyapi.MessageOr(err, msgRefundFailed))
		return nil, err
	}
	logger.Info("Payment refunded", zap.String("payment_id", paymentID))
	s.toasts.Success(msgRefundOK)
	return s.Payments(ctx)
}

// flightInput normalises the admin form and derives the duration from the
// schedule.
func flightInput(form models.FlightForm) (models.FlightInput, error) {
	departure, ok := models.ParseTime(form.DepartureTime)
	if !ok {
		return models.FlightInput{}, apperrors.NewValidationError("departureTime", "Invalid departure time")
	}
	arrival, ok := models.ParseTime(form.ArrivalTime)
	if !ok {
		return models.FlightInput{}, apperrors.NewValidationError("arrivalTime", "Invalid arrival time")
	}
	if !arrival.After(departure) {
		return models.FlightInput{}, apperrors.NewValidationError("arrivalTime", "Arrival must be after departure")
	}

	aircraft := strings.TrimSpace(form.Aircraft)
	if aircraft == "" {
		aircraft = defaultAircraft
	}

	return models.FlightInput{
		Airline:        strings.TrimSpace(form.Airline),
		FlightNumber:   strings.ToUpper(strings.TrimSpace(form.FlightNumber)),
		Origin:         strings.ToUpper(strings.TrimSpace(form.Origin)),
		Destination:    strings.ToUpper(strings.TrimSpace(form.Destination)),
		DepartureTime:  departure.UTC().Format(time.RFC3339),
		ArrivalTime:    arrival.UTC().Format(time.RFC3339),
		Duration:       int(arrival.Sub(departure).Minutes()),
		BasePrice:      form.BasePrice,
		SeatsAvailable: form.SeatsAvailable,
		Aircraft:       aircraft,
	}, nil
}
