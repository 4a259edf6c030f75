package services

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/skybook/skybook-web/internal/models"
	"github.com/skybook/skybook-web/internal/navigation"
	apperrors "github.com/skybook/skybook-web/pkg/errors"
	"github.com/skybook/skybook-web/pkg/logger"
	"github.com/skybook/skybook-web/pkg/skyapi"
)

const (
	msgBookingCancelled    = "Booking cancelled successfully"
	msgCancelFailed        = "Failed to cancel booking"
	msgBookingDetailFailed = "Failed to load booking details"
)

// BookingsService backs the "my bookings" and booking details pages. It
// keeps the last fetched list and applies cancellations to it locally.
type BookingsService struct {
	api    BookingsAPI
	toasts Notifier

	mu       sync.Mutex
	owner    string
	loaded   bool
	bookings []models.Booking
	current  *models.Booking
}

func NewBookingsService(api BookingsAPI, toasts Notifier) *BookingsService {
	return &BookingsService{api: api, toasts: toasts}
}

// List returns owner's bookings, fetching them on first use.
func (s *BookingsService) List(ctx context.Context, owner string) ([]models.Booking, error) {
	s.mu.Lock()
	if s.loaded && s.owner == owner {
		list := append([]models.Booking(nil), s.bookings...)
		s.mu.Unlock()
		return list, nil
	}
	s.mu.Unlock()
	return s.Refresh(ctx, owner)
}

// Refresh refetches owner's bookings.
func (s *BookingsService) Refresh(ctx context.Context, owner string) ([]models.Booking, error) {
	bookings, err := s.api.Mine(ctx)
	if err != nil {
		logger.Warn("Failed to fetch bookings", zap.String("owner", owner), zap.Error(err))
		s.mu.Lock()
		s.owner, s.loaded, s.bookings = owner, false, nil
		s.mu.Unlock()
		return []models.Booking{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.owner = owner
	s.loaded = true
	s.bookings = bookings
	return append([]models.Booking(nil), bookings...), nil
}

// Details fetches one booking. On failure the user is sent back to the list.
func (s *BookingsService) Details(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.api.Get(ctx, id)
	if err != nil {
		logger.Warn("Failed to fetch booking", zap.String("booking_id", id), zap.Error(err))
		s.toasts.Error(msgBookingDetailFailed)
		navigation.From(ctx, nil).Navigate(navigation.BookingsPath)
		return nil, err
	}

	s.mu.Lock()
	s.current = b
	s.mu.Unlock()
	return b, nil
}

// Cancel cancels a booking and marks it cancelled and refunded in the kept
// list and details without refetching.
func (s *BookingsService) Cancel(ctx context.Context, id string) (*models.Booking, error) {
	if b, ok := s.find(id); ok && b.Status == models.BookingCancelled {
		return nil, apperrors.NewValidationError("booking", "booking is already cancelled")
	}

	returned, err := s.api.Cancel(ctx, id)
	if err != nil {
		logger.Warn("Failed to cancel booking", zap.String("booking_id", id), zap.Error(err))
		s.toasts.Error(skyapi.MessageOr(err, msgCancelFailed))
		return nil, fmt.Errorf("cancel booking %s: %w", id, err)
	}

	updated := s.applyCancellation(id, returned)
	logger.Info("Booking cancelled", zap.String("booking_id", id))
	s.toasts.Success(msgBookingCancelled)
	return updated, nil
}

func (s *BookingsService) find(id string) (models.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil && s.current.ID == id {
		return *s.current, true
	}
	for _, b := range s.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return models.Booking{}, false
}

func (s *BookingsService) applyCancellation(id string, returned *models.Booking) *models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated *models.Booking
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].MarkCancelled()
			b := s.bookings[i]
			updated = &b
		}
	}

	if s.current != nil && s.current.ID == id {
		b := *s.current
		b.MarkCancelled()
		s.current = &b
		updated = &b
	}

	if updated == nil {
		b := models.Booking{ID: id}
		if returned != nil {
			b = *returned
		}
		b.MarkCancelled()
		updated = &b
	}
	return updated
}
