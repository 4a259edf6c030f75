package skyapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/skybook/skybook-web/internal/models"
	apperrors "github.com/skybook/skybook-web/pkg/errors"
)

// BookingsAPI groups the /bookings endpoints.
type BookingsAPI struct {
	c *Client
}

func bookingPath(id string, suffix string) string {
	return EndpointBookings + "/" + url.PathEscape(id) + suffix
}

// Mine lists the signed-in user's bookings.
func (b *BookingsAPI) Mine(ctx context.Context) ([]models.Booking, error) {
	var raw json.RawMessage
	if err := b.c.do(ctx, "bookings.mine", http.MethodGet, EndpointMyBookings, nil, &raw); err != nil {
		return nil, err
	}
	return decodeCollection[models.Booking](raw, "bookings")
}

func (b *BookingsAPI) Get(ctx context.Context, id string) (*models.Booking, error) {
	var raw json.RawMessage
	if err := b.c.do(ctx, "bookings.get", http.MethodGet, bookingPath(id, ""), nil, &raw); err != nil {
		return nil, err
	}
	booking, err := decodeDocument[models.Booking](raw, "booking")
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperrors.NotFoundError("booking")
	}
	return booking, nil
}

// Create reserves a seat. A 2xx response without a booking document yields nil.
func (b *BookingsAPI) Create(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error) {
	var raw json.RawMessage
	if err := b.c.do(ctx, "bookings.create", http.MethodPost, EndpointBookings, req, &raw); err != nil {
		return nil, err
	}
	return decodeDocument[models.Booking](raw, "booking")
}

func (b *BookingsAPI) Cancel(ctx context.Context, id string) (*models.Booking, error) {
	var raw json.RawMessage
	if err := b.c.do(ctx, "bookings.cancel", http.MethodPatch, bookingPath(id, "/cancel"), nil, &raw); err != nil {
		return nil, err
	}
	return decodeDocument[models.Booking](raw, "booking")
}

// All lists every booking (admin).
func (b *BookingsAPI) All(ctx context.Context) ([]models.Booking, error) {
	var raw json.RawMessage
	if err := b.c.do(ctx, "bookings.all", http.MethodGet, EndpointBookings, nil, &raw); err != nil {
		return nil, err
	}
	return decodeCollection[models.Booking](raw, "bookings")
}

func (b *BookingsAPI) Stats(ctx context.Context) (models.Stats, error) {
	var raw json.RawMessage
	if err := b.c.do(ctx, "bookings.stats", http.MethodGet, EndpointBookingStats, nil, &raw); err != nil {
		return nil, err
	}
	return decodeStats(raw)
}
