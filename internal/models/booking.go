package models

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentCompleted PaymentStatus = "completed"
	PaymentRefunded  PaymentStatus = "refunded"
	PaymentFailed    PaymentStatus = "failed"
	PaymentExpired   PaymentStatus = "expired"
)

// Passenger is one traveller on a booking.
type Passenger struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	SeatNumber string `json:"seatNumber"`
}

// Booking is a reservation record. The backend sends Flight either as an id
// or as a populated document, and statuses in mixed case.
type Booking struct {
	ID               string        `json:"id"`
	BookingReference string        `json:"bookingReference,omitempty"`
	Flight           *Flight       `json:"flight,omitempty"`
	UserID           string        `json:"user,omitempty"`
	Passengers       []Passenger   `json:"passengers"`
	SeatNumber       string        `json:"seatNumber,omitempty"`
	Status           BookingStatus `json:"status"`
	PaymentStatus    PaymentStatus `json:"paymentStatus"`
	TotalAmount      float64       `json:"totalAmount,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
}

// Reference is the human-facing booking code, falling back to the id.
func (b *Booking) Reference() string {
	if b.BookingReference != "" {
		return b.BookingReference
	}
	return b.ID
}

// MarkCancelled applies the local effect of a successful cancellation.
func (b *Booking) MarkCancelled() {
	b.Status = BookingCancelled
	b.PaymentStatus = PaymentRefunded
}

func (b *Booking) UnmarshalJSON(data []byte) error {
	type alias Booking
	aux := struct {
		*alias
		MongoID   string          `json:"_id"`
		Flight    json.RawMessage `json:"flight"`
		User      json.RawMessage `json:"user"`
		CreatedAt string          `json:"createdAt"`
	}{alias: (*alias)(b)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if b.ID == "" {
		b.ID = aux.MongoID
	}

	b.Flight = nil
	if id, ok := rawString(aux.Flight); ok {
		if id != "" {
			b.Flight = &Flight{ID: id}
		}
	} else if len(aux.Flight) > 0 && !isNull(aux.Flight) {
		var f Flight
		if err := json.Unmarshal(aux.Flight, &f); err != nil {
			return err
		}
		b.Flight = &f
	}

	b.UserID = ""
	if id, ok := rawString(aux.User); ok {
		b.UserID = id
	} else if len(aux.User) > 0 && !isNull(aux.User) {
		var u User
		if err := json.Unmarshal(aux.User, &u); err != nil {
			return err
		}
		b.UserID = u.ID
	}

	b.Status = BookingStatus(strings.ToLower(string(b.Status)))
	if b.Status == "" {
		b.Status = BookingPending
	}
	b.PaymentStatus = PaymentStatus(strings.ToLower(string(b.PaymentStatus)))
	if b.PaymentStatus == "" {
		b.PaymentStatus = PaymentPending
	}
	b.CreatedAt = parseTime(aux.CreatedAt)
	return nil
}

// CreateBookingRequest is the body of POST /bookings.
type CreateBookingRequest struct {
	FlightID   string      `json:"flightId"`
	Passengers []Passenger `json:"passengers"`
	SeatNumber string      `json:"seatNumber"`
}

func rawString(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
