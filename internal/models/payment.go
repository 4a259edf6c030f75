package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Payment statuses as reported by the payment provider integration.
const (
	PaymentStatusSuccess   = "success"
	PaymentStatusInitiated = "initiated"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

// Payment is a payment record kept by the backend.
type Payment struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking,omitempty"`
	Email     string    `json:"email,omitempty"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency,omitempty"`
	Status    string    `json:"status"`
	Reference string    `json:"reference,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (p *Payment) UnmarshalJSON(data []byte) error {
	type alias Payment
	aux := struct {
		*alias
		MongoID   string          `json:"_id"`
		Booking   json.RawMessage `json:"booking"`
		CreatedAt string          `json:"createdAt"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = aux.MongoID
	}

	p.BookingID = ""
	if id, ok := rawString(aux.Booking); ok {
		p.BookingID = id
	} else if len(aux.Booking) > 0 && !isNull(aux.Booking) {
		var b Booking
		if err := json.Unmarshal(aux.Booking, &b); err != nil {
			return err
		}
		p.BookingID = b.ID
	}

	p.Status = strings.ToLower(p.Status)
	p.CreatedAt = parseTime(aux.CreatedAt)
	return nil
}

// PaymentRequest is the body of POST /payments/initiate.
type PaymentRequest struct {
	BookingID string  `json:"bookingId"`
	Email     string  `json:"email"`
	Amount    float64 `json:"amount"`
}

// PaymentInitiation is the provider handshake: the browser continues at AuthorizationURL.
type PaymentInitiation struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code,omitempty"`
	Reference        string `json:"reference"`
}

// PaymentVerification is the result of GET /payments/verify.
type PaymentVerification struct {
	Status  string   `json:"status"`
	Message string   `json:"message,omitempty"`
	Payment *Payment `json:"payment,omitempty"`
	Booking *Booking `json:"booking,omitempty"`
}

// Succeeded reports whether the provider confirmed the charge.
func (v *PaymentVerification) Succeeded() bool {
	if v == nil {
		return false
	}
	if v.Payment != nil {
		return v.Payment.Status == PaymentStatusSuccess
	}
	return strings.EqualFold(v.Status, PaymentStatusSuccess)
}

// RefundRequest is the body of POST /payments/refund.
type RefundRequest struct {
	PaymentID string `json:"paymentId"`
	Reason    string `json:"reason,omitempty"`
}
