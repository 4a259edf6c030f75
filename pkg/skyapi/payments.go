package skyapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/skybook/skybook-web/internal/models"
	apperrors "github.com/skybook/skybook-web/pkg/errors"
)

// PaymentsAPI groups the /payments endpoints.
type PaymentsAPI struct {
	c *Client
}

// Initiate starts a provider checkout for a booking.
func (p *PaymentsAPI) Initiate(ctx context.Context, req models.PaymentRequest) (*models.PaymentInitiation, error) {
	var raw json.RawMessage
	if err := p.c.do(ctx, "payments.initiate", http.MethodPost, EndpointPaymentInitiate, req, &raw); err != nil {
		return nil, err
	}

	if len(raw) == 0 {
		return &models.PaymentInitiation{}, nil
	}
	var env envelope[models.PaymentInitiation]
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}
	initiation := env.Data
	if initiation.AuthorizationURL == "" {
		// some deployments answer without the data wrapper
		_ = json.Unmarshal(raw, &initiation) //nolint:errcheck // already known to be valid JSON
	}
	return &initiation, nil
}

// Verify asks the backend to confirm a provider reference.
func (p *PaymentsAPI) Verify(ctx context.Context, reference string) (*models.PaymentVerification, error) {
	endpoint := EndpointPaymentVerify + "?reference=" + url.QueryEscape(reference)
	var env envelope[struct {
		Payment *models.Payment `json:"payment"`
		Booking *models.Booking `json:"booking"`
	}]
	if err := p.c.do(ctx, "payments.verify", http.MethodGet, endpoint, nil, &env); err != nil {
		return nil, err
	}
	return &models.PaymentVerification{
		Status:  env.Status,
		Message: env.Message,
		Payment: env.Data.Payment,
		Booking: env.Data.Booking,
	}, nil
}

func (p *PaymentsAPI) Mine(ctx context.Context) ([]models.Payment, error) {
	var raw json.RawMessage
	if err := p.c.do(ctx, "payments.mine", http.MethodGet, EndpointMyPayments, nil, &raw); err != nil {
		return nil, err
	}
	return decodeCollection[models.Payment](raw, "payments")
}

func (p *PaymentsAPI) Get(ctx context.Context, id string) (*models.Payment, error) {
	var raw json.RawMessage
	if err := p.c.do(ctx, "payments.get", http.MethodGet, EndpointPayments+"/"+url.PathEscape(id), nil, &raw); err != nil {
		return nil, err
	}
	payment, err := decodeDocument[models.Payment](raw, "payment")
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperrors.NotFoundError("payment")
	}
	return payment, nil
}

// All lists every payment (admin).
func (p *PaymentsAPI) All(ctx context.Context) ([]models.Payment, error) {
	var raw json.RawMessage
	if err := p.c.do(ctx, "payments.all", http.MethodGet, EndpointPayments, nil, &raw); err != nil {
		return nil, err
	}
	return decodeCollection[models.Payment](raw, "payments")
}

func (p *PaymentsAPI) Refund(ctx context.Context, paymentID, reason string) (*models.Payment, error) {
	var raw json.RawMessage
	body := models.RefundRequest{PaymentID: paymentID, Reason: reason}
	if err := p.c.do(ctx, "payments.refund", http.MethodPost, EndpointPaymentRefund, body, &raw); err != nil {
		return nil, err
	}
	return decodeDocument[models.Payment](raw, "payment")
}

func (p *PaymentsAPI) Stats(ctx context.Context) (models.Stats, error) {
	var raw json.RawMessage
	if err := p.c.do(ctx, "payments.stats", http.MethodGet, EndpointPaymentStats, nil, &raw); err != nil {
		return nil, err
	}
	return decodeStats(raw)
}
