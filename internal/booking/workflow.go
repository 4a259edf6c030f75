// Package booking drives the passenger details, seat, payment and
// confirmation sequence for one flight.
package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/skybook/skybook-web/internal/models"
	"github.com/skybook/skybook-web/internal/navigation"
	"github.com/skybook/skybook-web/internal/seatmap"
	"github.com/skybook/skybook-web/internal/toast"
	apperrors "github.com/skybook/skybook-web/pkg/errors"
	"github.com/skybook/skybook-web/pkg/logger"
	"github.com/skybook/skybook-web/pkg/metrics"
	"github.com/skybook/skybook-web/pkg/skyapi"
)

var (
	ErrFlightNotFound = apperrors.NotFoundError("flight")
	ErrCannotProceed  = fmt.Errorf("step requirements not met: %w", apperrors.ErrValidation)
	ErrBusy           = apperrors.ErrBusy
)

const (
	msgLoadFailed     = "Failed to load flight details"
	msgBookingCreated = "Booking created successfully!"
	msgBookingFailed  = "Failed to create booking"
	msgPaymentFailed  = "Failed to initialize payment"
	msgVerifyFailed   = "Failed to verify payment"
	msgPaymentOK      = "Payment successful!"
	msgPaymentNotOK   = "Payment was not successful"
)

type FlightSource interface {
	Get(ctx context.Context, id string) (*models.Flight, error)
}

type BookingCreator interface {
	Create(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error)
}

type PaymentGateway interface {
	Initiate(ctx context.Context, req models.PaymentRequest) (*models.PaymentInitiation, error)
	Verify(ctx context.Context, reference string) (*models.PaymentVerification, error)
}

// Notifier shows feedback to the user.
type Notifier interface {
	Success(message string) toast.Message
	Error(message string) toast.Message
}

type nopNotifier struct{}

func (nopNotifier) Success(message string) toast.Message { return toast.Message{Message: message} }
func (nopNotifier) Error(message string) toast.Message   { return toast.Message{Message: message} }

// Deps are the collaborators of a Workflow. Rand may be nil.
type Deps struct {
	Flights  FlightSource
	Bookings BookingCreator
	Payments PaymentGateway
	Notifier Notifier
	Rand     seatmap.Rand
}

type PassengerDetails struct {
	Name  string `json:"name" form:"name"`
	Email string `json:"email" form:"email" binding:"omitempty,email"`
	Phone string `json:"phone" form:"phone" binding:"max=32"`
}

func (p PassengerDetails) complete() bool {
	return filled(p.Name, p.Email, p.Phone)
}

// Card is collected for display only; it is never sent anywhere.
type Card struct {
	Number string `json:"number" form:"number"`
	Expiry string `json:"expiry" form:"expiry"`
	CVV    string `json:"cvv" form:"cvv"`
	Name   string `json:"name" form:"name"`
}

func (c Card) complete() bool {
	return filled(c.Number, c.Expiry, c.CVV, c.Name)
}

// Draft is the user's in-progress input.
type Draft struct {
	FlightID     string           `json:"flightId"`
	Passenger    PassengerDetails `json:"passenger"`
	SelectedSeat string           `json:"selectedSeat"`
	Card         Card             `json:"-"`
}

// Result is the outcome of a successful Next. Redirect is set when the
// user must continue at the payment provider.
type Result struct {
	Step     Step
	Redirect string
}

// Workflow is the booking sequence for one flight. It is safe for
// concurrent use; only one submit may be in flight at a time.
type Workflow struct {
	deps Deps

	mu           sync.Mutex
	step         Step
	draft        Draft
	flight       *models.Flight
	seats        []seatmap.Seat
	booking      *models.Booking
	initiation   *models.PaymentInitiation
	verification *models.PaymentVerification
	processing   bool
}

// New starts a workflow at the details step.
func New(flightID string, deps Deps) *Workflow {
	if deps.Notifier == nil {
		deps.Notifier = nopNotifier{}
	}
	return &Workflow{
		deps:  deps,
		step:  StepDetails,
		draft: Draft{FlightID: flightID},
	}
}

func (w *Workflow) FlightID() string {
	return w.draft.FlightID
}

// Load fetches the flight and generates its seat map. The first available
// seat is selected if none is selected yet.
func (w *Workflow) Load(ctx context.Context) error {
	if err := w.begin(); err != nil {
		return err
	}

	flight, err := w.deps.Flights.Get(ctx, w.draft.FlightID)
	if err == nil && flight == nil {
		err = ErrFlightNotFound
	}
	if err != nil {
		w.end()
		logger.Warn("Failed to load flight for booking",
			zap.String("flight_id", w.draft.FlightID),
			zap.Error(err))
		w.deps.Notifier.Error(msgLoadFailed)
		if errors.Is(err, ErrFlightNotFound) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrFlightNotFound, err)
	}

	seats := seatmap.Generate(flight.SeatsAvailable, w.deps.Rand)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.processing = false
	w.flight = flight
	w.seats = seats
	if w.draft.SelectedSeat == "" {
		if seat, ok := seatmap.FirstAvailable(seats); ok {
			w.draft.SelectedSeat = seat.ID
		}
	}
	return nil
}

// SetPassenger replaces the passenger details.
func (w *Workflow) SetPassenger(p PassengerDetails) error {
	return w.edit(func() error {
		w.draft.Passenger = p
		return nil
	})
}

// SelectSeat picks a seat from the generated map.
func (w *Workflow) SelectSeat(id string) error {
	return w.edit(func() error {
		id = strings.ToUpper(strings.TrimSpace(id))
		seat, ok := seatmap.Find(w.seats, id)
		if !ok {
			return apperrors.NewValidationError("seat", "unknown seat "+id)
		}
		if !seat.Available {
			return apperrors.NewValidationError("seat", "seat "+id+" is not available")
		}
		w.draft.SelectedSeat = seat.ID
		return nil
	})
}

// SetCard replaces the card fields.
func (w *Workflow) SetCard(c Card) error {
	return w.edit(func() error {
		w.draft.Card = c
		return nil
	})
}

// CanProceed reports whether the current step's requirements are met.
func (w *Workflow) CanProceed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.canProceedLocked()
}

func (w *Workflow) canProceedLocked() bool {
	switch w.step {
	case StepDetails:
		return w.draft.Passenger.complete()
	case StepSeat:
		return w.draft.SelectedSeat != ""
	case StepPayment:
		return w.draft.Card.complete() && w.booking != nil && w.flight != nil
	default:
		return false
	}
}

// Next advances one step. Leaving the seat step creates the booking;
// leaving the payment step initiates the payment and returns the provider
// URL to redirect to, also sent to the request's navigator.
func (w *Workflow) Next(ctx context.Context) (Result, error) {
	w.mu.Lock()
	if w.processing {
		w.mu.Unlock()
		return Result{}, ErrBusy
	}
	step := w.step
	if !w.canProceedLocked() {
		w.mu.Unlock()
		return Result{Step: step}, ErrCannotProceed
	}

	switch step {
	case StepDetails:
		w.step = StepSeat
		w.mu.Unlock()
		recordTransition(StepDetails, StepSeat)
		return Result{Step: StepSeat}, nil

	case StepSeat:
		req := w.bookingRequestLocked()
		w.processing = true
		w.mu.Unlock()
		return w.createBooking(ctx, req)

	case StepPayment:
		req := models.PaymentRequest{
			BookingID: w.booking.ID,
			Email:     w.draft.Passenger.Email,
			Amount:    Amount(w.flight.BasePrice),
		}
		w.processing = true
		w.mu.Unlock()
		return w.initiatePayment(ctx, req)
	}

	w.mu.Unlock()
	return Result{Step: step}, ErrCannotProceed
}

func (w *Workflow) bookingRequestLocked() models.CreateBookingRequest {
	p := w.draft.Passenger
	return models.CreateBookingRequest{
		FlightID: w.draft.FlightID,
		Passengers: []models.Passenger{{
			Name:       p.Name,
			Email:      p.Email,
			Phone:      p.Phone,
			SeatNumber: w.draft.SelectedSeat,
		}},
		SeatNumber: w.draft.SelectedSeat,
	}
}

func (w *Workflow) createBooking(ctx context.Context, req models.CreateBookingRequest) (Result, error) {
	created, err := w.deps.Bookings.Create(ctx, req)
	if err == nil && created == nil {
		err = apperrors.InternalError("booking response carried no booking")
	}

	w.mu.Lock()
	w.processing = false
	if err == nil {
		w.booking = created
		w.step = StepPayment
	}
	w.mu.Unlock()

	if err != nil {
		metrics.BookingsCreated.WithLabelValues("error").Inc()
		logger.Warn("Booking creation failed",
			zap.String("flight_id", req.FlightID),
			zap.String("seat", req.SeatNumber),
			zap.Error(err))
		w.deps.Notifier.Error(skyapi.MessageOr(err, msgBookingFailed))
		return Result{Step: StepSeat}, fmt.Errorf("create booking: %w", err)
	}

	metrics.BookingsCreated.WithLabelValues("success").Inc()
	recordTransition(StepSeat, StepPayment)
	logger.Info("Booking created",
		zap.String("booking_id", created.ID),
		zap.String("reference", created.Reference()))
	w.deps.Notifier.Success(msgBookingCreated)
	return Result{Step: StepPayment}, nil
}

func (w *Workflow) initiatePayment(ctx context.Context, req models.PaymentRequest) (Result, error) {
	initiation, err := w.deps.Payments.Initiate(ctx, req)
	if err == nil && (initiation == nil || initiation.AuthorizationURL == "") {
		err = apperrors.InternalError("payment response carried no authorization url")
	}

	w.mu.Lock()
	w.processing = false
	if err == nil {
		w.initiation = initiation
	}
	w.mu.Unlock()

	if err != nil {
		metrics.PaymentInitiations.WithLabelValues("error").Inc()
		logger.Warn("Payment initiation failed",
			zap.String("booking_id", req.BookingID),
			zap.Error(err))
		w.deps.Notifier.Error(skyapi.MessageOr(err, msgPaymentFailed))
		return Result{Step: StepPayment}, fmt.Errorf("initiate payment: %w", err)
	}

	metrics.PaymentInitiations.WithLabelValues("success").Inc()
	logger.Info("Payment initiated",
		zap.String("booking_id", req.BookingID),
		zap.String("reference", initiation.Reference),
		zap.Float64("amount", req.Amount))
	navigation.From(ctx, nil).Navigate(initiation.AuthorizationURL)
	return Result{Step: StepPayment, Redirect: initiation.AuthorizationURL}, nil
}

// Back returns to the previous step. The created booking is kept.
func (w *Workflow) Back() (Step, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.processing {
		return w.step, ErrBusy
	}
	from := w.step
	switch from {
	case StepSeat:
		w.step = StepDetails
	case StepPayment:
		w.step = StepSeat
	default:
		return from, ErrCannotProceed
	}
	recordTransition(from, w.step)
	return w.step, nil
}

// Complete handles the payment provider's return: it verifies reference
// and moves to the confirmation step.
func (w *Workflow) Complete(ctx context.Context, reference string) (*models.PaymentVerification, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, apperrors.NewValidationError("reference", "payment reference is required")
	}
	if err := w.begin(); err != nil {
		return nil, err
	}

	verification, err := w.deps.Payments.Verify(ctx, reference)
	if err == nil && verification == nil {
		err = apperrors.InternalError("verification response was empty")
	}
	if err != nil {
		w.end()
		logger.Warn("Payment verification failed", zap.String("reference", reference), zap.Error(err))
		w.deps.Notifier.Error(skyapi.MessageOr(err, msgVerifyFailed))
		return nil, fmt.Errorf("verify payment: %w", err)
	}

	w.mu.Lock()
	from := w.step
	w.processing = false
	w.verification = verification
	if verification.Booking != nil {
		w.booking = verification.Booking
	}
	w.step = StepConfirmation
	w.mu.Unlock()

	recordTransition(from, StepConfirmation)
	if verification.Succeeded() {
		w.deps.Notifier.Success(msgPaymentOK)
	} else {
		w.deps.Notifier.Error(msgPaymentNotOK)
	}
	return verification, nil
}

// PaymentReference is the provider reference of the initiated payment.
func (w *Workflow) PaymentReference() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.initiation == nil {
		return ""
	}
	return w.initiation.Reference
}

// View is a snapshot of the workflow for rendering.
type View struct {
	Steps        []StepInfo                  `json:"steps"`
	Step         Step                        `json:"step"`
	Flight       *models.Flight              `json:"flight"`
	Draft        Draft                       `json:"draft"`
	Seats        []seatmap.Row               `json:"seats"`
	Booking      *models.Booking             `json:"booking,omitempty"`
	Verification *models.PaymentVerification `json:"verification,omitempty"`
	CanProceed   bool                        `json:"canProceed"`
	Processing   bool                        `json:"processing"`
	BasePrice    float64                     `json:"basePrice"`
	Taxes        float64                     `json:"taxes"`
	Total        float64                     `json:"total"`
}

func (w *Workflow) View() View {
	w.mu.Lock()
	defer w.mu.Unlock()

	v := View{
		Steps:        Steps,
		Step:         w.step,
		Flight:       w.flight,
		Draft:        w.draft,
		Seats:        seatmap.Layout(w.seats),
		Booking:      w.booking,
		Verification: w.verification,
		CanProceed:   w.canProceedLocked(),
		Processing:   w.processing,
	}
	if w.flight != nil {
		v.BasePrice = w.flight.BasePrice
		v.Taxes = DisplayTaxes(w.flight.BasePrice)
		v.Total = DisplayTotal(w.flight.BasePrice)
	}
	return v
}

func (w *Workflow) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *Workflow) Booking() *models.Booking {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.booking
}

func (w *Workflow) begin() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.processing {
		return ErrBusy
	}
	w.processing = true
	return nil
}

func (w *Workflow) end() {
	w.mu.Lock()
	w.processing = false
	w.mu.Unlock()
}

func (w *Workflow) edit(apply func() error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.processing {
		return ErrBusy
	}
	return apply()
}

func recordTransition(from, to Step) {
	metrics.BookingStepTransitions.WithLabelValues(from.String(), to.String()).Inc()
}

// filled treats whitespace-only values as missing.
func filled(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}
