package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/skybook/skybook-web/internal/booking"
	"github.com/skybook/skybook-web/internal/models"
	apperrors "github.com/skybook/skybook-web/pkg/errors"
	"github.com/skybook/skybook-web/pkg/logger"
)

var errDraftExpired = apperrors.NotFoundError("booking session")

// PaymentVerifier checks a provider reference with the backend.
type PaymentVerifier interface {
	Verify(ctx context.Context, reference string) (*models.PaymentVerification, error)
}

// ConfirmationView is shown when the payment provider sends the user back
// without a workflow in progress.
type ConfirmationView struct {
	Step         booking.Step                `json:"step"`
	Verification *models.PaymentVerification `json:"verification"`
	Booking      *models.Booking             `json:"booking,omitempty"`
}

type seatForm struct {
	Seat string `form:"seat" json:"seat" binding:"required,max=4"`
}

// BookingHandler serves the booking wizard at /booking/:flightId.
type BookingHandler struct {
	drafts   *booking.Registry
	payments PaymentVerifier
	pages    *Pages
}

func NewBookingHandler(drafts *booking.Registry, payments PaymentVerifier, pages *Pages) *BookingHandler {
	return &BookingHandler{drafts: drafts, payments: payments, pages: pages}
}

// Show resumes the flight's workflow, or starts and loads a new one.
func (h *BookingHandler) Show(c *gin.Context) {
	flightID := c.Param("flightId")
	if w, ok := h.drafts.Get(flightID); ok {
		h.pages.Render(c, http.StatusOK, w.View())
		return
	}

	w := h.drafts.Open(flightID)
	if err := w.Load(c.Request.Context()); err != nil {
		h.drafts.Discard(flightID)
		h.pages.Fail(c, err, "Failed to load flight details", nil)
		return
	}
	h.pages.Render(c, http.StatusOK, w.View())
}

func (h *BookingHandler) workflow(c *gin.Context) (*booking.Workflow, bool) {
	w, ok := h.drafts.Get(c.Param("flightId"))
	if !ok {
		h.pages.Fail(c, errDraftExpired, "Booking session expired. Please start again.", nil)
		return nil, false
	}
	return w, true
}

// respond renders the workflow after an edit or a step change.
func (h *BookingHandler) respond(c *gin.Context, w *booking.Workflow, err error) {
	if err != nil {
		h.pages.Fail(c, err, "", w.View())
		return
	}
	h.pages.Render(c, http.StatusOK, w.View())
}

func (h *BookingHandler) SetPassenger(c *gin.Context) {
	w, ok := h.workflow(c)
	if !ok {
		return
	}
	var details booking.PassengerDetails
	if err := c.ShouldBind(&details); err != nil {
		respondBindError(c, err)
		return
	}
	h.respond(c, w, w.SetPassenger(details))
}

func (h *BookingHandler) SelectSeat(c *gin.Context) {
	w, ok := h.workflow(c)
	if !ok {
		return
	}
	var form seatForm
	if err := c.ShouldBind(&form); err != nil {
		respondBindError(c, err)
		return
	}
	h.respond(c, w, w.SelectSeat(form.Seat))
}

func (h *BookingHandler) SetCard(c *gin.Context) {
	w, ok := h.workflow(c)
	if !ok {
		return
	}
	var card booking.Card
	if err := c.ShouldBind(&card); err != nil {
		respondBindError(c, err)
		return
	}
	h.respond(c, w, w.SetCard(card))
}

// Next advances the wizard. Leaving the payment step redirects to the
// payment provider.
func (h *BookingHandler) Next(c *gin.Context) {
	w, ok := h.workflow(c)
	if !ok {
		return
	}
	result, err := w.Next(c.Request.Context())
	if err != nil {
		h.respond(c, w, err)
		return
	}
	if navigated(c) {
		return
	}
	if result.Redirect != "" {
		c.Redirect(http.StatusSeeOther, result.Redirect)
		return
	}
	h.respond(c, w, nil)
}

func (h *BookingHandler) Back(c *gin.Context) {
	w, ok := h.workflow(c)
	if !ok {
		return
	}
	_, err := w.Back()
	h.respond(c, w, err)
}

func (h *BookingHandler) Discard(c *gin.Context) {
	h.drafts.Discard(c.Param("flightId"))
	c.Status(http.StatusNoContent)
}

// Confirmation handles the payment provider's return URL.
func (h *BookingHandler) Confirmation(c *gin.Context) {
	reference := strings.TrimSpace(c.Query("reference"))
	if reference == "" {
		reference = strings.TrimSpace(c.Query("trxref"))
	}
	if reference == "" {
		h.pages.Fail(c, apperrors.NewValidationError("reference", "Payment reference is required"), "", nil)
		return
	}

	// The finished draft is gone from the registry but still renders this response
	if w, found, err := h.drafts.Complete(c.Request.Context(), reference); found {
		h.respond(c, w, err)
		return
	}

	logger.Info("Verifying payment without an open booking", zap.String("reference", reference))
	verification, err := h.payments.Verify(c.Request.Context(), reference)
	if err != nil {
		h.pages.Fail(c, err, "Failed to verify payment", nil)
		return
	}
	view := ConfirmationView{Step: booking.StepConfirmation, Verification: verification}
	if verification != nil {
		view.Booking = verification.Booking
	}
	h.pages.Render(c, http.StatusOK, view)
}
