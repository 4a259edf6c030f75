package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skybook/skybook-web/internal/models"
	"github.com/skybook/skybook-web/internal/services"
)

type BookingsView struct {
	Bookings []models.Booking `json:"bookings"`
}

type BookingDetailsView struct {
	Booking *models.Booking `json:"booking"`
}

// BookingsHandler serves the traveller's own bookings.
type BookingsHandler struct {
	bookings services.BookingsServiceInterface
	pages    *Pages
}

func NewBookingsHandler(bookings services.BookingsServiceInterface, pages *Pages) *BookingsHandler {
	return &BookingsHandler{bookings: bookings, pages: pages}
}

func (h *BookingsHandler) owner(c *gin.Context) string {
	if user := currentUser(c); user != nil {
		return user.ID
	}
	return ""
}

func (h *BookingsHandler) List(c *gin.Context) {
	bookings, err := h.bookings.List(c.Request.Context(), h.owner(c))
	if err != nil {
		h.pages.Fail(c, err, "Failed to load bookings", BookingsView{Bookings: []models.Booking{}})
		return
	}
	h.pages.Render(c, http.StatusOK, BookingsView{Bookings: bookings})
}

func (h *BookingsHandler) Refresh(c *gin.Context) {
	bookings, err := h.bookings.Refresh(c.Request.Context(), h.owner(c))
	if err != nil {
		h.pages.Fail(c, err, "Failed to load bookings", BookingsView{Bookings: []models.Booking{}})
		return
	}
	h.pages.Render(c, http.StatusOK, BookingsView{Bookings: bookings})
}

func (h *BookingsHandler) Details(c *gin.Context) {
	booking, err := h.bookings.Details(c.Request.Context(), c.Param("id"))
	if err != nil {
		if navigated(c) {
			return
		}
		h.pages.Fail(c, err, "Failed to load booking details", BookingDetailsView{})
		return
	}
	h.pages.Render(c, http.StatusOK, BookingDetailsView{Booking: booking})
}

func (h *BookingsHandler) Cancel(c *gin.Context) {
	booking, err := h.bookings.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.pages.Fail(c, err, "Failed to cancel booking", nil)
		return
	}
	h.pages.Render(c, http.StatusOK, BookingDetailsView{Booking: booking})
}
