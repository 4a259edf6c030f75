package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skybook/skybook-web/internal/models"
	"github.com/skybook/skybook-web/internal/services"
)

type FlightsView struct {
	Flights []models.Flight `json:"flights"`
}

// AdminHandler serves the back office pages.
type AdminHandler struct {
	admin services.AdminServiceInterface
	pages *Pages
}

func NewAdminHandler(admin services.AdminServiceInterface, pages *Pages) *AdminHandler {
	return &AdminHandler{admin: admin, pages: pages}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.admin.Dashboard(c.Request.Context())
	if err != nil {
		h.pages.Fail(c, err, "Failed to load dashboard", nil)
		return
	}
	h.pages.Render(c, http.StatusOK, dashboard)
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.admin.Stats(c.Request.Context())
	if err != nil {
		h.pages.Fail(c, err, "Failed to load statistics", nil)
		return
	}
	h.pages.Render(c, http.StatusOK, stats)
}

func (h *AdminHandler) renderFlights(c *gin.Context, status int, flights []models.Flight, err error) {
	if flights == nil {
		flights = []models.Flight{}
	}
	if err != nil {
		h.pages.Fail(c, err, "Failed to load flights", FlightsView{Flights: flights})
		return
	}
	h.pages.Render(c, status, FlightsView{Flights: flights})
}

func (h *AdminHandler) Flights(c *gin.Context) {
	flights, err := h.admin.Flights(c.Request.Context())
	h.renderFlights(c, http.StatusOK, flights, err)
}

func (h *AdminHandler) CreateFlight(c *gin.Context) {
	var form models.FlightForm
	if err := c.ShouldBind(&form); err != nil {
		respondBindError(c, err)
		return
	}
	flights, err := h.admin.SaveFlight(c.Request.Context(), "", form)
	h.renderFlights(c, http.StatusCreated, flights, err)
}

func (h *AdminHandler) UpdateFlight(c *gin.Context) {
	var form models.FlightForm
	if err := c.ShouldBind(&form); err != nil {
		respondBindError(c, err)
		return
	}
	flights, err := h.admin.SaveFlight(c.Request.Context(), c.Param("id"), form)
	h.renderFlights(c, http.StatusOK, flights, err)
}

func (h *AdminHandler) DeleteFlight(c *gin.Context) {
	flights, err := h.admin.DeleteFlight(c.Request.Context(), c.Param("id"))
	h.renderFlights(c, http.StatusOK, flights, err)
}

func (h *AdminHandler) CancelFlight(c *gin.Context) {
	flights, err := h.admin.CancelFlight(c.Request.Context(), c.Param("id"))
	h.renderFlights(c, http.StatusOK, flights, err)
}

func (h *AdminHandler) Bookings(c *gin.Context) {
	overview, err := h.admin.Bookings(c.Request.Context())
	if err != nil {
		h.pages.Fail(c, err, "Failed to load bookings", nil)
		return
	}
	h.pages.Render(c, http.StatusOK, overview)
}

func (h *AdminHandler) CancelBooking(c *gin.Context) {
	overview, err := h.admin.CancelBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.pages.Fail(c, err, "Failed to cancel booking", nil)
		return
	}
	h.pages.Render(c, http.StatusOK, overview)
}

func (h *AdminHandler) Payments(c *gin.Context) {
	overview, err := h.admin.Payments(c.Request.Context())
	if err != nil {
		h.pages.Fail(c, err, "Failed to load payments", nil)
		return
	}
	h.pages.Render(c, http.StatusOK, overview)
}

func (h *AdminHandler) Refund(c *gin.Context) {
	var form models.RefundForm
	if err := c.ShouldBind(&form); err != nil {
		respondBindError(c, err)
		return
	}
	overview, err := h.admin.Refund(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		h.pages.Fail(c, err, "Failed to issue refund", nil)
		return
	}
	h.pages.Render(c, http.StatusOK, overview)
}
