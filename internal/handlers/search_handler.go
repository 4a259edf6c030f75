package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skybook/skybook-web/internal/models"
	"github.com/skybook/skybook-web/internal/services"
)

// SearchView is the flight search page.
type SearchView struct {
	Query   models.SearchForm       `json:"query"`
	Flights []services.FlightResult `json:"flights"`
}

type SearchHandler struct {
	search services.SearchServiceInterface
	pages  *Pages
}

func NewSearchHandler(search services.SearchServiceInterface, pages *Pages) *SearchHandler {
	return &SearchHandler{search: search, pages: pages}
}

// Search runs the query in the URL. Without a query the empty form is shown.
func (h *SearchHandler) Search(c *gin.Context) {
	view := SearchView{Query: models.SearchForm{Passengers: 1}, Flights: []services.FlightResult{}}
	if len(c.Request.URL.Query()) == 0 {
		h.pages.Render(c, http.StatusOK, view)
		return
	}

	if err := c.ShouldBindQuery(&view.Query); err != nil {
		respondBindError(c, err)
		return
	}
	if view.Query.Passengers <= 0 {
		view.Query.Passengers = 1
	}

	flights, err := h.search.Search(c.Request.Context(), view.Query)
	if err != nil {
		h.pages.Fail(c, err, "Failed to search flights", view)
		return
	}
	view.Flights = flights
	h.pages.Render(c, http.StatusOK, view)
}

func (h *SearchHandler) All(c *gin.Context) {
	view := SearchView{Query: models.SearchForm{Passengers: 1}, Flights: []services.FlightResult{}}

	flights, err := h.search.All(c.Request.Context())
	if err != nil {
		h.pages.Fail(c, err, "Failed to load flights", view)
		return
	}
	view.Flights = flights
	h.pages.Render(c, http.StatusOK, view)
}
