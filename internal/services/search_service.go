package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/skybook/skybook-web/internal/models"
	apperrors "github.com/skybook/skybook-web/pkg/errors"
	"github.com/skybook/skybook-web/pkg/logger"
	"github.com/skybook/skybook-web/pkg/skyapi"
)

const (
	msgSearchIncomplete = "Please fill in all search fields"
	msgSearchEmpty      = "No flights found for your search criteria"
	msgSearchFailed     = "Failed to search flights"
	msgFlightsFailed    = "Failed to load flights"

	defaultAircraft = "Boeing 737-800"
	clockLayout     = "15:04"
)

// FlightResult is a flight formatted for the results list.
type FlightResult struct {
	ID             string  `json:"id"`
	Airline        string  `json:"airline"`
	FlightNumber   string  `json:"flightNumber"`
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	DepartureTime  string  `json:"departureTime"`
	ArrivalTime    string  `json:"arrivalTime"`
	Duration       string  `json:"duration"`
	Price          float64 `json:"price"`
	AvailableSeats int     `json:"availableSeats"`
	Aircraft       string  `json:"aircraft"`
}

// SearchService backs the flight search page.
type SearchService struct {
	flights FlightsAPI
	toasts  Notifier
}

func NewSearchService(flights FlightsAPI, toasts Notifier) *SearchService {
	return &SearchService{flights: flights, toasts: toasts}
}

// Search looks up flights for a route and day. Origin, destination and date
// are required.
func (s *SearchService) Search(ctx context.Context, form models.SearchForm) ([]FlightResult, error) {
	origin := strings.ToUpper(strings.TrimSpace(form.Origin))
	destination := strings.ToUpper(strings.TrimSpace(form.Destination))
	date := strings.TrimSpace(form.Date)
	if origin == "" || destination == "" || date == "" {
		s.toasts.Error(msgSearchIncomplete)
		return nil, apperrors.NewValidationError("", msgSearchIncomplete)
	}

	flights, err := s.flights.Search(ctx, skyapi.SearchQuery{
		Origin:        origin,
		Destination:   destination,
		DepartureDate: date,
		Passengers:    form.Passengers,
	})
	if err != nil {
		logger.Warn("Flight search failed",
			zap.String("origin", origin),
			zap.String("destination", destination),
			zap.Error(err))
		s.toasts.Error(skyapi.MessageOr(err, msgSearchFailed))
		return nil, err
	}

	results := formatFlights(flights)
	if len(results) == 0 {
		s.toasts.Info(msgSearchEmpty)
	}
	return results, nil
}

// All lists every scheduled flight.
func (s *SearchService) All(ctx context.Context) ([]FlightResult, error) {
	flights, err := s.flights.List(ctx, nil)
	if err != nil {
		logger.Warn("Failed to list flights", zap.Error(err))
		s.toasts.Error(msgFlightsFailed)
		return nil, err
	}
	return formatFlights(flights), nil
}

func formatFlights(flights []models.Flight) []FlightResult {
	results := make([]FlightResult, 0, len(flights))
	for _, f := range flights {
		results = append(results, formatFlight(f))
	}
	return results
}

func formatFlight(f models.Flight) FlightResult {
	aircraft := f.Aircraft
	if aircraft == "" {
		aircraft = defaultAircraft
	}
	return FlightResult{
		ID:             f.ID,
		Airline:        f.Airline,
		FlightNumber:   f.FlightNumber,
		Origin:         f.Origin,
		Destination:    f.Destination,
		DepartureTime:  clock(f.DepartureTime),
		ArrivalTime:    clock(f.ArrivalTime),
		Duration:       models.FormatDuration(f.Duration),
		Price:          f.BasePrice,
		AvailableSeats: f.SeatsAvailable,
		Aircraft:       aircraft,
	}
}

func clock(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(clockLayout)
}
