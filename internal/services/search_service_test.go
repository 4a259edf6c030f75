package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skybook/skybook-web/internal/models"
	"github.com/skybook/skybook-web/internal/services"
	"github.com/skybook/skybook-web/internal/toast"
	apperrors "github.com/skybook/skybook-web/pkg/errors"
	"github.com/skybook/skybook-web/pkg/skyapi"
)

func sampleFlight() models.Flight {
	return models.Flight{
		ID:             "f1",
		Airline:        "SkyAir",
		FlightNumber:   "SA100",
		Origin:         "LOS",
		Destination:    "ABV",
		DepartureTime:  time.Date(2024, 5, 1, 8, 5, 0, 0, time.UTC),
		ArrivalTime:    time.Date(2024, 5, 1, 9, 20, 0, 0, time.UTC),
		Duration:       75,
		BasePrice:      299,
		SeatsAvailable: 42,
	}
}

func TestSearchService_Search(t *testing.T) {
	api := new(MockFlightsAPI)
	toasts := newToasts()
	service := services.NewSearchService(api, toasts)
	ctx := context.Background()

	api.On("Search", ctx, skyapi.SearchQuery{
		Origin:        "LOS",
		Destination:   "ABV",
		DepartureDate: "2024-05-01",
		Passengers:    2,
	}).Return([]models.Flight{sampleFlight()}, nil).Once()

	results, err := service.Search(ctx, models.SearchForm{Origin: "los", Destination: " abv", Date: "2024-05-01", Passengers: 2})
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, "08:05", r.DepartureTime)
	assert.Equal(t, "09:20", r.ArrivalTime)
	assert.Equal(t, "1h 15m", r.Duration)
	assert.Equal(t, 299.0, r.Price)
	assert.Equal(t, 42, r.AvailableSeats)
	assert.Equal(t, "Boeing 737-800", r.Aircraft)
	assert.Empty(t, toasts.List())
	api.AssertExpectations(t)
}

func TestSearchService_SearchRequiresAllFields(t *testing.T) {
	api := new(MockFlightsAPI)
	toasts := newToasts()
	service := services.NewSearchService(api, toasts)

	_, err := service.Search(context.Background(), models.SearchForm{Origin: "LOS", Destination: "ABV"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, "Please fill in all search fields", lastToast(toasts).Message)
	api.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestSearchService_SearchEmpty(t *testing.T) {
	api := new(MockFlightsAPI)
	toasts := newToasts()
	service := services.NewSearchService(api, toasts)

	api.On("Search", mock.Anything, mock.Anything).Return([]models.Flight{}, nil).Once()

	results, err := service.Search(context.Background(), models.SearchForm{Origin: "LOS", Destination: "ABV", Date: "2024-05-01"})
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, "No flights found for your search criteria", lastToast(toasts).Message)
	assert.Equal(t, toast.KindInfo, lastToast(toasts).Kind)
}

func TestSearchService_SearchFailure(t *testing.T) {
	api := new(MockFlightsAPI)
	toasts := newToasts()
	service := services.NewSearchService(api, toasts)

	api.On("Search", mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()

	_, err := service.Search(context.Background(), models.SearchForm{Origin: "LOS", Destination: "ABV", Date: "2024-05-01"})
	assert.Error(t, err)
	assert.Equal(t, "Failed to search flights", lastToast(toasts).Message)
}

func TestSearchService_All(t *testing.T) {
	api := new(MockFlightsAPI)
	toasts := newToasts()
	service := services.NewSearchService(api, toasts)

	f := sampleFlight()
	f.Aircraft = "Airbus A320"
	api.On("List", mock.Anything, mock.Anything).Return([]models.Flight{f}, nil).Once()

	results, err := service.All(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Airbus A320", results[0].Aircraft)

	api.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("down")).Once()
	_, err = service.All(context.Background())
	assert.Error(t, err)
	assert.Equal(t, "Failed to load flights", lastToast(toasts).Message)
}
