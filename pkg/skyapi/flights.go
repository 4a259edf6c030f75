package skyapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/skybook/skybook-web/internal/models"
	apperrors "github.com/skybook/skybook-web/pkg/errors"
)

// SearchQuery is the flight search input; Passengers defaults to 1.
type SearchQuery struct {
	Origin        string
	Destination   string
	DepartureDate string
	Passengers    int
}

func (q SearchQuery) values() url.Values {
	passengers := q.Passengers
	if passengers <= 0 {
		passengers = 1
	}
	v := url.Values{}
	v.Set("origin", q.Origin)
	v.Set("destination", q.Destination)
	v.Set("departureDate", q.DepartureDate)
	v.Set("passengers", strconv.Itoa(passengers))
	return v
}

// FlightsAPI groups the /flights endpoints.
type FlightsAPI struct {
	c *Client
}

func flightPath(id string, suffix string) string {
	return EndpointFlights + "/" + url.PathEscape(id) + suffix
}

func (f *FlightsAPI) List(ctx context.Context, params url.Values) ([]models.Flight, error) {
	endpoint := EndpointFlights
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}
	var raw json.RawMessage
	if err := f.c.do(ctx, "flights.list", http.MethodGet, endpoint, nil, &raw); err != nil {
		return nil, err
	}
	return decodeCollection[models.Flight](raw, "flights")
}

func (f *FlightsAPI) Search(ctx context.Context, q SearchQuery) ([]models.Flight, error) {
	endpoint := EndpointFlightSearch + "?" + q.values().Encode()
	var raw json.RawMessage
	if err := f.c.do(ctx, "flights.search", http.MethodGet, endpoint, nil, &raw); err != nil {
		return nil, err
	}
	return decodeCollection[models.Flight](raw, "flights")
}

func (f *FlightsAPI) Get(ctx context.Context, id string) (*models.Flight, error) {
	var raw json.RawMessage
	if err := f.c.do(ctx, "flights.get", http.MethodGet, flightPath(id, ""), nil, &raw); err != nil {
		return nil, err
	}
	flight, err := decodeDocument[models.Flight](raw, "flight")
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, apperrors.NotFoundError("flight")
	}
	return flight, nil
}

func (f *FlightsAPI) Create(ctx context.Context, in models.FlightInput) (*models.Flight, error) {
	var raw json.RawMessage
	if err := f.c.do(ctx, "flights.create", http.MethodPost, EndpointFlights, in, &raw); err != nil {
		return nil, err
	}
	return decodeDocument[models.Flight](raw, "flight")
}

func (f *FlightsAPI) Update(ctx context.Context, id string, in models.FlightInput) (*models.Flight, error) {
	var raw json.RawMessage
	if err := f.c.do(ctx, "flights.update", http.MethodPatch, flightPath(id, ""), in, &raw); err != nil {
		return nil, err
	}
	return decodeDocument[models.Flight](raw, "flight")
}

func (f *FlightsAPI) Delete(ctx context.Context, id string) error {
	return f.c.do(ctx, "flights.delete", http.MethodDelete, flightPath(id, ""), nil, nil)
}

func (f *FlightsAPI) Cancel(ctx context.Context, id string) (*models.Flight, error) {
	var raw json.RawMessage
	if err := f.c.do(ctx, "flights.cancel", http.MethodPatch, flightPath(id, "/cancel"), nil, &raw); err != nil {
		return nil, err
	}
	return decodeDocument[models.Flight](raw, "flight")
}

func (f *FlightsAPI) Stats(ctx context.Context) (models.Stats, error) {
	var raw json.RawMessage
	if err := f.c.do(ctx, "flights.stats", http.MethodGet, EndpointFlightStats, nil, &raw); err != nil {
		return nil, err
	}
	return decodeStats(raw)
}
