package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Flight is a scheduled flight offered by the backend.
type Flight struct {
	ID             string    `json:"id"`
	Airline        string    `json:"airline"`
	FlightNumber   string    `json:"flightNumber"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	DepartureTime  time.Time `json:"departureTime"`
	ArrivalTime    time.Time `json:"arrivalTime"`
	Duration       int       `json:"duration"` // minutes
	BasePrice      float64   `json:"basePrice"`
	SeatsAvailable int       `json:"seatsAvailable"`
	TotalSeats     int       `json:"totalSeats,omitempty"`
	Aircraft       string    `json:"aircraft,omitempty"`
	Status         string    `json:"status,omitempty"`
}

func (f *Flight) UnmarshalJSON(data []byte) error {
	type alias Flight
	aux := struct {
		*alias
		MongoID       string `json:"_id"`
		DepartureTime string `json:"departureTime"`
		ArrivalTime   string `json:"arrivalTime"`
	}{alias: (*alias)(f)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if f.ID == "" {
		f.ID = aux.MongoID
	}
	f.DepartureTime = parseTime(aux.DepartureTime)
	f.ArrivalTime = parseTime(aux.ArrivalTime)
	return nil
}

// FormatDuration renders minutes as "Xh Ym".
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// FlightInput is the admin create/update body.
type FlightInput struct {
	Airline        string  `json:"airline"`
	FlightNumber   string  `json:"flightNumber"`
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	DepartureTime  string  `json:"departureTime"`
	ArrivalTime    string  `json:"arrivalTime"`
	Duration       int     `json:"duration,omitempty"`
	BasePrice      float64 `json:"basePrice"`
	SeatsAvailable int     `json:"seatsAvailable"`
	Aircraft       string  `json:"aircraft,omitempty"`
}
