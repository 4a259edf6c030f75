// Package seatmap generates the presentational seat layout for a flight.
//
// The layout is always 10 rows of six seats. Availability is simulated and
// not synchronized with the backend inventory.
package seatmap

import (
	"math/rand"
	"strconv"
)

const (
	Rows = 10
	// blockedRatio is the approximate share of seats shown as taken.
	blockedRatio = 0.3
)

// Columns are the seat letters, with an aisle between C and D.
var Columns = []string{"A", "B", "C", "D", "E", "F"}

// Seat is one selectable position, e.g. "12A".
type Seat struct {
	ID        string `json:"id"`
	Available bool   `json:"available"`
}

// Rand is the randomness source used for availability.
type Rand interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() } //nolint:gosec // simulated availability

// Generate builds the layout in row-major order. The first argument is the
// flight's reported seat count; the layout does not depend on it. A nil rng
// uses the package-level source.
func Generate(_ int, rng Rand) []Seat {
	if rng == nil {
		rng = globalRand{}
	}

	seats := make([]Seat, 0, Rows*len(Columns))
	for row := 1; row <= Rows; row++ {
		for _, col := range Columns {
			seats = append(seats, Seat{
				ID:        strconv.Itoa(row) + col,
				Available: rng.Float64() > blockedRatio,
			})
		}
	}
	return seats
}

// FirstAvailable returns the first open seat in row-major order.
func FirstAvailable(seats []Seat) (Seat, bool) {
	for _, s := range seats {
		if s.Available {
			return s, true
		}
	}
	return Seat{}, false
}

// Find looks a seat up by id.
func Find(seats []Seat, id string) (Seat, bool) {
	for _, s := range seats {
		if s.ID == id {
			return s, true
		}
	}
	return Seat{}, false
}

// Row is one row of the rendered layout. Left and Right are the seats on
// either side of the aisle.
type Row struct {
	Number int    `json:"number"`
	Left   []Seat `json:"left"`
	Right  []Seat `json:"right"`
}

// Layout groups seats into rows split at the aisle. Seats must be in the
// order Generate returns them.
func Layout(seats []Seat) []Row {
	width := len(Columns)
	half := width / 2

	rows := make([]Row, 0, len(seats)/width)
	for i := 0; i+width <= len(seats); i += width {
		rows = append(rows, Row{
			Number: i/width + 1,
			Left:   seats[i : i+half],
			Right:  seats[i+half : i+width],
		})
	}
	return rows
}
