package seatmap_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skybook/skybook-web/internal/seatmap"
)

// sequence replays values in order and then repeats the last one.
type sequence struct {
	values []float64
	i      int
}

func (s *sequence) Float64() float64 {
	if s.i >= len(s.values) {
		return s.values[len(s.values)-1]
	}
	v := s.values[s.i]
	s.i++
	return v
}

func TestGenerate_Shape(t *testing.T) {
	seats := seatmap.Generate(180, nil)
	require.Len(t, seats, 60)

	pattern := regexp.MustCompile(`^([1-9]|10)[A-F]$`)
	seen := make(map[string]bool, len(seats))
	for _, s := range seats {
		assert.Regexp(t, pattern, s.ID)
		assert.False(t, seen[s.ID], "duplicate seat %s", s.ID)
		seen[s.ID] = true
	}

	assert.Equal(t, "1A", seats[0].ID)
	assert.Equal(t, "1F", seats[5].ID)
	assert.Equal(t, "2A", seats[6].ID)
	assert.Equal(t, "10F", seats[59].ID)
}

func TestGenerate_IgnoresAdvertisedCount(t *testing.T) {
	assert.Len(t, seatmap.Generate(0, nil), 60)
	assert.Len(t, seatmap.Generate(400, nil), 60)
}

func TestGenerate_AvailabilityThreshold(t *testing.T) {
	rng := &sequence{values: []float64{0.1, 0.3, 0.31, 0.99}}
	seats := seatmap.Generate(60, rng)

	assert.False(t, seats[0].Available)
	assert.False(t, seats[1].Available)
	assert.True(t, seats[2].Available)
	assert.True(t, seats[3].Available)
}

func TestFirstAvailable(t *testing.T) {
	rng := &sequence{values: []float64{0, 0, 0, 0, 0, 0, 0, 0.9}}
	seats := seatmap.Generate(60, rng)

	seat, ok := seatmap.FirstAvailable(seats)
	require.True(t, ok)
	assert.Equal(t, "2B", seat.ID)

	_, ok = seatmap.FirstAvailable(seatmap.Generate(60, &sequence{values: []float64{0}}))
	assert.False(t, ok)
}

func TestFind(t *testing.T) {
	seats := seatmap.Generate(60, &sequence{values: []float64{0.9}})

	seat, ok := seatmap.Find(seats, "7C")
	require.True(t, ok)
	assert.True(t, seat.Available)

	_, ok = seatmap.Find(seats, "11A")
	assert.False(t, ok)
}

func TestLayout(t *testing.T) {
	rows := seatmap.Layout(seatmap.Generate(60, nil))
	require.Len(t, rows, 10)

	assert.Equal(t, 1, rows[0].Number)
	require.Len(t, rows[0].Left, 3)
	require.Len(t, rows[0].Right, 3)
	assert.Equal(t, "1C", rows[0].Left[2].ID)
	assert.Equal(t, "1D", rows[0].Right[0].ID)
	assert.Equal(t, "10F", rows[9].Right[2].ID)
}
