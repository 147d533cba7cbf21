package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKmSamePoint(t *testing.T) {
	assert.Equal(t, 0.0, HaversineKm(30.6, 104.0, 30.6, 104.0))
}

func TestHaversineKmSymmetric(t *testing.T) {
	d1 := HaversineKm(30.6, 104.0, 31.2, 105.5)
	d2 := HaversineKm(31.2, 105.5, 30.6, 104.0)
	assert.InDelta(t, d1, d2, 1e-9)
}

func TestHaversineKmKnownDistance(t *testing.T) {
	// (104.0, 30.6) to (104.1, 30.7) is roughly 13.4 km.
	d := HaversineKm(30.6, 104.0, 30.7, 104.1)
	assert.InDelta(t, 13.4, d, 0.1)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 13.46, Round2(13.4567))
	assert.Equal(t, 13.45, Round2(13.454))
	assert.Equal(t, 0.0, Round2(0))
}

func TestValidCoordinate(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	nan := math.NaN()

	tests := []struct {
		name string
		lon  *float64
		lat  *float64
		want bool
	}{
		{"valid", f(104.0), f(30.6), true},
		{"boundary", f(180), f(-90), true},
		{"nil longitude", nil, f(30.6), false},
		{"nil latitude", f(104.0), nil, false},
		{"nan longitude", &nan, f(30.6), false},
		{"nan latitude", f(104.0), &nan, false},
		{"longitude out of range", f(180.1), f(30.6), false},
		{"latitude out of range", f(104.0), f(90.5), false},
		{"infinite longitude", f(math.Inf(1)), f(30.6), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidCoordinate(tt.lon, tt.lat))
		})
	}
}
