package db_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func strPtr(s string) *string     { return &s }
func floatPtr(v float64) *float64 { return &v }

func TestPointsRoundTrip(t *testing.T) {
	points := []RoutePoint{
		{Longitude: 104.0, Latitude: 30.6, Name: strPtr("Chengdu"), Elevation: floatPtr(500)},
		{Longitude: 104.1, Latitude: 30.7},
		{Longitude: 105.8, Latitude: 32.4, Name: strPtr("Jianmen Pass")},
	}

	encoded, err := EncodePoints(points)
	require.NoError(t, err)

	route := Route{ScenicList: encoded}
	decoded := route.Points()

	require.Len(t, decoded, len(points))
	for i := range points {
		assert.InDelta(t, points[i].Longitude, decoded[i].Longitude, 1e-9)
		assert.InDelta(t, points[i].Latitude, decoded[i].Latitude, 1e-9)
		assert.Equal(t, points[i].Name, decoded[i].Name)
		assert.Equal(t, points[i].Elevation, decoded[i].Elevation)
	}
}

func TestPointsMalformedBlobDegradesToEmpty(t *testing.T) {
	route := Route{ScenicList: datatypes.JSON([]byte("{not json"))}
	assert.Empty(t, route.Points())
	assert.NotNil(t, route.Points())
}

func TestPointsAbsentBlobDegradesToEmpty(t *testing.T) {
	route := Route{}
	assert.Empty(t, route.Points())
	assert.NotNil(t, route.Points())
}

func TestPointsNullBlobDegradesToEmpty(t *testing.T) {
	route := Route{ScenicList: datatypes.JSON([]byte("null"))}
	assert.Empty(t, route.Points())
	assert.NotNil(t, route.Points())
}

func TestEncodePointsNilBecomesEmptyArray(t *testing.T) {
	encoded, err := EncodePoints(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(encoded))
}
