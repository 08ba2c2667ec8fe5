package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineSamePointIsZero(t *testing.T) {
	points := [][2]float64{
		{37.7801, -122.401},
		{0.5, 0.5},
		{-45.0, 170.25},
		{90.0, 0.0},
	}

	for _, p := range points {
		assert.Equal(t, 0.0, Haversine(p[0], p[1], p[0], p[1]))
	}
}

func TestHaversineIsSymmetric(t *testing.T) {
	forward := Haversine(37.7801, -122.401, 37.765, -122.405)
	backward := Haversine(37.765, -122.405, 37.7801, -122.401)

	assert.InEpsilon(t, forward, backward, 1e-9)
}

func TestHaversineMonotonicWithSeparation(t *testing.T) {
	const originLat, originLon = 37.7790, -122.4010

	near := Haversine(originLat, originLon, 37.7801, -122.401)
	mid := Haversine(originLat, originLon, 37.765, -122.405)
	far := Haversine(originLat, originLon, 37.3382, -121.8863)
	veryFar := Haversine(originLat, originLon, 34.0522, -118.2437)

	assert.Less(t, near, mid)
	assert.Less(t, mid, far)
	assert.Less(t, far, veryFar)
}

func TestHaversineKnownDistance(t *testing.T) {
	// San Francisco to Los Angeles is roughly 347 miles great-circle.
	distance := Haversine(37.7749, -122.4194, 34.0522, -118.2437)

	assert.InDelta(t, 347.0, distance, 5.0)
}
