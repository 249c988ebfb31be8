package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMetersZero(t *testing.T) {
	assert.InDelta(t, 0, DistanceMeters(10.82, 77.06, 10.82, 77.06), 0.001)
}

func TestDistanceMetersKnownPoints(t *testing.T) {
	// kantor (Coimbatore) → Delhi, kasarnya ~1900 km
	d := DistanceMeters(10.8261981, 77.0608064, 28.6139, 77.2090)
	assert.Greater(t, d, 1_800_000.0)
	assert.Less(t, d, 2_100_000.0)
}

func TestDistanceMetersSymmetric(t *testing.T) {
	a := DistanceMeters(10.82, 77.06, 11.00, 77.10)
	b := DistanceMeters(11.00, 77.10, 10.82, 77.06)
	assert.InDelta(t, a, b, 0.001)
}
