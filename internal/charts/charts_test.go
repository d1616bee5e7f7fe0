package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuroscan/mri-api/internal/domain"
	"github.com/neuroscan/mri-api/internal/interpret"
)

func interpreted(t *testing.T, v domain.ProbabilityVector) *domain.InterpretedResult {
	t.Helper()
	res, err := interpret.Interpret(v)
	require.NoError(t, err)
	return res
}

func TestGaugeIsConfidence(t *testing.T) {
	res := interpreted(t, domain.ProbabilityVector{0.7, 0.1, 0.1, 0.1})
	assert.Equal(t, res.Confidence, Gauge(res))
	assert.Equal(t, 70.0, Gauge(res))
}

func TestDonutShares(t *testing.T) {
	res := interpreted(t, domain.ProbabilityVector{0.7, 0.1, 0.1, 0.1})
	slices := Donut(res)

	require.Len(t, slices, domain.ClassCount)
	assert.Equal(t, Slice{Label: domain.ClassGlioma, Percent: 70}, slices[0])
	assert.Equal(t, Slice{Label: domain.ClassMeningioma, Percent: 10}, slices[1])
	assert.Equal(t, Slice{Label: domain.ClassNoTumor, Percent: 10}, slices[2])
	assert.Equal(t, Slice{Label: domain.ClassPituitary, Percent: 10}, slices[3])
}

func TestDonutSumsToHundred(t *testing.T) {
	vectors := []domain.ProbabilityVector{
		{0.7, 0.1, 0.1, 0.1},
		{0.25, 0.25, 0.25, 0.25},
		{0.97, 0.01, 0.01, 0.01},
		{0.33, 0.33, 0.17, 0.17},
	}
	for _, v := range vectors {
		var total float64
		for _, s := range Donut(interpreted(t, v)) {
			total += s.Percent
		}
		assert.InDelta(t, 100, total, 0.02)
	}
}

func TestDonutRenormalizesDriftedVector(t *testing.T) {
	// A drifted model output summing to 0.95 instead of 1.
	res := interpreted(t, domain.ProbabilityVector{0.475, 0.285, 0.095, 0.095})

	var total float64
	for _, s := range Donut(res) {
		total += s.Percent
	}
	assert.InDelta(t, 100, total, 0.02)

	slices := Donut(res)
	assert.InDelta(t, 50, slices[0].Percent, 0.02)
	assert.InDelta(t, 30, slices[1].Percent, 0.02)
}

func TestRadarMagnitudes(t *testing.T) {
	res := interpreted(t, domain.ProbabilityVector{0.05, 0.6, 0.25, 0.1})
	axes := Radar(res)

	require.Len(t, axes, domain.ClassCount)
	// Fixed label order regardless of ranking.
	for i, name := range domain.ClassNames {
		assert.Equal(t, name, axes[i].Label)
	}
	assert.InDelta(t, 5, axes[0].Magnitude, 0.01)
	assert.InDelta(t, 60, axes[1].Magnitude, 0.01)
	assert.InDelta(t, 25, axes[2].Magnitude, 0.01)
	assert.InDelta(t, 10, axes[3].Magnitude, 0.01)

	// Relative ordering is preserved.
	assert.Greater(t, axes[1].Magnitude, axes[2].Magnitude)
	assert.Greater(t, axes[2].Magnitude, axes[3].Magnitude)
	assert.Greater(t, axes[3].Magnitude, axes[0].Magnitude)
}
