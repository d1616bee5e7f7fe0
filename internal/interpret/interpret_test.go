package interpret

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuroscan/mri-api/internal/domain"
)

func TestInterpretSelectsArgmax(t *testing.T) {
	res, err := Interpret(domain.ProbabilityVector{0.7, 0.1, 0.1, 0.1})
	require.NoError(t, err)

	assert.Equal(t, domain.ClassGlioma, res.PredictedLabel)
	assert.Equal(t, 70.0, res.Confidence)
	assert.InDelta(t, 0.7, res.Probabilities[domain.ClassGlioma], 1e-6)
	assert.Equal(t, domain.ClassGlioma, res.Ranking[0].Label)
}

func TestInterpretEachPosition(t *testing.T) {
	for i, want := range domain.ClassNames {
		v := domain.ProbabilityVector{0.1, 0.1, 0.1, 0.1}
		v[i] = 0.7
		res, err := Interpret(v)
		require.NoError(t, err)
		assert.Equal(t, want, res.PredictedLabel, "max at index %d", i)
	}
}

func TestInterpretTieBreaksOnLabelOrder(t *testing.T) {
	res, err := Interpret(domain.ProbabilityVector{0.1, 0.4, 0.4, 0.1})
	require.NoError(t, err)

	// meningioma and notumor tie exactly; the earlier label wins, both in
	// the predicted class and in the ranking.
	assert.Equal(t, domain.ClassMeningioma, res.PredictedLabel)
	assert.Equal(t, domain.ClassMeningioma, res.Ranking[0].Label)
	assert.Equal(t, domain.ClassNoTumor, res.Ranking[1].Label)
}

func TestInterpretRankingDescending(t *testing.T) {
	res, err := Interpret(domain.ProbabilityVector{0.05, 0.6, 0.25, 0.1})
	require.NoError(t, err)

	require.Len(t, res.Ranking, domain.ClassCount)
	for i := 1; i < len(res.Ranking); i++ {
		assert.GreaterOrEqual(t, res.Ranking[i-1].Probability, res.Ranking[i].Probability)
	}
	assert.Equal(t, domain.ClassMeningioma, res.Ranking[0].Label)
	assert.Equal(t, domain.ClassGlioma, res.Ranking[3].Label)
}

func TestInterpretConfidenceRounding(t *testing.T) {
	res, err := Interpret(domain.ProbabilityVector{0.123456, 0.5, 0.2, 0.176544})
	require.NoError(t, err)
	assert.Equal(t, 50.0, res.Confidence)

	res, err = Interpret(domain.ProbabilityVector{0.87654, 0.05, 0.05, 0.02346})
	require.NoError(t, err)
	assert.Equal(t, 87.65, res.Confidence)
}

func TestInterpretWrongLength(t *testing.T) {
	_, err := Interpret(domain.ProbabilityVector{0.5, 0.3, 0.2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrShapeMismatch))

	_, err = Interpret(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrShapeMismatch))
}

func TestInterpretDoesNotMutateInput(t *testing.T) {
	v := domain.ProbabilityVector{0.05, 0.6, 0.25, 0.1}
	_, err := Interpret(v)
	require.NoError(t, err)
	assert.Equal(t, domain.ProbabilityVector{0.05, 0.6, 0.25, 0.1}, v)
}
