package interpret

import (
	"fmt"
	"math"
	"sort"

	"github.com/neuroscan/mri-api/internal/domain"
)

// Interpret turns a raw probability vector into the displayed prediction:
// argmax class, confidence percentage, the full per-class mapping, and a
// descending rank ordering. Ties go to the class appearing first in the
// fixed label order, so results are reproducible. The input is not mutated.
func Interpret(v domain.ProbabilityVector) (*domain.InterpretedResult, error) {
	if len(v) != domain.ClassCount {
		return nil, fmt.Errorf("%w: probability vector has %d values, want %d",
			domain.ErrShapeMismatch, len(v), domain.ClassCount)
	}

	top := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[top] {
			top = i
		}
	}

	probs := make(map[string]float32, domain.ClassCount)
	ranking := make([]domain.RankedClass, domain.ClassCount)
	for i, name := range domain.ClassNames {
		probs[name] = v[i]
		ranking[i] = domain.RankedClass{Label: name, Probability: v[i]}
	}
	// Stable sort keeps the label order for exactly-equal probabilities.
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Probability > ranking[j].Probability
	})

	return &domain.InterpretedResult{
		PredictedLabel: domain.ClassNames[top],
		Confidence:     roundTo(float64(v[top])*100, 2),
		Probabilities:  probs,
		Ranking:        ranking,
	}, nil
}

func roundTo(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}
