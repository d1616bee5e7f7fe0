package charts

import (
	"math"

	"github.com/neuroscan/mri-api/internal/domain"
)

// Chart payloads are plain label/value structures. Whatever charting library
// the presentation layer uses, its input format is that layer's problem.

// Slice is one donut segment.
type Slice struct {
	Label   string  `json:"label"`
	Percent float64 `json:"percent"`
}

// Axis is one radar vertex.
type Axis struct {
	Label     string  `json:"label"`
	Magnitude float64 `json:"magnitude"`
}

const driftEpsilon = 1e-6

// Gauge projects a result onto a 0-100 needle position. It is the confidence
// value unchanged.
func Gauge(res *domain.InterpretedResult) float64 {
	return res.Confidence
}

// Donut projects each class probability onto a percentage share, in fixed
// label order. If floating drift pushes the raw shares off a 100 total, they
// are renormalized against the actual sum.
func Donut(res *domain.InterpretedResult) []Slice {
	var total float64
	for _, name := range domain.ClassNames {
		total += float64(res.Probabilities[name])
	}

	slices := make([]Slice, 0, domain.ClassCount)
	for _, name := range domain.ClassNames {
		pct := float64(res.Probabilities[name]) * 100
		if total > 0 && math.Abs(total*100-100) > driftEpsilon {
			pct = float64(res.Probabilities[name]) / total * 100
		}
		slices = append(slices, Slice{Label: name, Percent: round2(pct)})
	}
	return slices
}

// Radar projects each class probability onto a 0-100 magnitude, in fixed
// label order so polygon shapes compare across predictions.
func Radar(res *domain.InterpretedResult) []Axis {
	axes := make([]Axis, 0, domain.ClassCount)
	for _, name := range domain.ClassNames {
		axes = append(axes, Axis{
			Label:     name,
			Magnitude: round2(float64(res.Probabilities[name]) * 100),
		})
	}
	return axes
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
