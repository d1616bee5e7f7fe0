package classifier

import (
	"sync"

	"github.com/neuroscan/mri-api/internal/domain"
)

// Classifier is the narrow contract the pipeline depends on: a normalized
// pixel buffer in, a probability vector over the fixed classes out. Each call
// is independent and side-effect-free.
type Classifier interface {
	Predict(pixels []float32) (domain.ProbabilityVector, error)
}

// Handle is a process-wide lazily-initialized classifier. The first caller
// performs the (expensive) load; everyone else reuses the same instance. A
// failed load is sticky: retrying without restarting the process is pointless
// because the artifact on disk will not have changed.
type Handle struct {
	once sync.Once
	load func() (Classifier, error)

	c   Classifier
	err error
}

func NewHandle(load func() (Classifier, error)) *Handle {
	return &Handle{load: load}
}

func (h *Handle) Get() (Classifier, error) {
	h.once.Do(func() {
		h.c, h.err = h.load()
	})
	return h.c, h.err
}

// Predict lets a Handle stand in wherever a Classifier is expected, loading
// on first use.
func (h *Handle) Predict(pixels []float32) (domain.ProbabilityVector, error) {
	c, err := h.Get()
	if err != nil {
		return nil, err
	}
	return c.Predict(pixels)
}
