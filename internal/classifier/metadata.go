package classifier

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/neuroscan/mri-api/internal/domain"
)

// Metadata is the JSON sidecar exported alongside the ONNX artifact. It pins
// the tensor shapes and the training-time label order, which the service
// verifies rather than assumes.
type Metadata struct {
	InputShape  []int64  `json:"input_shape"`
	OutputShape []int64  `json:"output_shape"`
	Classes     []string `json:"classes"`
	ImageSize   int      `json:"image_size"`
}

func loadMetadata(path string) (Metadata, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("%w: reading metadata: %v", domain.ErrLoad, err)
	}

	var meta Metadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return Metadata{}, fmt.Errorf("%w: parsing metadata: %v", domain.ErrLoad, err)
	}
	if err := meta.validate(); err != nil {
		return Metadata{}, err
	}
	return meta, nil
}

// validate fails fast if the artifact disagrees with what the preprocessing
// stage produces: NHWC 1x300x300x3 in, 1x4 out, classes in the fixed order.
func (m Metadata) validate() error {
	wantIn := []int64{1, domain.ImageSize, domain.ImageSize, domain.ImageChannel}
	if !shapeEqual(m.InputShape, wantIn) {
		return fmt.Errorf("%w: artifact input shape %v, preprocessing produces %v",
			domain.ErrShapeMismatch, m.InputShape, wantIn)
	}

	wantOut := []int64{1, domain.ClassCount}
	if !shapeEqual(m.OutputShape, wantOut) {
		return fmt.Errorf("%w: artifact output shape %v, want %v",
			domain.ErrShapeMismatch, m.OutputShape, wantOut)
	}

	if m.ImageSize != domain.ImageSize {
		return fmt.Errorf("%w: artifact image size %d, want %d",
			domain.ErrShapeMismatch, m.ImageSize, domain.ImageSize)
	}

	if len(m.Classes) != domain.ClassCount {
		return fmt.Errorf("%w: artifact declares %d classes, want %d",
			domain.ErrShapeMismatch, len(m.Classes), domain.ClassCount)
	}
	for i, name := range domain.ClassNames {
		if m.Classes[i] != name {
			return fmt.Errorf("%w: artifact class %d is %q, want %q",
				domain.ErrLoad, i, m.Classes[i], name)
		}
	}
	return nil
}

func shapeEqual(got, want []int64) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
