package classifier

import (
	"fmt"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/neuroscan/mri-api/internal/domain"
)

// Session runs inference against the ONNX export of the tumor model. Input
// and output tensors are allocated per call, so a loaded Session is safe for
// concurrent Predict calls without locking.
type Session struct {
	session *ort.DynamicAdvancedSession
	meta    Metadata
}

// Load initializes the ONNX runtime, validates the metadata sidecar against
// the preprocessing contract, and opens the session. Any failure here is
// fatal to the process: the service cannot serve without a model.
func Load(modelPath, metadataPath string) (*Session, error) {
	meta, err := loadMetadata(metadataPath)
	if err != nil {
		return nil, err
	}

	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("%w: initializing ONNX environment: %v", domain.ErrLoad, err)
	}

	session, err := ort.NewDynamicAdvancedSession(modelPath,
		[]string{"input"}, []string{"output"}, nil)
	if err != nil {
		ort.DestroyEnvironment()
		return nil, fmt.Errorf("%w: opening ONNX session: %v", domain.ErrLoad, err)
	}

	return &Session{session: session, meta: meta}, nil
}

// Metadata returns the validated artifact sidecar.
func (s *Session) Metadata() Metadata {
	return s.meta
}

// Predict runs a single forward pass over a normalized pixel buffer.
func (s *Session) Predict(pixels []float32) (domain.ProbabilityVector, error) {
	if len(pixels) != domain.TensorLen {
		return nil, fmt.Errorf("%w: got %d values, want %d",
			domain.ErrShapeMismatch, len(pixels), domain.TensorLen)
	}

	input, err := ort.NewTensor(ort.NewShape(s.meta.InputShape...), pixels)
	if err != nil {
		return nil, fmt.Errorf("%w: creating input tensor: %v", domain.ErrInference, err)
	}
	defer input.Destroy()

	output, err := ort.NewEmptyTensor[float32](ort.NewShape(s.meta.OutputShape...))
	if err != nil {
		return nil, fmt.Errorf("%w: creating output tensor: %v", domain.ErrInference, err)
	}
	defer output.Destroy()

	if err := s.session.Run(
		[]ort.ArbitraryTensor{input},
		[]ort.ArbitraryTensor{output},
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInference, err)
	}

	// Copy out before the tensor is destroyed.
	probs := make(domain.ProbabilityVector, domain.ClassCount)
	copy(probs, output.GetData())
	return probs, nil
}

func (s *Session) Close() {
	if s.session != nil {
		s.session.Destroy()
	}
	ort.DestroyEnvironment()
}
