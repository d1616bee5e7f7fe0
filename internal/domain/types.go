package domain

// Class labels in the order the model artifact was trained with. Index
// positions are an external contract with the ONNX export and are verified
// against the metadata sidecar at load time.
const (
	ClassGlioma     = "glioma"
	ClassMeningioma = "meningioma"
	ClassNoTumor    = "notumor"
	ClassPituitary  = "pituitary"
)

var ClassNames = []string{ClassGlioma, ClassMeningioma, ClassNoTumor, ClassPituitary}

const ClassCount = 4

// Input tensor contract: 300x300 RGB, channels-last, float32 pixels kept in
// the 0-255 range (the EfficientNet export rescales internally).
const (
	ImageSize    = 300
	ImageChannel = 3
	TensorLen    = ImageSize * ImageSize * ImageChannel
)

// ProbabilityVector is the raw model output: one value per class in the fixed
// ClassNames order, each in [0,1], summing to ~1.
type ProbabilityVector []float32

// RankedClass pairs a class label with its probability, used for descending
// rank orderings.
type RankedClass struct {
	Label       string  `json:"label"`
	Probability float32 `json:"probability"`
}

// InterpretedResult is the immutable outcome of a single prediction.
type InterpretedResult struct {
	PredictedLabel string             `json:"class"`
	Confidence     float64            `json:"confidence"`
	Probabilities  map[string]float32 `json:"predictions"`
	Ranking        []RankedClass      `json:"ranking"`
}
