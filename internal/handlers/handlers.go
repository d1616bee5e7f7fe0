package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/neuroscan/mri-api/internal/charts"
	"github.com/neuroscan/mri-api/internal/classifier"
	"github.com/neuroscan/mri-api/internal/clinical"
	"github.com/neuroscan/mri-api/internal/domain"
	"github.com/neuroscan/mri-api/internal/interpret"
	"github.com/neuroscan/mri-api/internal/metrics"
	"github.com/neuroscan/mri-api/internal/preprocess"
)

type Handler struct {
	clf       classifier.Classifier
	metrics   *metrics.Metrics
	log       zerolog.Logger
	maxUpload int64
}

func NewHandler(clf classifier.Classifier, m *metrics.Metrics, log zerolog.Logger, maxUpload int64) *Handler {
	return &Handler{
		clf:       clf,
		metrics:   m,
		log:       log,
		maxUpload: maxUpload,
	}
}

// Routes builds the service mux. The metrics middleware wraps everything
// except its own exposition endpoint.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/predict", h.Predict)
	mux.HandleFunc("/predict/image", h.PredictFromImage)

	root := http.NewServeMux()
	root.Handle("/metrics", h.metrics.Handler())
	root.Handle("/", h.metrics.Middleware(mux))
	return root
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// rawRequest is the body of POST /predict: an already-normalized pixel
// buffer, for callers that do their own preprocessing.
type rawRequest struct {
	Image []float32 `json:"image"`
}

// predictionResponse is the full payload the presentation layer renders.
type predictionResponse struct {
	RequestID string                    `json:"request_id"`
	Result    *domain.InterpretedResult `json:"result"`
	Charts    chartPayloads             `json:"charts"`
	Clinical  *clinical.Info            `json:"clinical,omitempty"`
	Timings   stageTimings              `json:"timings"`
}

type chartPayloads struct {
	Gauge float64        `json:"gauge"`
	Donut []charts.Slice `json:"donut"`
	Radar []charts.Axis  `json:"radar"`
}

// stageTimings reports per-stage latency in milliseconds.
type stageTimings struct {
	PreprocessMs float64 `json:"preprocess_ms"`
	InferenceMs  float64 `json:"inference_ms"`
	TotalMs      float64 `json:"total_ms"`
}

func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("method not allowed"))
		return
	}

	var req rawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if len(req.Image) != domain.TensorLen {
		writeJSON(w, http.StatusBadRequest,
			errorBody(fmt.Sprintf("expected %d values, got %d", domain.TensorLen, len(req.Image))))
		return
	}

	h.respond(w, uuid.NewString(), req.Image, time.Now(), 0, h.log)
}

func (h *Handler) PredictFromImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("method not allowed"))
		return
	}

	requestID := uuid.NewString()
	start := time.Now()

	// Enforce the configured upload cap; ParseMultipartForm's argument
	// only bounds in-memory buffering, not the body itself.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge,
				errorBody(fmt.Sprintf("request body exceeds the %d byte upload limit", h.maxUpload)))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorBody("failed to parse multipart form"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest,
			errorBody("no image file provided; use 'image' as the form field name"))
		return
	}
	defer file.Close()

	reqLog := h.log.With().
		Str("filename", header.Filename).
		Int64("size", header.Size).
		Logger()

	ppStart := time.Now()
	pixels, err := preprocess.Normalize(file)
	if err != nil {
		h.metrics.RecordDecodeFailure()
		reqLog.Warn().
			Str("request_id", requestID).
			Err(err).
			Msg("image rejected")
		writeJSON(w, http.StatusBadRequest, errorBody("please upload a valid JPEG or PNG image"))
		return
	}
	preprocessMs := toMs(time.Since(ppStart))

	h.respond(w, requestID, pixels, start, preprocessMs, reqLog)
}

// respond runs inference and interpretation over a normalized pixel buffer
// and writes the full prediction payload.
func (h *Handler) respond(w http.ResponseWriter, requestID string, pixels []float32, start time.Time, preprocessMs float64, log zerolog.Logger) {
	inferStart := time.Now()
	probs, err := h.clf.Predict(pixels)
	if err != nil {
		log.Error().Str("request_id", requestID).Err(err).Msg("inference failed")
		writeJSON(w, http.StatusInternalServerError, errorBody("prediction failed"))
		return
	}
	inferenceMs := toMs(time.Since(inferStart))

	result, err := interpret.Interpret(probs)
	if err != nil {
		// The model returned an unexpected vector length. This is a
		// deployment misconfiguration, not a caller error.
		log.Error().Str("request_id", requestID).Err(err).Msg("uninterpretable model output")
		writeJSON(w, http.StatusInternalServerError, errorBody("prediction failed"))
		return
	}

	h.metrics.RecordPrediction(result.PredictedLabel, result.Confidence)
	log.Info().
		Str("request_id", requestID).
		Str("class", result.PredictedLabel).
		Float64("confidence", result.Confidence).
		Float64("preprocess_ms", preprocessMs).
		Float64("inference_ms", inferenceMs).
		Msg("prediction served")

	resp := predictionResponse{
		RequestID: requestID,
		Result:    result,
		Charts: chartPayloads{
			Gauge: charts.Gauge(result),
			Donut: charts.Donut(result),
			Radar: charts.Radar(result),
		},
		Timings: stageTimings{
			PreprocessMs: preprocessMs,
			InferenceMs:  inferenceMs,
			TotalMs:      toMs(time.Since(start)),
		},
	}
	if info, ok := clinical.Lookup(result.PredictedLabel); ok {
		resp.Clinical = &info
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}

func toMs(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}
