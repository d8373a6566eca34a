package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"phoneprice/form"
	"phoneprice/ml"
	"phoneprice/monitoring"
)

// Predictor is the pipeline the API serves.
type Predictor interface {
	Predict(vector ml.FeatureVector) (ml.PriceCategory, error)
}

// API holds the prediction endpoints and their dependencies.
type API struct {
	predictor Predictor
	memo      *predictionMemo
	logger    *zap.Logger
	metrics   *monitoring.MetricsCollector
}

// NewAPI wires the handlers. cacheSize 0 disables the prediction memo.
func NewAPI(predictor Predictor, cacheSize int, logger *zap.Logger, metrics *monitoring.MetricsCollector) (*API, error) {
	if predictor == nil {
		return nil, errors.New("predictor is required")
	}
	memo, err := newPredictionMemo(cacheSize)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = monitoring.NewMetricsCollector()
	}
	return &API{predictor: predictor, memo: memo, logger: logger, metrics: metrics}, nil
}

func (a *API) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/health", a.handleHealth)
	mux.HandleFunc("GET /api/form", a.handleForm)
	mux.HandleFunc("GET /api/categories", a.handleCategories)
	mux.HandleFunc("POST /api/predict", a.handlePredict)
}

type errorResponse struct {
	Error  string                `json:"error"`
	Fields form.ValidationErrors `json:"fields,omitempty"`
}

type formResponse struct {
	Groups []form.Group `json:"groups"`
}

type predictResponse struct {
	Category ml.PriceCategory `json:"category"`
	Summary  form.Summary     `json:"summary"`
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *API) handleForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, formResponse{Groups: form.Groups()})
}

func (a *API) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]ml.PriceCategory{"categories": ml.Categories()})
}

func (a *API) handlePredict(w http.ResponseWriter, r *http.Request) {
	// omitted fields keep their defaults
	spec := form.Defaults()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&spec); err != nil && !errors.Is(err, io.EOF) {
		a.metrics.RecordPredictionError("bad_request")
		writeError(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	if err := form.Validate(spec); err != nil {
		a.metrics.RecordPredictionError("out_of_range")
		var verrs form.ValidationErrors
		if errors.As(err, &verrs) {
			writeError(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: verrs})
			return
		}
		writeError(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	category, err := a.predict(spec.Vector())
	if err != nil {
		requestID := GetRequestID(r.Context())
		if errors.Is(err, ml.ErrSchemaMismatch) {
			a.metrics.RecordPredictionError("schema_mismatch")
			a.logger.Error("classifier label has no price category",
				zap.String("request_id", requestID), zap.Error(err))
			writeError(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		a.metrics.RecordPredictionError("predict")
		a.logger.Error("prediction failed", zap.String("request_id", requestID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, errorResponse{Error: "prediction failed"})
		return
	}

	a.logger.Debug("prediction",
		zap.String("request_id", GetRequestID(r.Context())),
		zap.Stringer("category", category.ID),
	)
	writeJSON(w, http.StatusOK, predictResponse{Category: category, Summary: form.Summarize(spec)})
}

func (a *API) predict(vector ml.FeatureVector) (ml.PriceCategory, error) {
	if category, ok := a.memo.get(vector); ok {
		a.metrics.RecordMemoHit(category.ID.String())
		return category, nil
	}
	start := time.Now()
	category, err := a.predictor.Predict(vector)
	if err != nil {
		return ml.PriceCategory{}, err
	}
	a.metrics.ObservePrediction(category.ID.String(), time.Since(start))
	a.memo.add(vector, category)
	return category, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, body errorResponse) {
	writeJSON(w, status, body)
}
