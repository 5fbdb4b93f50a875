package chi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/kailas-cloud/msgcheck/internal/domain"
	logpkg "github.com/kailas-cloud/msgcheck/internal/logger"
	healthuc "github.com/kailas-cloud/msgcheck/internal/usecase/health"
	"github.com/kailas-cloud/msgcheck/internal/version"
)

// DefaultMaxBodyBytes caps the request body of POST /predict.
const DefaultMaxBodyBytes = 1 << 20

const internalErrorMessage = "internal error"

// errMalformedRequest signals a body that is not {"message": "<string>"}.
var errMalformedRequest = errors.New("invalid request body")

// errorHandler tries to handle an error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, r *http.Request, err error) bool

// healthChecker is the consumer interface for the health service.
type healthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// Options tunes request handling.
type Options struct {
	MaxBodyBytes         int64
	RedactInternalErrors bool
}

// Server serves the prediction API.
type Server struct {
	predictor      domain.Predictor
	health         healthChecker
	logger         *zap.Logger
	maxBodyBytes   int64
	redactInternal bool
	errorHandlers  []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(predictor domain.Predictor, health healthChecker, logger *zap.Logger, opts Options) *Server {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	s := &Server{
		predictor:      predictor,
		health:         health,
		logger:         logger,
		maxBodyBytes:   opts.MaxBodyBytes,
		redactInternal: opts.RedactInternalErrors,
	}
	s.errorHandlers = []errorHandler{
		bodyTooLargeHandler,
		inputErrorHandler,
		malformedRequestHandler,
	}
	return s
}

// Predict handles POST /predict.
func (s *Server) Predict(w http.ResponseWriter, r *http.Request) {
	text, err := s.readMessage(w, r)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	label, err := s.predictor.Predict(r.Context(), text)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, PredictResponse{Prediction: label})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status:  string(report.Status),
		Checks:  checks,
		Version: version.Version,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// NotFound handles unknown routes.
func (s *Server) NotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}

// MethodNotAllowed handles known routes called with the wrong method.
func (s *Server) MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// readMessage extracts the message field. An absent or null message yields
// "", which the predictor rejects as missing.
func (s *Server) readMessage(w http.ResponseWriter, r *http.Request) (string, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", errMalformedRequest, err)
	}
	return parseMessage(body)
}

func parseMessage(body []byte) (string, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return "", fmt.Errorf("%w: empty body", errMalformedRequest)
	}
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("%w: malformed JSON", errMalformedRequest)
	}

	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return "", fmt.Errorf("%w: expected a JSON object, got %s", errMalformedRequest, jsonTypeName(root))
	}

	msg := root.Get("message")
	switch msg.Type {
	case gjson.Null:
		return "", nil
	case gjson.String:
		return msg.String(), nil
	default:
		return "", fmt.Errorf("%w: message must be a string, got %s", errMalformedRequest, jsonTypeName(msg))
	}
}

func jsonTypeName(r gjson.Result) string {
	switch {
	case r.IsObject():
		return "object"
	case r.IsArray():
		return "array"
	case r.IsBool():
		return "boolean"
	case r.Type == gjson.Number:
		return "number"
	default:
		return r.Type.String()
	}
}

func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	for _, h := range s.errorHandlers {
		if h(w, r, err) {
			logpkg.FromContextOr(r.Context(), s.logger).Debug("request rejected", zap.Error(err))
			return
		}
	}

	logpkg.FromContextOr(r.Context(), s.logger).Error("internal error", zap.Error(err))
	msg := err.Error()
	if s.redactInternal {
		msg = internalErrorMessage
	}
	writeError(w, http.StatusInternalServerError, msg)
}

func bodyTooLargeHandler(w http.ResponseWriter, _ *http.Request, err error) bool {
	var tooLarge *http.MaxBytesError
	if !errors.As(err, &tooLarge) {
		return false
	}
	writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
	return true
}

func inputErrorHandler(w http.ResponseWriter, _ *http.Request, err error) bool {
	if !errors.Is(err, domain.ErrInvalidInput) {
		return false
	}
	msg := err.Error()
	var inputErr *domain.InputError
	if errors.As(err, &inputErr) {
		msg = inputErr.Message
	}
	writeError(w, http.StatusBadRequest, msg)
	return true
}

// malformedRequestHandler answers unparsable bodies with 500 and the parse error.
func malformedRequestHandler(w http.ResponseWriter, _ *http.Request, err error) bool {
	if !errors.Is(err, errMalformedRequest) {
		return false
	}
	writeError(w, http.StatusInternalServerError, err.Error())
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
