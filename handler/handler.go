// Package handler exposes the study service over HTTP, both as a chi router
// and as an API Gateway proxy Lambda handler.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"studymate-agent/internal/domain"
	"studymate-agent/internal/usecase"
)

const (
	correlationHeader = "X-Correlation-Id"
	maxBodyBytes      = 1 << 20
)

// Generator is the study use case the handler drives.
type Generator interface {
	Generate(ctx context.Context, req domain.Request) (string, error)
}

type decodeFunc func(data []byte) (domain.Request, error)

// routes maps each POST path to its strict body decoder.
var routes = map[string]decodeFunc{
	"/notes": func(data []byte) (domain.Request, error) {
		return domain.DecodeNotesRequestStrict(data)
	},
	"/questions": func(data []byte) (domain.Request, error) {
		return domain.DecodeQuestionsRequestStrict(data)
	},
	"/career-guidance": func(data []byte) (domain.Request, error) {
		return domain.DecodeFreeformCareerGuidance(data)
	},
}

type successResponse struct {
	Response string `json:"response"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type Handler struct {
	uc     Generator
	logger *slog.Logger
}

func NewHandler(uc Generator) (*Handler, error) {
	if uc == nil {
		return nil, errors.New("handler: generator must not be nil")
	}
	return &Handler{uc: uc, logger: slog.Default()}, nil
}

// dispatch decodes body for path, runs the use case and returns the status
// and JSON payload to write.
func (h *Handler) dispatch(ctx context.Context, correlationID, path string, body []byte) (int, any) {
	logger := h.logger.With("correlation_id", correlationID, "path", path)

	decode, ok := routes[path]
	if !ok {
		return http.StatusNotFound, errorResponse{Detail: "Not Found"}
	}
	req, err := decode(body)
	if err != nil {
		logger.Warn("invalid request", "err", err)
		return http.StatusUnprocessableEntity, errorResponse{Detail: detail(err)}
	}

	text, err := h.uc.Generate(ctx, req)
	if err != nil {
		logger.Error("generate failed", "err", err)
		return http.StatusInternalServerError, errorResponse{Detail: failureDetail(err)}
	}
	logger.Info("request served", "kind", req.Kind())
	return http.StatusOK, successResponse{Response: text}
}

func detail(err error) string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return strings.TrimPrefix(verr.Error(), "domain: ")
	}
	return err.Error()
}

// failureDetail is the collaborator's own error text when the use case
// wrapped one, and the full error otherwise.
func failureDetail(err error) string {
	var ucErr *usecase.Error
	if errors.As(err, &ucErr) && ucErr.Err != nil {
		return ucErr.Err.Error()
	}
	return err.Error()
}

// Handle serves API Gateway proxy events.
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	correlationID := headerValue(event.Headers, correlationHeader)
	if correlationID == "" {
		correlationID = uuid.NewString()
	}

	var (
		status  int
		payload any
	)
	path := event.Path
	_, known := routes[path]
	switch {
	case path == "/health" && event.HTTPMethod == http.MethodGet:
		status, payload = http.StatusOK, healthResponse{Status: "ok"}
	case known && event.HTTPMethod != http.MethodPost:
		status, payload = http.StatusMethodNotAllowed, errorResponse{Detail: "Method Not Allowed"}
	default:
		body, err := eventBody(event)
		if err != nil {
			status, payload = http.StatusBadRequest, errorResponse{Detail: "invalid base64 request body"}
			break
		}
		status, payload = h.dispatch(ctx, correlationID, path, body)
	}
	return jsonProxyResponse(status, payload, correlationID), nil
}

func eventBody(event events.APIGatewayProxyRequest) ([]byte, error) {
	if !event.IsBase64Encoded {
		return []byte(event.Body), nil
	}
	return base64.StdEncoding.DecodeString(event.Body)
}

// Router returns the chi router serving the same routes as Handle.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(correlation)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/health"))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Detail: "Not Found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Detail: "Method Not Allowed"})
	})

	for path := range routes {
		r.Post(path, h.serveHTTP)
	}
	return r
}

func (h *Handler) serveHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Detail: "request body too large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "failed to read request body"})
		return
	}
	status, payload := h.dispatch(r.Context(), w.Header().Get(correlationHeader), r.URL.Path, body)
	writeJSON(w, status, payload)
}

// correlation echoes the caller's X-Correlation-Id or assigns a new one.
func correlation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(correlationHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(correlationHeader, id)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"detail":"Internal Server Error"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func jsonProxyResponse(status int, payload any, correlationID string) events.APIGatewayProxyResponse {
	body, err := json.Marshal(payload)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"detail":"Internal Server Error"}`)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":    "application/json",
			correlationHeader: correlationID,
		},
		Body: string(body),
	}
}

func headerValue(headers map[string]string, name string) string {
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
