package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"dogwalkservice/internal/repository"
	"dogwalkservice/internal/service"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func writeSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, "Not found", http.StatusNotFound)
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
}

// statusFromError maps domain errors to HTTP statuses; anything else is a 500.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrNotOwner),
		errors.Is(err, repository.ErrNotWalker),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrNotRequestOwner):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrStatusConflict),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrRequestNotOpen),
		errors.Is(err, service.ErrRequestNotCompleted):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError answers with the domain error message, or with message
// and a 500 when err is not a known domain outcome. Details of 500s only go to the log.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	logger := zerolog.Ctx(r.Context())

	status := statusFromError(err)
	if status != http.StatusInternalServerError {
		logger.Debug().Err(err).Int("status", status).Msg("request rejected")
		WriteError(w, err.Error(), status)
		return
	}

	event := logger.Error()
	if errors.Is(err, repository.ErrDuplicate) {
		event = logger.Warn()
	}
	event.Err(err).Msg(message)

	WriteError(w, message, status)
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// decodeAndValidate reads a JSON body into req and runs its validate tags.
// It writes the 400 response itself and reports whether the handler may continue.
func (h *Handlers) decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return false
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return false
	}

	return true
}
