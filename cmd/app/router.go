package app

import (
	"net/http"

	"github.com/gorilla/mux"

	"dogwalkservice/internal/database"
	handlers "dogwalkservice/internal/handler"
	"dogwalkservice/internal/middleware"
)

// NewRouter registers every route. Everything except /health answers 503
// until ready reports the database initialized.
func NewRouter(h *handlers.Handlers, ready *database.Readiness) http.Handler {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(handlers.NotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowed)

	requireReady := middleware.RequireReady(ready)
	gated := func(path string, handler http.HandlerFunc, method string) {
		router.Handle(path, requireReady(handler)).Methods(method)
	}

	router.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)
	gated("/tables", h.TablesHandler, http.MethodGet)

	gated("/api/dogs", h.GetDogs, http.MethodGet)
	gated("/api/dogs", h.CreateDog, http.MethodPost)

	gated("/api/walkrequests/open", h.GetOpenWalkRequests, http.MethodGet)
	gated("/api/walkrequests", h.GetWalkRequests, http.MethodGet)
	gated("/api/walkrequests", h.CreateWalkRequest, http.MethodPost)
	gated("/api/walkrequests/{id:[0-9]+}", h.GetWalkRequest, http.MethodGet)
	gated("/api/walkrequests/{id:[0-9]+}/status", h.UpdateWalkRequestStatus, http.MethodPatch)
	gated("/api/walkrequests/{id:[0-9]+}/applications", h.GetApplications, http.MethodGet)
	gated("/api/walkrequests/{id:[0-9]+}/applications", h.ApplyToWalkRequest, http.MethodPost)
	gated("/api/walkrequests/{id:[0-9]+}/applications/{applicationID:[0-9]+}/accept", h.AcceptApplication, http.MethodPost)
	gated("/api/walkrequests/{id:[0-9]+}/rating", h.RateWalk, http.MethodPost)

	gated("/api/walkers/summary", h.GetWalkerSummary, http.MethodGet)

	gated("/api/users", h.CreateUser, http.MethodPost)
	gated("/api/users/{id:[0-9]+}", h.GetUser, http.MethodGet)

	return middleware.Chain(
		router,
		middleware.RecoveryMiddleware,
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)
}
