package handlers

import (
	"net/http"

	"dogwalkservice/internal/repository"
)

func (h *Handlers) GetApplications(w http.ResponseWriter, r *http.Request) {
	requestID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Invalid walk request id", http.StatusBadRequest)
		return
	}

	applications, err := h.WalkService.ListApplications(r.Context(), requestID)
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch applications")
		return
	}

	writeSuccess(w, applications, http.StatusOK)
}

func (h *Handlers) ApplyToWalkRequest(w http.ResponseWriter, r *http.Request) {
	requestID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Invalid walk request id", http.StatusBadRequest)
		return
	}

	var req repository.ApplyRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	application, err := h.WalkService.Apply(r.Context(), requestID, req)
	if err != nil {
		writeServiceError(w, r, err, "Failed to apply for walk request")
		return
	}

	writeSuccess(w, application, http.StatusCreated)
}

func (h *Handlers) AcceptApplication(w http.ResponseWriter, r *http.Request) {
	requestID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Invalid walk request id", http.StatusBadRequest)
		return
	}

	applicationID, ok := pathID(r, "applicationID")
	if !ok {
		WriteError(w, "Invalid application id", http.StatusBadRequest)
		return
	}

	if err := h.WalkService.AcceptApplication(r.Context(), requestID, applicationID); err != nil {
		writeServiceError(w, r, err, "Failed to accept application")
		return
	}

	writeSuccess(w, map[string]string{"message": "Application accepted"}, http.StatusOK)
}
