package handlers

import (
	"net/http"

	"dogwalkservice/internal/repository"
)

func (h *Handlers) GetOpenWalkRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.WalkService.ListOpen(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch walk requests")
		return
	}

	writeSuccess(w, requests, http.StatusOK)
}

func (h *Handlers) GetWalkRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.WalkService.ListRequests(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch walk requests")
		return
	}

	writeSuccess(w, requests, http.StatusOK)
}

func (h *Handlers) GetWalkRequest(w http.ResponseWriter, r *http.Request) {
	requestID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Invalid walk request id", http.StatusBadRequest)
		return
	}

	request, err := h.WalkService.GetRequest(r.Context(), requestID)
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch walk request")
		return
	}

	writeSuccess(w, request, http.StatusOK)
}

func (h *Handlers) CreateWalkRequest(w http.ResponseWriter, r *http.Request) {
	var req repository.CreateWalkRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	request, err := h.WalkService.CreateRequest(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "Failed to create walk request")
		return
	}

	writeSuccess(w, request, http.StatusCreated)
}

func (h *Handlers) UpdateWalkRequestStatus(w http.ResponseWriter, r *http.Request) {
	requestID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Invalid walk request id", http.StatusBadRequest)
		return
	}

	var req repository.UpdateStatusRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	request, err := h.WalkService.UpdateStatus(r.Context(), requestID, req.Status)
	if err != nil {
		writeServiceError(w, r, err, "Failed to update walk request")
		return
	}

	writeSuccess(w, request, http.StatusOK)
}
