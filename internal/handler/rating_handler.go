package handlers

import (
	"net/http"

	"dogwalkservice/internal/repository"
)

func (h *Handlers) RateWalk(w http.ResponseWriter, r *http.Request) {
	requestID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Invalid walk request id", http.StatusBadRequest)
		return
	}

	var req repository.RateWalkRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	rating, err := h.WalkService.RateWalk(r.Context(), requestID, req)
	if err != nil {
		writeServiceError(w, r, err, "Failed to rate walk")
		return
	}

	writeSuccess(w, rating, http.StatusCreated)
}
