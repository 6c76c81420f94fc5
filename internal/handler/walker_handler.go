package handlers

import (
	"net/http"
)

func (h *Handlers) GetWalkerSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.WalkerService.Summary(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch walker summary")
		return
	}

	writeSuccess(w, summary, http.StatusOK)
}
