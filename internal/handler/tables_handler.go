package handlers

import (
	"net/http"
)

type TablesResponse struct {
	CountTables int `json:"countTables"`
}

func (h *Handlers) TablesHandler(w http.ResponseWriter, r *http.Request) {
	count, err := h.TablesService.GetCountTablesBD(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to count tables")
		return
	}

	writeSuccess(w, TablesResponse{count}, http.StatusOK)
}
