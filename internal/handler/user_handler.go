package handlers

import (
	"net/http"

	"dogwalkservice/internal/repository"
)

func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req repository.CreateUserRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.UserService.CreateUser(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "Failed to create user")
		return
	}

	writeSuccess(w, user, http.StatusCreated)
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.GetUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch user")
		return
	}

	writeSuccess(w, user, http.StatusOK)
}
