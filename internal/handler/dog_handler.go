package handlers

import (
	"net/http"

	"dogwalkservice/internal/repository"
)

func (h *Handlers) GetDogs(w http.ResponseWriter, r *http.Request) {
	dogs, err := h.DogService.ListDogs(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch dogs")
		return
	}

	writeSuccess(w, dogs, http.StatusOK)
}

func (h *Handlers) CreateDog(w http.ResponseWriter, r *http.Request) {
	var req repository.CreateDogRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	dog, err := h.DogService.CreateDog(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "Failed to create dog")
		return
	}

	writeSuccess(w, dog, http.StatusCreated)
}
