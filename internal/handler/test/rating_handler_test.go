package test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"dogwalkservice/internal/models"
	"dogwalkservice/internal/repository"
	"dogwalkservice/internal/service"
)

func TestRateWalkHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(*MockWalkService)
		expectedStatus int
	}{
		{
			name: "Owner rates the walk",
			body: `{"owner_id":1,"rating":5,"comments":"Great walk, very punctual!"}`,
			mockSetup: func(svc *MockWalkService) {
				svc.On("RateWalk", mock.Anything, int64(4), mock.MatchedBy(func(req repository.RateWalkRequest) bool {
					return req.OwnerID == 1 && req.Rating == 5 && req.Comments != nil
				})).Return(&models.WalkRating{RatingID: 1, RequestID: 4, WalkerID: 2, OwnerID: 1, Rating: 5}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Rating without comments",
			body: `{"owner_id":1,"rating":3}`,
			mockSetup: func(svc *MockWalkService) {
				svc.On("RateWalk", mock.Anything, int64(4), repository.RateWalkRequest{OwnerID: 1, Rating: 3}).
					Return(&models.WalkRating{RatingID: 2, Rating: 3}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Rating above five",
			body:           `{"owner_id":1,"rating":6}`,
			mockSetup:      func(svc *MockWalkService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Walk not completed",
			body: `{"owner_id":1,"rating":4}`,
			mockSetup: func(svc *MockWalkService) {
				svc.On("RateWalk", mock.Anything, int64(4), mock.Anything).Return(nil, service.ErrRequestNotCompleted)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Not the dog's owner",
			body: `{"owner_id":3,"rating":4}`,
			mockSetup: func(svc *MockWalkService) {
				svc.On("RateWalk", mock.Anything, int64(4), mock.Anything).Return(nil, service.ErrNotRequestOwner)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Second rating is a generic error",
			body: `{"owner_id":1,"rating":4}`,
			mockSetup: func(svc *MockWalkService) {
				svc.On("RateWalk", mock.Anything, int64(4), mock.Anything).Return(nil, repository.ErrDuplicate)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandlers()
			svc := handler.WalkService.(*MockWalkService)
			tt.mockSetup(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/walkrequests/4/rating", bytes.NewBufferString(tt.body))
			req = mux.SetURLVars(req, map[string]string{"id": "4"})
			rr := httptest.NewRecorder()
			handler.RateWalk(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			svc.AssertExpectations(t)
		})
	}
}
