package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"club-booking/internal/usecase"
	"club-booking/pkg/apiclient"
	"club-booking/pkg/errs"
	"club-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var body utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", &usecase.ValidationError{Fields: map[string]string{"date": "Date cannot be in the past"}}, http.StatusBadRequest, "Validation failed"},
		{"not found", fmt.Errorf("%w: draft x", usecase.ErrNotFound), http.StatusNotFound, "not found: draft x"},
		{"forbidden", usecase.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"unauthorized", usecase.ErrUnauthorized, http.StatusUnauthorized, "Authentication required"},
		{"stale", usecase.ErrStaleAvailability, http.StatusConflict, usecase.ErrStaleAvailability.Error()},
		{"seat taken", fmt.Errorf("%w: PC-1", usecase.ErrSeatUnavailable), http.StatusConflict, "seat is not available: PC-1"},
		{"upstream 4xx", errs.WithStack(&apiclient.StatusError{Status: http.StatusUnauthorized, Message: "Bad credentials"}), http.StatusUnauthorized, "Bad credentials"},
		{"upstream 5xx", &apiclient.StatusError{Status: http.StatusInternalServerError, Message: "boom"}, http.StatusBadGateway, "Club service is unavailable, please try again later"},
		{"transport", errs.Wrap(apiclient.ErrTransport, "GET /api/v1/tariff"), http.StatusBadGateway, "Club service is unavailable, please try again later"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(rec, zap.NewNop(), tt.err, "test")

			assert.Equal(t, tt.status, rec.Code)
			body := decodeEnvelope(t, rec)
			assert.False(t, body.Status)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}

func TestHandleServiceError_ValidationFields(t *testing.T) {
	rec := httptest.NewRecorder()
	handleServiceError(rec, zap.NewNop(), &usecase.ValidationError{Fields: map[string]string{"seats": "Choose at least one seat"}}, "test")

	body := decodeEnvelope(t, rec)
	assert.Equal(t, map[string]any{"seats": "Choose at least one seat"}, body.Errors)
}
