// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/pokedex/internal/platform/apperr"
	"github.com/taibuivan/pokedex/internal/platform/respond"
)

/*
TestCreated_Envelope checks status and data wrapping for create responses.
*/
func TestCreated_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.Created(rec, map[string]int{"id": 7})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{"data":{"id":7}}`, rec.Body.String())
}

/*
TestDeleted_Message checks the delete confirmation payload.
*/
func TestDeleted_Message(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.Deleted(rec, "Pokemon deleted")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"message":"Pokemon deleted"}}`, rec.Body.String())
}

/*
TestError_Mapping covers AppErrors, validation maps and unknown errors.
*/
func TestError_Mapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantFields map[string]string
	}{
		{
			name:       "forbidden",
			err:        apperr.Forbidden("Unauthorized"),
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name: "validation",
			err: apperr.ValidationError("Validation failed",
				apperr.FieldError{Field: "rating", Message: "Must be between 1 and 5"}),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
			wantFields: map[string]string{"rating": "Must be between 1 and 5"},
		},
		{
			name:       "unknown",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			respond.Error(rec, req, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body respond.ErrorEnvelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantFields, body.Errors)
			assert.NotContains(t, body.Error, "boom")
		})
	}
}
