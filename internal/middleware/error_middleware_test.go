package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"schoolhub/internal/app/models/dto"
	"schoolhub/internal/pkg/apperrors"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest("GET", "/", nil)

	HandleAPIError(c, err)

	var resp dto.ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return recorder, resp
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"teacher not found", apperrors.ErrTeacherNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"enrollment not found", apperrors.ErrEnrollmentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"duplicate email", apperrors.ErrStudentEmailExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"duplicate enrollment", apperrors.ErrAlreadyEnrolled, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"duplicate course code", apperrors.ErrCourseCodeAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"validation", apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder, resp := handleError(t, tc.err)
			if recorder.Code != tc.wantStatus {
				t.Errorf("expected status %d, got %d", tc.wantStatus, recorder.Code)
			}
			if resp.Success {
				t.Error("error responses must carry success=false")
			}
			if resp.Error == nil || resp.Error.Code != tc.wantCode {
				t.Errorf("expected error code %s, got %+v", tc.wantCode, resp.Error)
			}
		})
	}
}

func TestHandleAPIErrorCarriesValidationMessage(t *testing.T) {
	recorder, resp := handleError(t, apperrors.NewValidationError("limit must be an integer between 1 and 100"))

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", recorder.Code)
	}
	if resp.Error == nil || resp.Error.Message != "limit must be an integer between 1 and 100" {
		t.Errorf("expected the wrapped message to surface, got %+v", resp.Error)
	}
}

func TestHandleAPIErrorHidesInternalDetails(t *testing.T) {
	_, resp := handleError(t, errors.New("pq: connection refused at 10.0.0.5"))

	if resp.Error == nil || resp.Error.Message != "Internal server error" {
		t.Errorf("internal errors must not leak details, got %+v", resp.Error)
	}
}
