package middleware

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/devansh/hostelhub/internal/app/models/dto"
	"github.com/devansh/hostelhub/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func handleError(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return w.Code, body
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"validation", apperrors.ErrValidationFailed, 400, dto.ErrorCodeValidationFailed},
		{"bad request", apperrors.ErrBadRequest, 400, dto.ErrorCodeValidationFailed},
		{"invalid credentials", apperrors.ErrInvalidCredentials, 401, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, 401, dto.ErrorCodeExpiredToken},
		{"inactive account", apperrors.ErrAccountInactive, 403, dto.ErrorCodeAccountInactive},
		{"permission denied", apperrors.ErrPermissionDenied, 403, dto.ErrorCodeForbidden},
		{"room full", apperrors.ErrRoomFull, 409, dto.ErrorCodeRoomFull},
		{"email taken", apperrors.ErrEmailAlreadyExists, 409, dto.ErrorCodeResourceAlreadyExists},
		{"sid taken", apperrors.ErrSIDAlreadyExists, 409, dto.ErrorCodeResourceAlreadyExists},
		{"leave overlap", apperrors.ErrLeaveOverlap, 409, dto.ErrorCodeResourceAlreadyExists},
		{"user not found", apperrors.ErrUserNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"student not found", apperrors.ErrStudentNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"room not found", apperrors.ErrRoomNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"unknown", errors.New("boom"), 500, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := handleError(t, tt.err)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if body.Success {
				t.Errorf("expected success=false")
			}
			if body.Error == nil {
				t.Fatalf("missing error detail")
			}
			if body.Error.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", body.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestHandleAPIErrorValidationField(t *testing.T) {
	status, body := handleError(t, apperrors.NewValidationError("sid", "Student ID must be exactly 8 digits"))
	if status != 400 {
		t.Fatalf("status = %d, want 400", status)
	}
	if body.Error.Field != "sid" {
		t.Errorf("field = %q, want sid", body.Error.Field)
	}
	if body.Error.Message != "Student ID must be exactly 8 digits" {
		t.Errorf("unexpected message %q", body.Error.Message)
	}
}

func TestHandleAPIErrorWrappedSentinel(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), apperrors.ErrRoomFull)
	status, body := handleError(t, wrapped)
	if status != 409 {
		t.Fatalf("status = %d, want 409", status)
	}
	if body.Error.Code != dto.ErrorCodeRoomFull {
		t.Errorf("code = %s, want %s", body.Error.Code, dto.ErrorCodeRoomFull)
	}
}

func TestHandleAPIErrorConflictMessage(t *testing.T) {
	status, body := handleError(t, apperrors.NewConflictError("room still has residents"))
	if status != 409 {
		t.Fatalf("status = %d, want 409", status)
	}
	if body.Error.Message != "room still has residents" {
		t.Errorf("unexpected message %q", body.Error.Message)
	}
}
