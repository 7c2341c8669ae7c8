package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/devansh/hostelhub/internal/app/models"
	"github.com/devansh/hostelhub/internal/app/models/dto"
	"github.com/devansh/hostelhub/internal/pkg/apperrors"
)

func TestLeaveCreateRequiresStudent(t *testing.T) {
	svc := NewLeaveRequestService(nil, nil, zerolog.Nop())

	actors := []*models.User{
		nil,
		{ID: 1, Role: models.RoleAdmin},
		{ID: 2, Role: models.RoleStaff},
	}
	for _, actor := range actors {
		_, err := svc.Create(context.Background(), actor, dto.CreateLeaveRequest{})
		if !errors.Is(err, apperrors.ErrPermissionDenied) {
			t.Errorf("actor %+v: expected permission denied, got %v", actor, err)
		}
	}
}

func TestLeaveCreateValidatesDates(t *testing.T) {
	svc := NewLeaveRequestService(nil, nil, zerolog.Nop())
	student := &models.User{ID: 3, Role: models.RoleStudent}

	future := time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")
	farFuture := time.Now().UTC().AddDate(0, 0, 14).Format("2006-01-02")
	past := time.Now().UTC().AddDate(0, 0, -7).Format("2006-01-02")

	tests := []struct {
		name      string
		req       dto.CreateLeaveRequest
		wantField string
	}{
		{"bad from format", dto.CreateLeaveRequest{FromDate: "07-01-2026", ToDate: farFuture}, "from_date"},
		{"bad to format", dto.CreateLeaveRequest{FromDate: future, ToDate: "nope"}, "to_date"},
		{"from in past", dto.CreateLeaveRequest{FromDate: past, ToDate: future}, "from_date"},
		{"to before from", dto.CreateLeaveRequest{FromDate: farFuture, ToDate: future}, "to_date"},
		{"missing destination", dto.CreateLeaveRequest{FromDate: future, ToDate: farFuture, Reason: "family visit"}, "destination"},
		{"missing reason", dto.CreateLeaveRequest{FromDate: future, ToDate: farFuture, Destination: "Pune"}, "reason"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), student, tt.req)
			var valErr *apperrors.ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if valErr.Field != tt.wantField {
				t.Errorf("field = %q, want %q", valErr.Field, tt.wantField)
			}
		})
	}
}
