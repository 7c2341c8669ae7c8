package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/devansh/hostelhub/internal/app/models"
	"github.com/devansh/hostelhub/internal/app/models/dto"
	"github.com/devansh/hostelhub/internal/app/repositories"
	"github.com/devansh/hostelhub/internal/pkg/apperrors"
)

type stubRoomRepo struct {
	repositories.IRoomRepository
	room    *models.Room
	updated bool
}

func (s *stubRoomRepo) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	return s.room, nil
}

func (s *stubRoomRepo) Update(ctx context.Context, id int64, req *dto.UpdateRoomRequest) (*models.Room, error) {
	s.updated = true
	return s.room, nil
}

func intPtr(v int) *int { return &v }

func TestRoomUpdateRejectsCapacityBelowOccupancy(t *testing.T) {
	repo := &stubRoomRepo{room: &models.Room{ID: 5, Capacity: 3, Occupancy: 2}}
	svc := NewRoomService(repo, 2, 85000, zerolog.Nop())
	admin := &models.User{ID: 1, Role: models.RoleAdmin}

	_, err := svc.Update(context.Background(), admin, 5, dto.UpdateRoomRequest{Capacity: intPtr(1)})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if repo.updated {
		t.Error("room written despite capacity below occupancy")
	}
}

func TestRoomUpdateAllowsCapacityAtOccupancy(t *testing.T) {
	repo := &stubRoomRepo{room: &models.Room{ID: 5, Capacity: 3, Occupancy: 2}}
	svc := NewRoomService(repo, 2, 85000, zerolog.Nop())
	admin := &models.User{ID: 1, Role: models.RoleAdmin}

	if _, err := svc.Update(context.Background(), admin, 5, dto.UpdateRoomRequest{Capacity: intPtr(2)}); err != nil {
		t.Fatalf("shrinking to current occupancy should pass, got %v", err)
	}
	if !repo.updated {
		t.Error("room not written")
	}
}

func TestRoomUpdateRequiresAdmin(t *testing.T) {
	svc := NewRoomService(nil, 2, 85000, zerolog.Nop())
	staff := &models.User{ID: 2, Role: models.RoleStaff}

	_, err := svc.Update(context.Background(), staff, 5, dto.UpdateRoomRequest{Capacity: intPtr(2)})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected permission denied, got %v", err)
	}
}
