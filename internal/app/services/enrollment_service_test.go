package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/devansh/hostelhub/internal/app/models"
	"github.com/devansh/hostelhub/internal/app/models/dto"
	"github.com/devansh/hostelhub/internal/app/repositories"
	"github.com/devansh/hostelhub/internal/db"
	"github.com/devansh/hostelhub/internal/pkg/apperrors"
)

// recordingTxManager notes whether a transaction was started and runs the
// body directly against the stub repositories.
type recordingTxManager struct {
	called bool
}

func (m *recordingTxManager) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	m.called = true
	return fn(ctx, nil)
}

type stubEnrollUserRepo struct {
	repositories.IUserRepository
	emailTaken bool
	phoneTaken bool
	createErr  error
	created    *models.User
}

func (s *stubEnrollUserRepo) EmailOrPhoneExists(ctx context.Context, email, phone string) (bool, bool, error) {
	return s.emailTaken, s.phoneTaken, nil
}

func (s *stubEnrollUserRepo) Create(ctx context.Context, user *models.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	user.ID = 7
	s.created = user
	return nil
}

func (s *stubEnrollUserRepo) WithTx(tx pgx.Tx) repositories.IUserRepository { return s }

type stubEnrollStudentRepo struct {
	repositories.IStudentRepository
	sidTaken bool
	created  *models.Student
}

func (s *stubEnrollStudentRepo) SIDExists(ctx context.Context, sid string) (bool, error) {
	return s.sidTaken, nil
}

func (s *stubEnrollStudentRepo) Create(ctx context.Context, student *models.Student) error {
	student.ID = 11
	s.created = student
	return nil
}

func (s *stubEnrollStudentRepo) WithTx(tx pgx.Tx) repositories.IStudentRepository { return s }

type stubEnrollRoomRepo struct {
	repositories.IRoomRepository
	room        *models.Room
	allocateErr error
	allocated   bool
}

func (s *stubEnrollRoomRepo) Allocate(ctx context.Context, block, roomNumber string, defaultCapacity int, defaultRent int64) (*models.Room, error) {
	s.allocated = true
	if s.allocateErr != nil {
		return nil, s.allocateErr
	}
	return s.room, nil
}

func (s *stubEnrollRoomRepo) WithTx(tx pgx.Tx) repositories.IRoomRepository { return s }

func newEnrollFixture() (*EnrollmentService, *recordingTxManager, *stubEnrollUserRepo, *stubEnrollStudentRepo, *stubEnrollRoomRepo) {
	tx := &recordingTxManager{}
	users := &stubEnrollUserRepo{}
	students := &stubEnrollStudentRepo{}
	rooms := &stubEnrollRoomRepo{
		room: &models.Room{ID: 3, BlockCode: "a", RoomNumber: "101", Capacity: 2, Occupancy: 1},
	}
	svc := NewEnrollmentService(tx, users, students, rooms, 2, 85000, zerolog.Nop())
	return svc, tx, users, students, rooms
}

func enrollAdmin() *models.User {
	return &models.User{ID: 1, Role: models.RoleAdmin}
}

func validEnrollRequest() dto.EnrollStudentRequest {
	return dto.EnrollStudentRequest{
		FullName:         "Rohan Sharma",
		Email:            "rohan@hostel.edu",
		Phone:            "9876543210",
		Password:         "secret123",
		SID:              "20231042",
		PermanentAddress: "12 MG Road, Pune",
		GuardianName:     "Suresh Sharma",
		GuardianContact:  "9123456780",
		Branch:           "CSE",
		Block:            "a",
		RoomNumber:       "101",
	}
}

func TestValidateEnrollRequestAcceptsValid(t *testing.T) {
	if err := validateEnrollRequest(validEnrollRequest()); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestValidateEnrollRequestRequiredFieldOrder(t *testing.T) {
	// Blanking several fields at once must report the first one in order.
	req := validEnrollRequest()
	req.Phone = ""
	req.SID = ""
	req.Block = ""

	err := validateEnrollRequest(req)
	var valErr *apperrors.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if valErr.Field != "phone" {
		t.Errorf("expected first failing field phone, got %q", valErr.Field)
	}
}

func TestValidateEnrollRequestFormatChecks(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*dto.EnrollStudentRequest)
		wantField string
	}{
		{"short sid", func(r *dto.EnrollStudentRequest) { r.SID = "1234" }, "sid"},
		{"alpha sid", func(r *dto.EnrollStudentRequest) { r.SID = "2023104a" }, "sid"},
		{"bad guardian contact", func(r *dto.EnrollStudentRequest) { r.GuardianContact = "12345" }, "guardian_contact"},
		{"bad email", func(r *dto.EnrollStudentRequest) { r.Email = "not-an-email" }, "email"},
		{"bad phone", func(r *dto.EnrollStudentRequest) { r.Phone = "123" }, "phone"},
		{"short password", func(r *dto.EnrollStudentRequest) { r.Password = "12345" }, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validEnrollRequest()
			tt.mutate(&req)

			err := validateEnrollRequest(req)
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

func TestValidateEnrollRequestSIDBeforeEmail(t *testing.T) {
	// Both sid and email malformed: sid wins.
	req := validEnrollRequest()
	req.SID = "bad"
	req.Email = "also-bad"

	err := validateEnrollRequest(req)
	var valErr *apperrors.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if valErr.Field != "sid" {
		t.Errorf("expected sid reported first, got %q", valErr.Field)
	}
}

func TestNormalizeEnrollRequest(t *testing.T) {
	req := dto.EnrollStudentRequest{
		FullName:   "  Rohan Sharma ",
		Email:      " Rohan@Hostel.EDU ",
		Block:      " A ",
		RoomNumber: " 101 ",
	}
	normalizeEnrollRequest(&req)

	if req.FullName != "Rohan Sharma" {
		t.Errorf("full name not trimmed: %q", req.FullName)
	}
	if req.Email != "rohan@hostel.edu" {
		t.Errorf("email not lowercased: %q", req.Email)
	}
	if req.Block != "a" {
		t.Errorf("block not lowercased: %q", req.Block)
	}
	if req.RoomNumber != "101" {
		t.Errorf("room number not trimmed: %q", req.RoomNumber)
	}
}

func TestEnrollRequiresAdmin(t *testing.T) {
	svc := NewEnrollmentService(nil, nil, nil, nil, 2, 85000, zerolog.Nop())

	actors := []*models.User{
		nil,
		{ID: 1, Role: models.RoleStudent},
		{ID: 2, Role: models.RoleStaff},
	}
	for _, actor := range actors {
		if _, err := svc.Enroll(context.Background(), actor, validEnrollRequest()); !errors.Is(err, apperrors.ErrPermissionDenied) {
			t.Errorf("actor %+v: expected permission denied, got %v", actor, err)
		}
	}
}

func TestEnrollRejectsNonStudentRole(t *testing.T) {
	svc, tx, _, _, _ := newEnrollFixture()

	req := validEnrollRequest()
	req.Role = "admin"

	_, err := svc.Enroll(context.Background(), enrollAdmin(), req)
	var valErr *apperrors.ValidationError
	if !errors.As(err, &valErr) || valErr.Field != "role" {
		t.Fatalf("expected role validation error, got %v", err)
	}
	if tx.called {
		t.Error("transaction started for a rejected role")
	}
}

func TestEnrollInvalidSIDNeverStartsTransaction(t *testing.T) {
	svc, tx, users, _, _ := newEnrollFixture()

	req := validEnrollRequest()
	req.SID = "1234567"

	_, err := svc.Enroll(context.Background(), enrollAdmin(), req)
	var valErr *apperrors.ValidationError
	if !errors.As(err, &valErr) || valErr.Field != "sid" {
		t.Fatalf("expected sid validation error, got %v", err)
	}
	if tx.called {
		t.Error("transaction started for an invalid sid")
	}
	if users.created != nil {
		t.Error("user persisted for an invalid sid")
	}
}

func TestEnrollDuplicateEmailNeverStartsTransaction(t *testing.T) {
	svc, tx, users, _, _ := newEnrollFixture()
	users.emailTaken = true

	_, err := svc.Enroll(context.Background(), enrollAdmin(), validEnrollRequest())
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("expected email conflict, got %v", err)
	}
	if tx.called {
		t.Error("transaction started for a duplicate email")
	}
}

func TestEnrollDuplicateSIDNeverStartsTransaction(t *testing.T) {
	svc, tx, _, students, _ := newEnrollFixture()
	students.sidTaken = true

	_, err := svc.Enroll(context.Background(), enrollAdmin(), validEnrollRequest())
	if !errors.Is(err, apperrors.ErrSIDAlreadyExists) {
		t.Fatalf("expected sid conflict, got %v", err)
	}
	if tx.called {
		t.Error("transaction started for a duplicate sid")
	}
}

func TestEnrollRoomFullPropagatesAndSkipsProfile(t *testing.T) {
	svc, tx, _, students, rooms := newEnrollFixture()
	rooms.allocateErr = apperrors.ErrRoomFull

	_, err := svc.Enroll(context.Background(), enrollAdmin(), validEnrollRequest())
	if !errors.Is(err, apperrors.ErrRoomFull) {
		t.Fatalf("expected room full, got %v", err)
	}
	if !tx.called {
		t.Error("allocation failure must surface from inside the transaction")
	}
	if students.created != nil {
		t.Error("student profile written after a failed allocation")
	}
}

func TestEnrollUserCreateFailureSkipsAllocation(t *testing.T) {
	svc, _, users, _, rooms := newEnrollFixture()
	users.createErr = apperrors.ErrEmailAlreadyExists

	_, err := svc.Enroll(context.Background(), enrollAdmin(), validEnrollRequest())
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("expected email conflict, got %v", err)
	}
	if rooms.allocated {
		t.Error("room slot claimed after the user create failed")
	}
}

func TestEnrollDerivesRoomFieldsFromAllocatedRoom(t *testing.T) {
	svc, _, users, students, rooms := newEnrollFixture()
	// The allocated room is the truth for the denormalized copies, not the
	// request input.
	rooms.room = &models.Room{ID: 3, BlockCode: "a", RoomNumber: "101A", Capacity: 2, Occupancy: 1}

	req := validEnrollRequest()
	req.Role = " Student "
	req.RoomNumber = "101a"

	resp, err := svc.Enroll(context.Background(), enrollAdmin(), req)
	if err != nil {
		t.Fatalf("enroll failed: %v", err)
	}
	if resp.User.Role != models.RoleStudent {
		t.Errorf("role = %q, want student", resp.User.Role)
	}
	if users.created == nil || users.created.Password == req.Password {
		t.Error("password stored unhashed")
	}
	if students.created == nil {
		t.Fatal("student profile not created")
	}
	if students.created.UserID != 7 || students.created.RoomID != 3 {
		t.Errorf("profile references user %d room %d, want 7 and 3",
			students.created.UserID, students.created.RoomID)
	}
	if students.created.BlockCode != "a" || students.created.RoomNumber != "101A" {
		t.Errorf("denormalized copies %q/%q not taken from the allocated room",
			students.created.BlockCode, students.created.RoomNumber)
	}
}
