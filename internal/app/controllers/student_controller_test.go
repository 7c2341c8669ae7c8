package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/devansh/hostelhub/internal/app/models"
	"github.com/devansh/hostelhub/internal/app/models/dto"
	"github.com/devansh/hostelhub/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubEnrollmentService struct {
	result *dto.EnrollStudentResponse
	err    error
}

func (s *stubEnrollmentService) Enroll(ctx context.Context, actor *models.User, req dto.EnrollStudentRequest) (*dto.EnrollStudentResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type stubStudentService struct {
	student *models.Student
	list    []*models.Student
	total   int64
	err     error
}

func (s *stubStudentService) GetProfile(ctx context.Context, actor *models.User, userID int64) (*models.Student, error) {
	return s.student, s.err
}

func (s *stubStudentService) List(ctx context.Context, actor *models.User, filter dto.StudentFilter) ([]*models.Student, int64, error) {
	return s.list, s.total, s.err
}

func (s *stubStudentService) Update(ctx context.Context, actor *models.User, userID int64, req dto.UpdateStudentRequest) (*models.Student, error) {
	return s.student, s.err
}

func (s *stubStudentService) Delete(ctx context.Context, actor *models.User, userID int64) error {
	return s.err
}

// injectUser places the acting account into the request context the way
// the auth middleware does.
func injectUser(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user != nil {
			c.Set("currentUser", user)
		}
		c.Next()
	}
}

func newStudentTestRouter(enroll *stubEnrollmentService, students *stubStudentService, actor *models.User) *gin.Engine {
	ctrl := NewStudentController(enroll, students, zerolog.Nop())
	router := gin.New()
	router.Use(injectUser(actor))
	router.POST("/students/create", ctrl.Enroll)
	router.GET("/students", ctrl.List)
	router.GET("/students/:userId", ctrl.GetByUserID)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func enrollPayload() dto.EnrollStudentRequest {
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

func TestEnrollReturnsCreated(t *testing.T) {
	admin := &models.User{ID: 1, Role: models.RoleAdmin}
	enroll := &stubEnrollmentService{result: &dto.EnrollStudentResponse{
		User:    &models.User{ID: 7, Role: models.RoleStudent},
		Student: &models.Student{ID: 3, SID: "20231042", BlockCode: "a", RoomNumber: "101"},
	}}
	router := newStudentTestRouter(enroll, &stubStudentService{}, admin)

	w := doJSON(t, router, http.MethodPost, "/students/create", enrollPayload())
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", w.Code, w.Body.String())
	}

	var resp dto.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Errorf("expected success=true")
	}
}

func TestEnrollRejectsMalformedBody(t *testing.T) {
	router := newStudentTestRouter(&stubEnrollmentService{}, &stubStudentService{}, &models.User{Role: models.RoleAdmin})

	req := httptest.NewRequest(http.MethodPost, "/students/create", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestEnrollMapsPermissionDenied(t *testing.T) {
	enroll := &stubEnrollmentService{err: apperrors.ErrPermissionDenied}
	router := newStudentTestRouter(enroll, &stubStudentService{}, &models.User{Role: models.RoleStudent})

	w := doJSON(t, router, http.MethodPost, "/students/create", enrollPayload())
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestEnrollMapsRoomFullToConflict(t *testing.T) {
	enroll := &stubEnrollmentService{err: apperrors.ErrRoomFull}
	router := newStudentTestRouter(enroll, &stubStudentService{}, &models.User{Role: models.RoleAdmin})

	w := doJSON(t, router, http.MethodPost, "/students/create", enrollPayload())
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != dto.ErrorCodeRoomFull {
		t.Errorf("expected RES_003 error code, got %+v", resp.Error)
	}
}

func TestListStudentsReturnsPagination(t *testing.T) {
	students := &stubStudentService{
		list:  []*models.Student{{ID: 1, SID: "20231042"}, {ID: 2, SID: "20231043"}},
		total: 12,
	}
	router := newStudentTestRouter(&stubEnrollmentService{}, students, &models.User{Role: models.RoleStaff})

	w := doJSON(t, router, http.MethodGet, "/students?page=1&limit=10", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp dto.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Pagination == nil {
		t.Fatalf("missing pagination info")
	}
	if resp.Pagination.TotalItems != 12 || resp.Pagination.TotalPages != 2 {
		t.Errorf("unexpected pagination: %+v", resp.Pagination)
	}
}

func TestGetByUserIDRejectsBadID(t *testing.T) {
	router := newStudentTestRouter(&stubEnrollmentService{}, &stubStudentService{}, &models.User{Role: models.RoleAdmin})

	w := doJSON(t, router, http.MethodGet, "/students/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetByUserIDMapsNotFound(t *testing.T) {
	students := &stubStudentService{err: apperrors.ErrStudentNotFound}
	router := newStudentTestRouter(&stubEnrollmentService{}, students, &models.User{Role: models.RoleAdmin})

	w := doJSON(t, router, http.MethodGet, "/students/42", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
