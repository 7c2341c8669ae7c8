package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/devansh/hostelhub/internal/app/models"
	"github.com/devansh/hostelhub/internal/app/models/dto"
	"github.com/devansh/hostelhub/internal/middleware"
	"github.com/devansh/hostelhub/internal/pkg/apperrors"
)

type stubAuthService struct {
	loginResult *dto.LoginResponse
	loginErr    error
	current     *models.User
	currentErr  error
}

func (s *stubAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	return s.loginResult, s.loginErr
}

func (s *stubAuthService) GetCurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	return s.current, s.currentErr
}

type stubUserService struct {
	registered *models.User
	err        error
}

func (s *stubUserService) Register(ctx context.Context, actor *models.User, req dto.RegisterUserRequest) (*models.User, error) {
	return s.registered, s.err
}

func (s *stubUserService) UpdateStatus(ctx context.Context, actor *models.User, userID int64, status string) error {
	return s.err
}

func newUserTestRouter(auth *stubAuthService, users *stubUserService, actor *models.User) *gin.Engine {
	ctrl := NewUserController(auth, users, 3600, zerolog.Nop())
	router := gin.New()
	router.Use(injectUser(actor))
	router.POST("/users/login", ctrl.Login)
	router.POST("/users/logout", ctrl.Logout)
	router.POST("/users/register", ctrl.Register)
	router.PATCH("/users/:id/status", ctrl.UpdateStatus)
	return router
}

func TestLoginSetsCookie(t *testing.T) {
	auth := &stubAuthService{loginResult: &dto.LoginResponse{
		AccessToken: "token-abc",
		TokenType:   "Bearer",
		ExpiresIn:   3600,
		User:        &models.User{ID: 1, Role: models.RoleAdmin},
	}}
	router := newUserTestRouter(auth, &stubUserService{}, nil)

	w := doJSON(t, router, http.MethodPost, "/users/login",
		dto.LoginRequest{Email: "admin@hostelhub.edu", Password: "secret"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}

	cookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, middleware.AccessTokenCookie+"=token-abc") {
		t.Errorf("expected access token cookie, got %q", cookie)
	}
	if !strings.Contains(cookie, "HttpOnly") {
		t.Errorf("expected httpOnly cookie, got %q", cookie)
	}
}

func TestLoginMapsInvalidCredentials(t *testing.T) {
	auth := &stubAuthService{loginErr: apperrors.ErrInvalidCredentials}
	router := newUserTestRouter(auth, &stubUserService{}, nil)

	w := doJSON(t, router, http.MethodPost, "/users/login",
		dto.LoginRequest{Email: "admin@hostelhub.edu", Password: "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != dto.ErrorCodeInvalidCredentials {
		t.Errorf("expected AUTH_001, got %+v", resp.Error)
	}
}

func TestLoginMapsInactiveAccount(t *testing.T) {
	auth := &stubAuthService{loginErr: apperrors.ErrAccountInactive}
	router := newUserTestRouter(auth, &stubUserService{}, nil)

	w := doJSON(t, router, http.MethodPost, "/users/login",
		dto.LoginRequest{Email: "admin@hostelhub.edu", Password: "secret"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	router := newUserTestRouter(&stubAuthService{}, &stubUserService{}, nil)

	w := doJSON(t, router, http.MethodPost, "/users/logout", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	cookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, middleware.AccessTokenCookie+"=") || !strings.Contains(cookie, "Max-Age=0") {
		t.Errorf("expected expired cookie, got %q", cookie)
	}
}

func TestRegisterReturnsCreated(t *testing.T) {
	users := &stubUserService{registered: &models.User{ID: 5, Role: models.RoleStaff}}
	router := newUserTestRouter(&stubAuthService{}, users, &models.User{ID: 1, Role: models.RoleAdmin})

	w := doJSON(t, router, http.MethodPost, "/users/register", dto.RegisterUserRequest{
		FullName: "Meera Iyer",
		Email:    "meera@hostelhub.edu",
		Phone:    "9876500001",
		Password: "secret123",
		Role:     models.RoleStaff,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", w.Code, w.Body.String())
	}
}

func TestUpdateStatusMapsErrors(t *testing.T) {
	users := &stubUserService{err: apperrors.ErrUserNotFound}
	router := newUserTestRouter(&stubAuthService{}, users, &models.User{ID: 1, Role: models.RoleAdmin})

	w := doJSON(t, router, http.MethodPatch, "/users/42/status",
		dto.UpdateUserStatusRequest{Status: "inactive"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
