package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/devansh/hostelhub/internal/app/models"
)

func setUser(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(currentUserKey, user)
		c.Next()
	}
}

func TestRoleRequiredAllowsListedRole(t *testing.T) {
	m := &AuthMiddleware{}
	router := gin.New()
	router.Use(setUser(&models.User{ID: 1, Role: models.RoleStaff}))
	router.GET("/x", m.RoleRequired(models.RoleAdmin, models.RoleStaff), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestRoleRequiredRejectsOtherRole(t *testing.T) {
	m := &AuthMiddleware{}
	router := gin.New()
	router.Use(setUser(&models.User{ID: 1, Role: models.RoleStudent}))
	router.GET("/x", m.RoleRequired(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestRoleRequiredWithoutUser(t *testing.T) {
	m := &AuthMiddleware{}
	router := gin.New()
	router.GET("/x", m.RoleRequired(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestTokenFromRequestPrefersHeader(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("Authorization", "Bearer header-token")
	c.Request.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "cookie-token"})

	token, err := tokenFromRequest(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "header-token" {
		t.Errorf("token = %q, want header-token", token)
	}
}

func TestTokenFromRequestFallsBackToCookie(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "cookie-token"})

	token, err := tokenFromRequest(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "cookie-token" {
		t.Errorf("token = %q, want cookie-token", token)
	}
}

func TestTokenFromRequestMissing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	if _, err := tokenFromRequest(c); err == nil {
		t.Fatalf("expected error for missing token")
	}
}

func TestJWTAuthRejectsMissingToken(t *testing.T) {
	m := NewAuthMiddleware(nil, nil)
	router := gin.New()
	router.GET("/x", m.JWTAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
