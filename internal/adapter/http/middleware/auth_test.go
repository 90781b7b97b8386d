package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() *gin.Engine {
		r := gin.New()
		r.GET("/protected", RequireAuth(testSecret), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"userId": c.GetInt64(ContextUserID),
				"role":   c.GetString(ContextRole),
			})
		})
		return r
	}

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signToken(t, "other-secret", jwt.MapClaims{"userId": 1, "exp": time.Now().Add(time.Hour).Unix()})
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{"userId": 1, "exp": time.Now().Add(-time.Hour).Unix()})
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token exposes identity", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"userId": 42,
			"email":  "alice@example.com",
			"role":   "client",
			"exp":    time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if body := w.Body.String(); body != `{"role":"client","userId":42}` {
			t.Fatalf("unexpected body: %s", body)
		}
	})
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(role string) *gin.Engine {
		r := gin.New()
		r.GET("/admin",
			func(c *gin.Context) { c.Set(ContextRole, role) },
			RequireRole("admin", "employee"),
			func(c *gin.Context) { c.Status(http.StatusOK) },
		)
		return r
	}

	t.Run("client is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter("client").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("employee passes", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter("employee").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCSRF(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() *gin.Engine {
		r := gin.New()
		r.Use(CSRF())
		r.GET("/page", func(c *gin.Context) { c.Status(http.StatusOK) })
		r.POST("/action", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	t.Run("GET mints the cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/page", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		found := false
		for _, c := range w.Result().Cookies() {
			if c.Name == "csrf_token" && c.Value != "" {
				found = true
			}
		}
		if !found {
			t.Fatal("expected csrf cookie to be set")
		}
	})

	t.Run("POST without token is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/action", nil))
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("POST with mismatched pair is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/action", nil)
		req.AddCookie(&http.Cookie{Name: "csrf_token", Value: "aaa"})
		req.Header.Set("X-CSRF-Token", "bbb")
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("POST with matching pair passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/action", nil)
		req.AddCookie(&http.Cookie{Name: "csrf_token", Value: "tok-1"})
		req.Header.Set("X-CSRF-Token", "tok-1")
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
