package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func TestIsEmailAutorizado(t *testing.T) {
	autorizados := []string{"farmacia@example.com", "gestor@example.com"}

	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"listed email", "farmacia@example.com", true},
		{"uppercase matches lowercase list", "FARMACIA@Example.COM", true},
		{"surrounding spaces ignored", "  gestor@example.com ", true},
		{"unlisted email", "intruso@example.com", false},
		{"empty email", "", false},
		{"partial match rejected", "farmacia@example.com.br", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEmailAutorizado(tt.email, autorizados); got != tt.want {
				t.Fatalf("IsEmailAutorizado(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}

	t.Run("empty allow-list denies everyone", func(t *testing.T) {
		if IsEmailAutorizado("farmacia@example.com", nil) {
			t.Fatal("expected denial with empty allow-list")
		}
	})
}

func assinarToken(t *testing.T, secret, subject, email string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func TestAutenticacao(t *testing.T) {
	gin.SetMode(gin.TestMode)

	const secret = "farmagest-test-secret"
	autorizados := []string{"farmacia@example.com"}

	novoRouter := func() *gin.Engine {
		r := gin.New()
		r.Use(Autenticacao(secret, autorizados))
		r.GET("/protegido", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return r
	}

	t.Run("missing header", func(t *testing.T) {
		r := novoRouter()
		req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("non bearer scheme", func(t *testing.T) {
		r := novoRouter()
		req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
		req.Header.Set("Authorization", "Basic abc123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		r := novoRouter()
		req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		r := novoRouter()
		tok := assinarToken(t, "outro-segredo", "user-1", "farmacia@example.com")
		req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		r := novoRouter()
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
			Email: "farmacia@example.com",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})
		signed, err := tok.SignedString([]byte(secret))
		if err != nil {
			t.Fatalf("signing token: %v", err)
		}
		req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing subject", func(t *testing.T) {
		r := novoRouter()
		tok := assinarToken(t, secret, "", "farmacia@example.com")
		req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token but unlisted email", func(t *testing.T) {
		r := novoRouter()
		tok := assinarToken(t, secret, "user-1", "intruso@example.com")
		req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("valid token and listed email", func(t *testing.T) {
		var gotID, gotEmail string
		r := gin.New()
		r.Use(Autenticacao(secret, autorizados))
		r.GET("/protegido", func(c *gin.Context) {
			gotID = UsuarioID(c)
			v, _ := c.Get(CtxUsuarioEmail)
			gotEmail, _ = v.(string)
			c.Status(http.StatusOK)
		})

		tok := assinarToken(t, secret, "user-1", "FARMACIA@example.com")
		req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if gotID != "user-1" {
			t.Fatalf("expected principal user-1, got %q", gotID)
		}
		if gotEmail != "farmacia@example.com" {
			t.Fatalf("expected lowercased email in context, got %q", gotEmail)
		}
	})
}
