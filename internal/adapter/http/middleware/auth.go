package middleware

import (
	"errors"
	"net/http"
	"strings"

	"farmagest/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CtxUsuarioID    = "usuarioID"
	CtxUsuarioEmail = "usuarioEmail"
)

var (
	errTokenAusente   = pkg.NewDomainErrorSimple("MISSING_TOKEN", "Token ausente", http.StatusUnauthorized)
	errTokenInvalido  = pkg.NewDomainErrorSimple("INVALID_TOKEN", "Token inválido", http.StatusUnauthorized)
	errEmailBloqueado = pkg.NewDomainErrorSimple("EMAIL_NOT_AUTHORIZED", "Acesso negado", http.StatusForbidden)
)

// Claims carried by the bearer token issued at sign-in.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// IsEmailAutorizado checks the fixed allow-list. Matching is exact
// lowercase: an e-mail outside the list is denied no matter what the
// identity provider says about it.
func IsEmailAutorizado(email string, autorizados []string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	for _, a := range autorizados {
		if email == a {
			return true
		}
	}
	return false
}

// Autenticacao validates the Bearer token and the e-mail allow-list, then
// stores the principal in the gin context. A valid token whose e-mail is
// not allow-listed gets 403 so the client forces a sign-out.
func Autenticacao(jwtSecret string, emailsAutorizados []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(errTokenAusente.HTTPStatus, errTokenAusente.ToHTTPError())
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")

		claims, err := parseAndValidate(raw, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(errTokenInvalido.HTTPStatus, errTokenInvalido.ToHTTPError())
			return
		}

		if !IsEmailAutorizado(claims.Email, emailsAutorizados) {
			c.AbortWithStatusJSON(errEmailBloqueado.HTTPStatus, errEmailBloqueado.ToHTTPError())
			return
		}

		c.Set(CtxUsuarioID, claims.Subject)
		c.Set(CtxUsuarioEmail, strings.ToLower(claims.Email))
		c.Next()
	}
}

func parseAndValidate(raw, secret string) (*Claims, error) {
	if secret == "" {
		return nil, errors.New("jwt secret not configured")
	}

	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid || claims.Subject == "" {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

// UsuarioID extracts the authenticated user id set by Autenticacao.
func UsuarioID(c *gin.Context) string {
	v, _ := c.Get(CtxUsuarioID)
	id, _ := v.(string)
	return id
}
