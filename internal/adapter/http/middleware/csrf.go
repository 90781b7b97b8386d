package middleware

import (
	"crypto/subtle"
	"net/http"

	"atelier_backend/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	csrfCookie = "csrf_token"
	csrfHeader = "X-CSRF-Token"
)

var errCSRF = pkg.NewDomainErrorSimple("CSRF_REJECTED", "Missing or mismatched CSRF token", http.StatusForbidden)

// CSRF implements the double-submit cookie scheme: safe methods mint the
// cookie, mutating methods must echo it back in the X-CSRF-Token header.
func CSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(csrfCookie)

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			if err != nil || cookie == "" {
				c.SetCookie(csrfCookie, uuid.New().String(), 0, "/", "", false, false)
			}
			c.Next()
			return
		}

		header := c.GetHeader(csrfHeader)
		if err != nil || cookie == "" || header == "" ||
			subtle.ConstantTimeCompare([]byte(cookie), []byte(header)) != 1 {
			c.AbortWithStatusJSON(errCSRF.HTTPStatus, errCSRF.ToHTTPError())
			return
		}

		c.Next()
	}
}
