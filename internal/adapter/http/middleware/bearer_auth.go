package middleware

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"

	"studio_booking/pkg"

	"github.com/gin-gonic/gin"
)

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)

// BearerSecret admits requests carrying "Authorization: Bearer <secret>".
// An empty secret rejects everything.
func BearerSecret(secret string) gin.HandlerFunc {
	want := []byte(secret)
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if len(want) == 0 || !ok || subtle.ConstantTimeCompare([]byte(strings.TrimSpace(token)), want) != 1 {
			log.Printf("[HTTP] request_id=%s unauthorized path=%s", GetRequestID(c), c.Request.URL.Path)
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		c.Next()
	}
}
