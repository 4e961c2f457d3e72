package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequestTooLargeDetail is returned when the body exceeds the configured limit
const RequestTooLargeDetail = "Request body exceeds maximum allowed size"

// BodyLimit returns a middleware that limits request body size
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			AbortWithDetail(c, http.StatusRequestEntityTooLarge, RequestTooLargeDetail)
			return
		}

		// Bodies without Content-Length are cut off while reading
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
