package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DecompressRequest transparently unwraps gzip encoded request bodies so
// handlers always see plain JSON. A gzip header on a bodyless request is
// ignored rather than rejected; proxies occasionally forward the header on
// GETs.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.Contains(c.GetHeader("Content-Encoding"), "gzip") {
			c.Next()
			return
		}
		body := c.Request.Body
		if body == nil || body == http.NoBody || c.Request.ContentLength == 0 {
			c.Request.Header.Del("Content-Encoding")
			c.Next()
			return
		}

		reader, err := gzip.NewReader(body)
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		defer reader.Close()
		defer body.Close()

		c.Request.Body = io.NopCloser(reader)
		// the advertised length describes the compressed payload
		c.Request.ContentLength = -1
		c.Request.Header.Del("Content-Encoding")
		c.Next()
	}
}
