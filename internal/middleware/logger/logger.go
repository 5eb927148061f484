package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
)

// Logger tags every request with an id and logs it once the handler has finished.
// Request bodies are not logged: uploads carry access tokens and file content.
func Logger(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		uri := c.Request.RequestURI
		method := c.Request.Method

		t := time.Now()
		c.Next()
		duration := time.Since(t)

		logger.Infoln(
			"RequestID", requestID,
			"URI", uri,
			"Method", method,
			"Duration", duration,
			"Status", c.Writer.Status(),
			"Size", c.Writer.Size(),
		)
		logger.Debugln("ContentLength", c.Request.ContentLength)
	}
}
