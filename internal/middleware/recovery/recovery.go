package recovery

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rawen554/uploader/internal/models"
	"go.uber.org/zap"
)

const InternalServerError = "Internal server error"

type ErrorSink interface {
	AppendError(line string) error
}

// Recovery answers panics with the 500 contract and keeps their stack in the error log.
func Recovery(sink ErrorSink, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			Abort(c, sink, logger, "Exception", fmt.Errorf("%v", rec))
		}()

		c.Next()
	}
}

// Abort logs err with the current stack under prefix and stops the chain with a 500.
func Abort(c *gin.Context, sink ErrorSink, logger *zap.SugaredLogger, prefix string, err error) {
	logger.Errorw(prefix, "error", err)

	if appendErr := sink.AppendError(fmt.Sprintf("❌ %s: %v\n%s", prefix, err, debug.Stack())); appendErr != nil {
		logger.Errorf("error appending to log: %v", appendErr)
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorRes{
		Error:   InternalServerError,
		Details: err.Error(),
	})
}
