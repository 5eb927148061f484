package recovery

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rawen554/uploader/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	sink := memory.NewMemorySink()
	r := gin.New()
	r.Use(Recovery(sink, zap.L().Sugar()))
	r.GET("/panic", func(c *gin.Context) {
		panic("index out of range")
	})
	r.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error","details":"index out of range"}`, w.Body.String())

	lines := sink.ErrorLines()
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "❌ Exception: index out of range\n"))
	assert.Contains(t, lines[0], "goroutine")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, sink.ErrorLines(), 1)
}
