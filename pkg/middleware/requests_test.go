package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/boutique-jeux/boutique-api/pkg/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRequestCounter(t *testing.T) {
	r := gin.New()
	r.Use(RequestCounter())
	r.GET("/api/games", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	before := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("/api/games", "GET", "200"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/games", nil))
	require.Equal(t, http.StatusOK, w.Code)

	after := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("/api/games", "GET", "200"))
	require.Equal(t, before+1, after)
}
