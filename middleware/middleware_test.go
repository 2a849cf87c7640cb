package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kelydev/explorador/metrics"
	"github.com/kelydev/explorador/navigation"
)

func TestRequestLoggerCountsByRouteTemplate(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	r := mux.NewRouter()
	r.Use(RequestLogger(zap.NewNop(), m))
	var seenID string
	r.HandleFunc("/grupos/{nombre}", func(w http.ResponseWriter, r *http.Request) {
		seenID = RequestID(r.Context())
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/grupos/G1", nil))

	assert.NotEmpty(t, seenID)
	assert.Equal(t, seenID, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("/grupos/{nombre}", "404")))
}

func TestRequestLoggerKeepsIncomingID(t *testing.T) {
	r := mux.NewRouter()
	r.Use(RequestLogger(zap.NewNop(), metrics.NewNop()))
	r.HandleFunc("/", func(http.ResponseWriter, *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "abc", rec.Header().Get("X-Request-ID"))
}

func TestTrackNavigationPushesEscapedPath(t *testing.T) {
	store := navigation.NewStore(10, time.Hour)
	r := mux.NewRouter().UseEncodedPath()
	r.Use(TrackNavigation(store))
	var visitor string
	r.HandleFunc("/investigadores/{nombre}", func(w http.ResponseWriter, r *http.Request) {
		visitor = VisitorID(r.Context())
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/investigadores/Ana%2FRuiz", nil))
	require.NotEmpty(t, visitor)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	req := httptest.NewRequest(http.MethodGet, "/investigadores/Luis", nil)
	req.AddCookie(cookies[0])
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "/investigadores/Ana%2FRuiz", store.History(visitor).Back())
}
