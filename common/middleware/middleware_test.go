package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"school-activities/common/ctxdata"
	"school-activities/common/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddlewareGeneratesID(t *testing.T) {
	var gotCtxID string
	handler := NewRequestIDMiddleware().Handle(func(w http.ResponseWriter, r *http.Request) {
		gotCtxID = ctxdata.GetRequestIDFromCtx(r.Context())
	})

	rr := httptest.NewRecorder()
	handler(rr, httptest.NewRequest(http.MethodGet, "/activities", nil))

	headerID := rr.Header().Get("X-Request-ID")
	require.NotEmpty(t, headerID)
	assert.Equal(t, headerID, gotCtxID)
}

func TestRequestIDMiddlewarePassthrough(t *testing.T) {
	handler := NewRequestIDMiddleware().Handle(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/activities", nil)
	req.Header.Set("X-Request-ID", "upstream-id")
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, "upstream-id", rr.Header().Get("X-Request-ID"))
}

func TestCorsMiddlewarePreflight(t *testing.T) {
	m := NewCorsMiddleware([]string{"*"}, []string{"GET", "POST"}, []string{"Content-Type"})
	handler := m.Handle(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight should not reach handler")
	})

	req := httptest.NewRequest(http.MethodOptions, "/activities", nil)
	req.Header.Set("Origin", "http://example.com")
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "http://example.com", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimitMiddlewareRejectsBurst(t *testing.T) {
	// 单IP突发容量 2：第三个连续请求被限流
	m := NewRateLimitMiddleware(1000, 1000, 0.001, 2)
	handler := m.Handle(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	newReq := func() *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/signup", nil)
		req.Header.Set("X-Real-IP", "10.0.0.1")
		return req
	}

	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		handler(rr, newReq())
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr := httptest.NewRecorder()
	handler(rr, newReq())
	require.Equal(t, http.StatusTooManyRequests, rr.Code)

	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Detail)
}
