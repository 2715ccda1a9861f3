package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestSecurityHeadersMiddleware(t *testing.T) {
	middleware := SecurityHeadersMiddleware()

	// Create a simple handler that does nothing
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	expectedHeaders := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "SAMEORIGIN",
		"X-XSS-Protection":       "1; mode=block",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}

	for header, expected := range expectedHeaders {
		assert.Equal(t, expected, rec.Header().Get(header), "header %s", header)
	}
}

func TestRecoverMiddleware(t *testing.T) {
	t.Run("panic becomes a failure body", func(t *testing.T) {
		handler := RecoverMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("table exploded")
		}))

		req := httptest.NewRequest("GET", "/level/1", nil)
		rec := httptest.NewRecorder()

		assert.NotPanics(t, func() { handler.ServeHTTP(rec, req) })
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":false,"message":"Error: table exploded"}`, rec.Body.String())
	})

	t.Run("per-player route echoes the uid", func(t *testing.T) {
		r := chi.NewRouter()
		r.Use(RecoverMiddleware)
		r.Get("/level/{uid}", func(w http.ResponseWriter, r *http.Request) {
			panic("nil payload")
		})

		req := httptest.NewRequest("GET", "/level/12345", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":false,"message":"Error: nil payload","uid":"12345"}`, rec.Body.String())
	})

	t.Run("no panic passes through", func(t *testing.T) {
		handler := RecoverMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))

		req := httptest.NewRequest("GET", "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("abort handler is re-raised", func(t *testing.T) {
		handler := RecoverMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(http.ErrAbortHandler)
		}))

		req := httptest.NewRequest("GET", "/", nil)
		rec := httptest.NewRecorder()

		assert.PanicsWithValue(t, http.ErrAbortHandler, func() { handler.ServeHTTP(rec, req) })
	})
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	var readErr error
	handler := RequestSizeLimitMiddleware(4)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 16)
		_, readErr = r.Body.Read(buf)
	}))

	req := httptest.NewRequest("POST", "/", strings.NewReader("more than four bytes"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Error(t, readErr)
}
