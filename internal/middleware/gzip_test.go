package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithGzipResponse(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		contentType    string
		status         int
		expectGzip     bool
	}{
		{"gzip accepted, json", "gzip", "application/json", http.StatusOK, true},
		{"gzip accepted, text/plain", "gzip", "text/plain; charset=utf-8", http.StatusOK, false},
		{"gzip accepted, redirect", "gzip", "", http.StatusTemporaryRedirect, false},
		{"no gzip accepted", "", "application/json", http.StatusOK, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.contentType != "" {
					w.Header().Set("Content-Type", tt.contentType)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"version":"v1"}`))
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Accept-Encoding", tt.acceptEncoding)

			rec := httptest.NewRecorder()
			WithGzipResponse(handler).ServeHTTP(rec, req)
			resp := rec.Result()
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)

			if !tt.expectGzip {
				assert.Empty(t, resp.Header.Get("Content-Encoding"))
				body, _ := io.ReadAll(resp.Body)
				assert.Equal(t, `{"version":"v1"}`, string(body))
				return
			}

			assert.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))
			gr, err := gzip.NewReader(resp.Body)
			require.NoError(t, err)
			defer gr.Close()
			unzipped, err := io.ReadAll(gr)
			require.NoError(t, err)
			assert.Equal(t, `{"version":"v1"}`, string(unzipped))
		})
	}
}

func TestWithGzipRequest(t *testing.T) {
	t.Run("valid gzip request", func(t *testing.T) {
		var bodyBuf bytes.Buffer
		gzw := gzip.NewWriter(&bodyBuf)
		_, _ = gzw.Write([]byte(`{"url":"https://example.com"}`))
		gzw.Close()

		req := httptest.NewRequest(http.MethodPost, "/", &bodyBuf)
		req.Header.Set("Content-Encoding", "gzip")

		rec := httptest.NewRecorder()
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			assert.Equal(t, `{"url":"https://example.com"}`, string(b))
			w.WriteHeader(http.StatusOK)
		})

		WithGzipRequest(handler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid gzip request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip data"))
		req.Header.Set("Content-Encoding", "gzip")

		rec := httptest.NewRecorder()
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be called on invalid gzip")
		})

		WithGzipRequest(handler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"detail":"Failed to decompress request body"}`, rec.Body.String())
	})
}
