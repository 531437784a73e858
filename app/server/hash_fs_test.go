package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashFS(t *testing.T) {
	fsys := fstest.MapFS{
		"style.css":    {Data: []byte("body { color: black; }")},
		"img/logo.svg": {Data: []byte("<svg/>")},
	}
	h, err := NewHashFS(fsys)
	require.NoError(t, err)

	sum := h.GetHash("style.css")
	assert.Len(t, sum, assetHashLen)
	assert.Equal(t, "style.css?v="+sum, h.FormatWithHash("style.css"))
	assert.NotEmpty(t, h.GetHash("img/logo.svg"))
	assert.Equal(t, "missing.css", h.FormatWithHash("missing.css"))

	tests := []struct {
		name      string
		target    string
		status    int
		immutable bool
	}{
		{"hashed", "/static/style.css?v=" + sum, http.StatusOK, true},
		{"stale hash", "/static/style.css?v=000000000000", http.StatusOK, false},
		{"no hash", "/static/style.css", http.StatusOK, false},
		{"missing", "/static/missing.css", http.StatusNotFound, false},
	}
	handler := http.StripPrefix("/static/", h)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, tt.status, rec.Code)
			if tt.immutable {
				assert.Contains(t, rec.Header().Get("Cache-Control"), "immutable")
			} else {
				assert.Empty(t, rec.Header().Get("Cache-Control"))
			}
		})
	}
}
