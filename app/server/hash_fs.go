package server

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
)

// assetHashLen is the number of hex digits of the content hash put in URLs.
const assetHashLen = 12

// HashFS serves static assets. URLs built with FormatWithHash carry a
// content hash, and requests whose hash matches are cached forever.
// Hashes are computed once, so the map is read-only afterwards.
type HashFS struct {
	serv   http.Handler
	hashes map[string]string
}

func hashFile(fsys fs.FS, name string) (string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil))[:assetHashLen], nil
}

func NewHashFS(fsys fs.FS) (*HashFS, error) {
	h := &HashFS{
		serv:   http.FileServer(http.FS(fsys)),
		hashes: map[string]string{},
	}
	err := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		sum, err := hashFile(fsys, name)
		if err != nil {
			return err
		}
		h.hashes[name] = sum
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.Debug("hashed static assets", "count", len(h.hashes))
	return h, nil
}

func (h *HashFS) GetHash(name string) string {
	return h.hashes[name]
}

// FormatWithHash returns name with a ?v= cache buster, or name unchanged
// when there is no such asset.
func (h *HashFS) FormatWithHash(name string) string {
	if sum := h.GetHash(name); sum != "" {
		return name + "?v=" + sum
	}
	return name
}

func (h *HashFS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sum := h.GetHash(r.URL.Path)
	if sum != "" && r.URL.Query().Get("v") == sum {
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	}
	if sum != "" {
		w.Header().Set("ETag", `"`+sum+`"`)
	}
	h.serv.ServeHTTP(w, r)
}
