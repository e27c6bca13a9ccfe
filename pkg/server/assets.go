package server

import (
	"net/http"
	"strings"

	"github.com/viewy-dev/viewy/pkg/assets"
	"github.com/viewy-dev/viewy/pkg/middleware"
)

const immutableCacheControl = "public, max-age=31536000, immutable"

// SetAssets replaces the served assets. It is safe to call while serving.
func (s *Server) SetAssets(a assets.Assets) {
	files := make(map[string]assets.File, 4)
	for _, f := range a.Files() {
		files[f.Name] = f
		middleware.RecordAssetSize(f.Name, len(f.Content))
	}
	s.assets.Store(&assetSet{
		assets:   a,
		files:    files,
		resolver: assets.NewResolver(a.Manifest(), "/"),
	})
}

// Assets returns the served assets.
func (s *Server) Assets() assets.Assets {
	return s.assets.Load().assets
}

type assetSet struct {
	assets   assets.Assets
	files    map[string]assets.File
	resolver assets.Resolver
}

func (s *Server) serveAsset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/")
	f, ok := s.assets.Load().files[name]
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("ETag", f.ETag)
	w.Header().Set("Content-Type", f.ContentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")

	switch {
	case s.config.DevMode:
		w.Header().Set("Cache-Control", "no-store")
	case name != assets.StylesheetName && name != assets.ScriptName:
		w.Header().Set("Cache-Control", immutableCacheControl)
	default:
		w.Header().Set("Cache-Control", "public, max-age=0, must-revalidate")
	}

	if etagMatches(r.Header.Get("If-None-Match"), f.ETag) {
		middleware.RecordAssetResponse(name, "not_modified")
		w.WriteHeader(http.StatusNotModified)
		return
	}

	middleware.RecordAssetResponse(name, "full")
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(f.Content))
}

func etagMatches(ifNoneMatchHeader, etag string) bool {
	if ifNoneMatchHeader == "" || etag == "" {
		return false
	}
	// Handle lists: If-None-Match: "abc", W/"def"
	for _, part := range strings.Split(ifNoneMatchHeader, ",") {
		candidate := strings.TrimSpace(part)
		if candidate == etag || candidate == "*" {
			return true
		}
		if strings.HasPrefix(candidate, "W/") && strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
