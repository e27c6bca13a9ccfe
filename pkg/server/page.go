package server

import (
	"net/http"
	"time"

	"github.com/viewy-dev/viewy/internal/logger"
	"github.com/viewy-dev/viewy/pkg/assets"
	"github.com/viewy-dev/viewy/pkg/middleware"
	"github.com/viewy-dev/viewy/pkg/page"
)

// PageFunc builds the page for a request. Returning nil responds 404.
type PageFunc func(r *http.Request) *page.Page

// PageHandler returns a handler compiling the page built by fn in the mode
// named by the x-viewy-render-mode header.
func PageHandler(fn PageFunc) http.Handler {
	return &pageHandler{build: fn, log: logger.Default()}
}

type pageHandler struct {
	build    PageFunc
	log      *logger.Logger
	resolver func() assets.Resolver
	dev      bool
}

func (h *pageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	p := h.build(r)
	if p == nil {
		http.NotFound(w, r)
		return
	}
	p.WithLogger(h.log)
	if h.resolver != nil {
		p.WithAssets(h.resolver())
	}

	mode := page.ParseRenderMode(r.Header.Get(page.RenderModeHeader))
	start := time.Now()
	html := p.CompileContext(r.Context(), mode)
	middleware.RecordPageRender(mode.String(), len(html), time.Since(start))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Add("Vary", page.RenderModeHeader)
	if h.dev {
		w.Header().Set("Cache-Control", "no-store")
	} else {
		w.Header().Set("Cache-Control", "max-age=3600, private")
	}

	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write([]byte(html))
}
