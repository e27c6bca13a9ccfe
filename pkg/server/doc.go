// Package server serves Viewy pages and their compiled assets over HTTP.
//
// The server is a chi router with four kinds of routes:
//
//   - /app.css and /app.js, the compiled assets, revalidated by ETag
//   - /app.<hash>.css and /app.<hash>.js, the fingerprinted copies, cached
//     for a year
//   - page routes registered with Page
//   - /metrics, when metrics are enabled
//
// # Pages
//
// A page route builds a *page.Page per request. The x-viewy-render-mode
// request header selects how it is compiled:
//
//	Complete     the document with layout and content (default)
//	ContentOnly  the body of the content, for client-side navigation
//	LayoutOnly   the document with a placeholder instead of the content
//
// Unknown values fall back to Complete. Every page response carries
// Vary: x-viewy-render-mode so caches keep the modes apart.
//
// # Usage
//
//	srv := server.New(assets.Compile(cfg),
//	    server.WithAddr(":3000"),
//	    server.WithMetrics("/metrics"),
//	)
//	srv.Page("/", func(r *http.Request) *page.Page {
//	    return page.WithTitle("Home").WithConfig(cfg).WithContent(home())
//	})
//	if err := srv.ListenAndServe(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
