// Package middleware provides the net/http middleware of the Viewy server.
//
// This package includes:
//   - OpenTelemetry request tracing
//   - Prometheus request and rendering metrics
//
// Both are plain func(http.Handler) http.Handler values and plug into any
// router:
//
//	r := chi.NewRouter()
//	r.Use(middleware.OpenTelemetry(middleware.WithTracerName("docs")))
//	r.Use(middleware.Prometheus(middleware.WithNamespace("docs")))
//
// # OpenTelemetry
//
// Every request gets a server span named after its route pattern. The span
// carries the method, the route, the requested render mode and the response
// status. The request context holds the span, so page compilation started
// from a handler becomes a child span.
//
// The tracer uses the global provider. Configure it in main() before
// starting the server:
//
//	otel.SetTracerProvider(tp)
//
// # Prometheus
//
// The metrics middleware counts requests by route and status class. Page
// handlers and the asset endpoints report through the Record functions:
//   - viewy_http_requests_total
//   - viewy_http_request_duration_seconds
//   - viewy_pages_rendered_total (by render mode)
//   - viewy_page_compile_duration_seconds
//   - viewy_page_size_bytes
//   - viewy_asset_responses_total (by asset and result)
//   - viewy_asset_size_bytes
//   - viewy_live_reload_clients
//
// Expose them with promhttp:
//
//	r.Handle("/metrics", promhttp.Handler())
package middleware
