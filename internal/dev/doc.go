// Package dev provides live reload for the development server.
//
// This package implements:
//   - Polling file watching for configuration and icon pack changes
//   - Asset recompilation when the configuration changes
//   - Icon pack regeneration when an SVG changes
//   - WebSocket-based browser refresh and error overlay
//
// # Architecture
//
//   - Watcher: Polls the watched paths for changes
//   - ReloadServer: Notifies browsers of changes via WebSocket
//   - Server: Reacts to changes and swaps the assets of a server.Server
//
// # Usage
//
//	srv := server.New(assets.Compile(cfg, dev.AssetOptions()...), server.WithDevMode(true))
//	d := dev.NewServer(dev.Options{Root: root, Config: cfg, Server: srv})
//	go d.Start(ctx)
//
// # Hot Reload Protocol
//
// The browser connects to /_viewy/reload via WebSocket. The client script
// is compiled into app.js. Messages are JSON-encoded:
//
//	{"type": "reload"}                // Triggers full page reload
//	{"type": "css"}                   // Reloads stylesheets only
//	{"type": "error", "error": "..."} // Shows error overlay
//	{"type": "clear"}                 // Clears error overlay
package dev
