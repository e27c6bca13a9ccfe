package dev

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/viewy-dev/viewy/internal/logger"
	"github.com/viewy-dev/viewy/pkg/middleware"
	"github.com/viewy-dev/viewy/pkg/widget"
)

// ReloadPath is the WebSocket endpoint of the reload server.
const ReloadPath = "/_viewy/reload"

// ReloadMessageType represents the type of reload message.
type ReloadMessageType string

const (
	ReloadTypeFull  ReloadMessageType = "reload"
	ReloadTypeCSS   ReloadMessageType = "css"
	ReloadTypeError ReloadMessageType = "error"
	ReloadTypeClear ReloadMessageType = "clear"
)

// ReloadMessage is sent to browsers via WebSocket.
type ReloadMessage struct {
	Type  ReloadMessageType `json:"type"`
	Error string            `json:"error,omitempty"`
	File  string            `json:"file,omitempty"`
}

// ReloadServer manages WebSocket connections for hot reload.
type ReloadServer struct {
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	writeMu  sync.Mutex
	upgrader websocket.Upgrader
	log      *logger.Logger
}

// NewReloadServer creates a new reload server.
func NewReloadServer(log *logger.Logger) *ReloadServer {
	if log == nil {
		log = logger.Default()
	}
	return &ReloadServer{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins in dev
			},
		},
		log: log,
	}
}

// ServeHTTP upgrades the request and keeps the connection until the client
// leaves.
func (r *ReloadServer) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		r.log.Debug("reload upgrade failed")
		return
	}

	r.mu.Lock()
	r.clients[conn] = true
	r.mu.Unlock()
	middleware.RecordLiveReloadConnect()

	// Keep connection alive until client disconnects
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	r.remove(conn)
}

func (r *ReloadServer) remove(conn *websocket.Conn) {
	r.mu.Lock()
	_, ok := r.clients[conn]
	delete(r.clients, conn)
	r.mu.Unlock()
	if ok {
		middleware.RecordLiveReloadDisconnect()
	}
	conn.Close()
}

// NotifyReload sends a full page reload message to all clients.
func (r *ReloadServer) NotifyReload() {
	r.broadcast(ReloadMessage{Type: ReloadTypeFull})
}

// NotifyCSS sends a CSS-only reload message to all clients.
func (r *ReloadServer) NotifyCSS(file string) {
	r.broadcast(ReloadMessage{Type: ReloadTypeCSS, File: file})
}

// NotifyError sends an error message to all clients.
func (r *ReloadServer) NotifyError(errMsg string) {
	r.broadcast(ReloadMessage{Type: ReloadTypeError, Error: errMsg})
}

// ClearError clears the error overlay on all clients.
func (r *ReloadServer) ClearError() {
	r.broadcast(ReloadMessage{Type: ReloadTypeClear})
}

// broadcast sends a message to all connected clients.
func (r *ReloadServer) broadcast(msg ReloadMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	r.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(r.clients))
	for client := range r.clients {
		clients = append(clients, client)
	}
	r.mu.RUnlock()

	// gorilla connections support one concurrent writer.
	r.writeMu.Lock()
	defer r.writeMu.Unlock()
	for _, client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			r.remove(client)
		}
	}
}

// ClientCount returns the number of connected clients.
func (r *ReloadServer) ClientCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

// Close closes all client connections.
func (r *ReloadServer) Close() {
	r.mu.Lock()
	clients := r.clients
	r.clients = make(map[*websocket.Conn]bool)
	r.mu.Unlock()

	for client := range clients {
		middleware.RecordLiveReloadDisconnect()
		client.Close()
	}
}

// Registration adds the reload client to app.js. Compile development
// assets with it through AssetOptions.
func Registration() widget.Registration {
	return widget.Registration{Name: "LiveReload", Script: ClientScript}
}

// ClientScript connects to the reload server and applies its messages.
const ClientScript = `(function () {
  "use strict";

  var delay = 1000;
  var maxDelay = 30000;

  function connect() {
    var protocol = location.protocol === "https:" ? "wss:" : "ws:";
    var ws = new WebSocket(protocol + "//" + location.host + "` + ReloadPath + `");

    ws.onopen = function () {
      delay = 1000;
      clearOverlay();
    };

    ws.onmessage = function (e) {
      var msg;
      try {
        msg = JSON.parse(e.data);
      } catch (err) {
        return;
      }
      switch (msg.type) {
        case "reload":
          location.reload();
          break;
        case "css":
          reloadCSS();
          break;
        case "error":
          showOverlay(msg.error);
          break;
        case "clear":
          clearOverlay();
          break;
      }
    };

    ws.onclose = function () {
      setTimeout(function () {
        delay = Math.min(delay * 2, maxDelay);
        connect();
      }, delay);
    };

    ws.onerror = function () {
      ws.close();
    };
  }

  function reloadCSS() {
    document.querySelectorAll('link[rel="stylesheet"]').forEach(function (link) {
      var url = new URL(link.href);
      url.searchParams.set("_reload", Date.now());
      link.href = url.toString();
    });
  }

  function showOverlay(error) {
    clearOverlay();
    var overlay = document.createElement("div");
    overlay.id = "viewy-error-overlay";
    overlay.style.cssText = "position:fixed;inset:0;background:rgba(0,0,0,0.9);color:#fff;font-family:monospace;font-size:14px;padding:20px;overflow:auto;z-index:999999;";
    var pre = document.createElement("pre");
    pre.style.cssText = "white-space:pre-wrap;max-width:800px;margin:0 auto;";
    pre.textContent = error;
    overlay.appendChild(pre);
    document.body.appendChild(overlay);
  }

  function clearOverlay() {
    var overlay = document.getElementById("viewy-error-overlay");
    if (overlay) {
      overlay.remove();
    }
  }

  if (document.readyState === "loading") {
    document.addEventListener("DOMContentLoaded", connect);
  } else {
    connect();
  }
})();
`
