package config

import (
	"net/http"
	"slices"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader websocket.Upgrader
}

// NewWebSocket accepts same-host connections plus the allowed origins. A
// "*" entry accepts any origin.
func NewWebSocket(allowedOrigins []string) *WebSocket {
	upgrader := websocket.Upgrader{}
	if slices.Contains(allowedOrigins, "*") {
		upgrader.CheckOrigin = func(r *http.Request) bool {
			return true
		}
	} else if len(allowedOrigins) > 0 {
		upgrader.CheckOrigin = func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" ||
				slices.Contains(allowedOrigins, origin) ||
				origin == "http://"+r.Host || origin == "https://"+r.Host
		}
	}
	return &WebSocket{Upgrader: upgrader}
}
