package config

import (
	"net/http"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader websocket.Upgrader
	// ReadLimit caps a single incoming frame; a frame carries a handful of
	// text commands.
	ReadLimit int64
}

// NewWebSocket accepts connections from the comma separated origins in
// WS_ALLOWED_ORIGINS, or from anywhere when it is unset.
func NewWebSocket() (*WebSocket, error) {
	var allowed []string
	if origins, ok := os.LookupEnv("WS_ALLOWED_ORIGINS"); ok {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				allowed = append(allowed, o)
			}
		}
	}

	upgrader := websocket.Upgrader{
		HandshakeTimeout: 10 * time.Second,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowed) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			return slices.Contains(allowed, origin)
		},
	}

	ws := &WebSocket{
		Upgrader:  upgrader,
		ReadLimit: 64 << 10,
	}

	return ws, nil
}
