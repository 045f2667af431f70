// Package track receives hand-landmark detections from an external
// tracker process over a WebSocket bridge. The tracker (typically a
// browser page running a hand-landmark model against the webcam) pushes
// one JSON frame per detection; the newest fresh frame is the game's
// pointer signal.
package track

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Frame is one detection pushed by the tracker. Coordinates are
// normalized to [0,1] per axis in the camera image; Seen is false when no
// hand is visible in the frame.
type Frame struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Seen bool    `json:"seen"`
}

// Server accepts tracker connections and holds the latest frame. It
// implements the game's pointer source: Sample never repeats a frame older
// than the staleness window, so a dropped tracker reads as signal loss
// rather than a frozen pointer.
type Server struct {
	staleAfter time.Duration
	log        zerolog.Logger
	upgrader   websocket.Upgrader
	httpSrv    *http.Server

	mu    sync.Mutex
	frame Frame
	at    time.Time
	conns map[*websocket.Conn]struct{}
}

// NewServer creates a bridge server. staleAfter bounds how long a frame
// keeps counting as a live detection.
func NewServer(staleAfter time.Duration, log zerolog.Logger) *Server {
	return &Server{
		staleAfter: staleAfter,
		log:        log,
		upgrader: websocket.Upgrader{
			// The tracker page is served from another origin.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		conns: make(map[*websocket.Conn]struct{}),
	}
}

// Start binds addr and serves in the background. Bind errors surface
// synchronously.
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to bind tracker bridge: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	s.httpSrv = &http.Server{Handler: mux}

	go func() {
		if err := s.httpSrv.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.log.Error().Err(err).Msg("tracker bridge server stopped")
		}
	}()

	s.log.Info().Str("addr", ln.Addr().String()).Msg("tracker bridge listening")
	return nil
}

// Shutdown closes connected trackers and the listener. The HTTP shutdown
// alone would leave the hijacked WebSocket connections open, parking
// their reader goroutines forever.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	for conn := range s.conns {
		conn.Close()
	}
	s.mu.Unlock()

	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("tracker upgrade failed")
		return
	}
	defer conn.Close()

	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.mu.Unlock()
	s.log.Info().Str("remote", r.RemoteAddr).Msg("tracker connected")

	defer func() {
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
		s.log.Info().Str("remote", r.RemoteAddr).Msg("tracker disconnected")
	}()

	for {
		var f Frame
		if err := conn.ReadJSON(&f); err != nil {
			return
		}
		f.X = clamp01(f.X)
		f.Y = clamp01(f.Y)

		s.mu.Lock()
		s.frame = f
		s.at = time.Now()
		s.mu.Unlock()
	}
}

// Sample returns the newest normalized detection, or ok=false when the
// latest frame saw no hand or has gone stale.
func (s *Server) Sample() (float64, float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.frame.Seen || s.at.IsZero() || time.Since(s.at) > s.staleAfter {
		return 0, 0, false
	}
	return s.frame.X, s.frame.Y, true
}

// Ready reports whether a tracker is connected.
func (s *Server) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns) > 0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
