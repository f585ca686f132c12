// Package bridge exposes an agent's tools to the hosted conversational
// runtime over a WebSocket. The runtime owns speech and turn-taking; this
// side only answers tool calls, one at a time per session.
package bridge

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Bytebandit-011/Day-two-onwards-murf/pkg/agent"
)

// Server serves one bridge session per WebSocket connection. The agent
// state behind the dispatcher is single-session, so only one connection
// is allowed at a time; further connects are refused until it closes.
type Server struct {
	dispatcher *agent.Dispatcher
	metrics    *agent.Metrics
	logger     *slog.Logger

	busy         atomic.Bool
	upgrader     websocket.Upgrader
	readTimeout  time.Duration
	writeTimeout time.Duration
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithLogger sets the server's logger.
func WithLogger(l *slog.Logger) ServerOption {
	return func(s *Server) { s.logger = l }
}

// WithMetrics enables session metrics.
func WithMetrics(m *agent.Metrics) ServerOption {
	return func(s *Server) { s.metrics = m }
}

// WithTimeouts sets per-frame read and write deadlines.
func WithTimeouts(read, write time.Duration) ServerOption {
	return func(s *Server) {
		s.readTimeout = read
		s.writeTimeout = write
	}
}

// NewServer creates a bridge server for the given dispatcher.
func NewServer(d *agent.Dispatcher, opts ...ServerOption) *Server {
	s := &Server{
		dispatcher: d,
		logger:     slog.Default(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
		readTimeout:  5 * time.Minute,
		writeTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ServeHTTP upgrades the connection and runs the session loop until the
// runtime hangs up.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !s.busy.CompareAndSwap(false, true) {
		s.logger.Warn("session refused, another is active", "remote", r.RemoteAddr)
		http.Error(w, "another session is active", http.StatusConflict)
		return
	}
	defer s.busy.Store(false)

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	a := s.dispatcher.Agent()
	s.logger.Info("session opened", "agent", a.Name, "remote", r.RemoteAddr)
	if s.metrics != nil {
		s.metrics.RecordSessionStart()
	}
	status := "ok"
	defer func() {
		if s.metrics != nil {
			s.metrics.RecordSessionEnd(status)
		}
		s.logger.Info("session closed", "agent", a.Name, "remote", r.RemoteAddr)
	}()

	ready := ReadyMessage{
		Type:         TypeReady,
		Agent:        a.Name,
		Instructions: a.Instructions,
		Tools:        a.Tools.Tools(),
	}
	if err := s.writeJSON(conn, ready); err != nil {
		s.logger.Warn("ready not sent", "error", err)
		status = "error"
		return
	}

	for {
		if s.readTimeout > 0 {
			_ = conn.SetReadDeadline(time.Now().Add(s.readTimeout))
		}
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("read failed", "error", err)
				status = "error"
			}
			return
		}

		if msgType, terr := MessageType(raw); terr == nil && msgType == TypeHello {
			var hello HelloMessage
			_ = json.Unmarshal(raw, &hello)
			s.logger.Info("client hello", "agent", a.Name, "client", hello.Client, "version", hello.Version)
			continue
		}

		call, err := DecodeToolCall(raw)
		if err != nil {
			s.logger.Warn("bad frame", "error", err)
			if werr := s.writeJSON(conn, ErrorMessage{
				Type: TypeError,
				Err:  agent.NewInvalidInputError("tool_call", err),
			}); werr != nil {
				status = "error"
				return
			}
			continue
		}

		result := s.dispatcher.Dispatch(r.Context(), call.Name, call.Input)

		var reply any
		if result.Err != nil {
			reply = ErrorMessage{
				Type:   TypeError,
				ID:     call.ID,
				Spoken: result.Err.Spoken(),
				Err:    result.Err,
			}
		} else {
			reply = ToolResultMessage{
				Type:   TypeToolResult,
				ID:     call.ID,
				Output: result.Output,
			}
		}
		if err := s.writeJSON(conn, reply); err != nil {
			s.logger.Warn("write failed", "error", err)
			status = "error"
			return
		}
	}
}

func (s *Server) writeJSON(conn *websocket.Conn, v any) error {
	if s.writeTimeout > 0 {
		_ = conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
	}
	return conn.WriteJSON(v)
}
