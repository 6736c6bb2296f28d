package liveserver

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/vk/goalwalker/internal/agent"
	"github.com/vk/goalwalker/internal/ctxlog"
	"github.com/vk/goalwalker/internal/session"
	"github.com/zishang520/socket.io/v2/socket"
)

// Path is where Handler expects to be mounted.
const Path = "/socket.io/"

// EmitFunc sends one event to the requesting client.
type EmitFunc func(event string, payload map[string]any)

// SessionFunc returns the session a new walk should use. It is called once
// per request, so a reloaded map applies from the next request on.
type SessionFunc func() *session.Session

// Static always serves sess.
func Static(sess *session.Session) SessionFunc {
	return func() *session.Session { return sess }
}

// Server answers "walk" events from socket.io clients.
type Server struct {
	ctx      context.Context
	sessions SessionFunc
	io       *socket.Server
	newID    func() string
}

// New creates a server. ctx carries the logger and bounds nothing else;
// connections end when the HTTP server carrying Handler shuts down.
func New(ctx context.Context, sessions SessionFunc) *Server {
	s := &Server{
		ctx:      ctx,
		sessions: sessions,
		io:       socket.NewServer(nil, nil),
		newID:    uuid.NewString,
	}
	s.io.On("connection", func(clients ...any) {
		client, ok := clients[0].(*socket.Socket)
		if !ok {
			return
		}
		s.onConnection(client)
	})
	return s
}

// Handler returns the socket.io endpoint, to be mounted at Path.
func (s *Server) Handler() http.Handler {
	return s.io.ServeHandler(nil)
}

func (s *Server) onConnection(client *socket.Socket) {
	logger := ctxlog.FromContext(s.ctx).With("sid", string(client.Id()))
	logger.Info("Live client connected.")
	ctx := ctxlog.WithLogger(s.ctx, logger)

	client.On(EventWalk, func(args ...any) {
		s.HandleWalk(ctx, args, func(event string, payload map[string]any) {
			if err := client.Emit(event, payload); err != nil {
				logger.Warn("Failed to emit event.", "event", event, "error", err)
			}
		})
	})
	client.On("disconnect", func(reason ...any) {
		logger.Info("Live client disconnected.", "reason", reason)
	})
}

// HandleWalk serves one "walk" event. It emits a "step" per city of the
// path as the agent moves, then either "result" or "walk_error", and
// returns the request id it assigned.
func (s *Server) HandleWalk(ctx context.Context, args []any, emit EmitFunc) string {
	requestID := s.newID()
	logger := ctxlog.FromContext(ctx).With("request_id", requestID)
	ctx = ctxlog.WithLogger(ctx, logger)

	req, err := decodeRequest(args)
	if err != nil {
		logger.Warn("Rejected live walk request.", "error", err)
		emit(EventError, newErrorEvent(requestID, err))
		return requestID
	}
	logger.Debug("Live walk requested.", "start", req.Start, "goal", req.Goal, "strategy", req.Strategy)

	res, err := s.sessions().Walk(ctx, req, agent.WithObserver(func(step agent.Step) {
		emit(EventStep, newStepEvent(requestID, step))
	}))
	if err != nil {
		logger.Warn("Live walk failed.", "error", err)
		emit(EventError, newErrorEvent(requestID, err))
		return requestID
	}

	emit(EventResult, newResultEvent(requestID, res))
	return requestID
}
