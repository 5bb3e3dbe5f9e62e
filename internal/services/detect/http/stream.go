package http

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	perr "wordlang/internal/platform/errors"
	"wordlang/internal/platform/logger"
	pnet "wordlang/internal/platform/net"
	"wordlang/internal/services/detect/domain"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	writeWait  = 10 * time.Second
)

// streamRequest is one client message on /detect/stream
type streamRequest struct {
	ID string `json:"id,omitempty"`
	// Op is "detect" (default) or "words"
	Op string `json:"op,omitempty"`
	domain.DetectInput
}

// streamReply is one server message
type streamReply struct {
	Type    string `json:"type"` // result, words, error
	ID      string `json:"id,omitempty"`
	Payload any    `json:"payload,omitempty"`
}

func (h *handlers) upgrader() *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *stdhttp.Request) bool {
			origin := r.Header.Get("Origin")
			if len(h.opt.Origins) == 0 || origin == "" {
				return true
			}
			return slices.ContainsFunc(h.opt.Origins, func(o string) bool {
				return o == "*" || strings.EqualFold(o, origin)
			})
		},
	}
}

// swagger:route GET /detect/stream Detect detectStream
// @Summary Detect over a websocket, one JSON message per text
// @Tags Detect
// @Success 101 "switching protocols"
// @Router /detect/stream [get]
func (h *handlers) stream(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	conn, err := h.upgrader().Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied
		logger.C(r.Context()).Warn().Err(err).Msg("stream upgrade failed")
		return
	}
	defer func() { _ = conn.Close() }()

	streamConnections.Inc()
	defer streamConnections.Dec()

	sid := uuid.NewString()
	// the upgrade outlives the request timeout middleware
	ctx := pnet.WithRequest(context.WithoutCancel(r.Context()), "", sid)
	ctx = logger.WithRequest(ctx, pnet.RequestID(ctx), sid)
	log := logger.C(ctx)
	log.Info().Str("remote_addr", r.RemoteAddr).Msg("stream opened")

	s := &session{conn: conn, svc: h.svc, maxBytes: h.opt.MaxBytes, done: make(chan struct{})}
	s.serve(ctx)
	log.Info().Msg("stream closed")
}

// session is one websocket connection. Writes are serialized on mu
type session struct {
	conn     *websocket.Conn
	svc      domain.DetectorPort
	maxBytes int64 // per message, larger ones close the stream with 1009
	mu       sync.Mutex
	done     chan struct{}
}

func (s *session) serve(ctx context.Context) {
	if s.maxBytes > 0 {
		s.conn.SetReadLimit(s.maxBytes)
	}
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	go s.ping()
	defer close(s.done)

	for {
		mt, data, err := s.conn.ReadMessage()
		if err != nil {
			if errors.Is(err, websocket.ErrReadLimit) {
				logger.C(ctx).Warn().Int64("max_bytes", s.maxBytes).Msg("stream message too large")
				return
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.C(ctx).Warn().Err(err).Msg("stream read failed")
			}
			return
		}
		streamMessagesTotal.WithLabelValues("received").Inc()
		if mt != websocket.TextMessage {
			s.fail("", perr.InvalidArgf("only text messages are accepted"))
			continue
		}
		s.handle(ctx, data)
	}
}

func (s *session) ping() {
	t := time.NewTicker(pingPeriod)
	defer t.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-t.C:
			s.mu.Lock()
			err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			s.mu.Unlock()
			if err != nil {
				return
			}
		}
	}
}

func (s *session) handle(ctx context.Context, data []byte) {
	var req streamRequest
	if err := json.Unmarshal(data, &req); err != nil {
		s.fail("", perr.JSONErrf("invalid JSON: %v", err))
		return
	}

	switch req.Op {
	case "", "detect":
		res, err := s.svc.Detect(ctx, req.DetectInput)
		if err != nil {
			s.fail(req.ID, err)
			return
		}
		s.send(streamReply{Type: "result", ID: req.ID, Payload: res})
	case "words":
		ws, err := s.svc.Words(ctx, req.DetectInput)
		if err != nil {
			s.fail(req.ID, err)
			return
		}
		s.send(streamReply{Type: "words", ID: req.ID, Payload: ws})
	default:
		s.fail(req.ID, perr.WithField(perr.InvalidArgf("unknown op %q", req.Op), "op"))
	}
}

func (s *session) fail(id string, err error) {
	s.send(streamReply{Type: "error", ID: id, Payload: perr.WireFrom(err)})
}

func (s *session) send(m streamReply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := s.conn.WriteJSON(m); err != nil {
		return
	}
	streamMessagesTotal.WithLabelValues("sent").Inc()
}
