package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/okian/draftsensei/internal/domain/types"
)

const (
	liveWriteWait      = 10 * time.Second
	livePongWait       = 60 * time.Second
	liveMaxMessageSize = maxBodyBytes
)

var errUnknownMessage = errors.New("unknown message type")

// LiveMessage is one client frame on /draft/live. Type is one of suggest,
// pick, bans or analyze.
type LiveMessage struct {
	Type  string             `json:"type"`
	Draft types.DraftRequest `json:"draft"`
}

// LiveReply answers a LiveMessage. Exactly one of Data and Error is set.
type LiveReply struct {
	Type  string         `json:"type"`
	Data  any            `json:"data,omitempty"`
	Error *errorResponse `json:"error,omitempty"`
}

// LiveHandler keeps a websocket open for a whole draft so a client can ask
// for a fresh recommendation after every pick or ban.
type LiveHandler struct {
	deps     DraftDependencies
	upgrader websocket.Upgrader
}

// NewLiveHandler creates a new live draft handler.
func NewLiveHandler(deps DraftDependencies) *LiveHandler {
	return &LiveHandler{
		deps: deps,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// HandleLive upgrades GET /draft/live and answers frames until the client
// goes away.
func (h *LiveHandler) HandleLive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied.
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(liveMaxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(livePongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(livePongWait))
	})

	ctx := r.Context()
	for {
		var msg LiveMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if !isDecodeError(err) {
				return
			}
			if !h.reply(conn, LiveReply{Type: "error", Error: replyError(WrapKind("api.live", ErrBadRequest, err))}) {
				return
			}
			continue
		}
		_ = conn.SetReadDeadline(time.Now().Add(livePongWait))
		if !h.reply(conn, h.answer(ctx, msg)) {
			return
		}
	}
}

func (h *LiveHandler) answer(ctx context.Context, msg LiveMessage) LiveReply {
	const op = "api.live"
	var (
		data any
		err  error
	)
	switch msg.Type {
	case "suggest":
		data, err = h.deps.Suggest(ctx, msg.Draft)
	case "pick":
		data, err = h.deps.Pick(ctx, msg.Draft)
	case "bans":
		data, err = h.deps.Bans(ctx, msg.Draft)
	case "analyze":
		data, err = h.deps.Analyze(ctx, msg.Draft)
	default:
		err = WrapKind(op, ErrBadRequest, fmt.Errorf("%w %q", errUnknownMessage, msg.Type))
	}
	if err != nil {
		return LiveReply{Type: "error", Error: replyError(Wrap(op, err))}
	}
	return LiveReply{Type: msg.Type, Data: data}
}

func (h *LiveHandler) reply(conn *websocket.Conn, rep LiveReply) bool {
	_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
	return conn.WriteJSON(rep) == nil
}

// isDecodeError reports whether err is a malformed frame rather than a
// closed or broken connection. ReadJSON reports an empty or truncated frame
// as io.ErrUnexpectedEOF; a connection lost mid-frame is a close error.
func isDecodeError(err error) bool {
	var syntax *json.SyntaxError
	var typ *json.UnmarshalTypeError
	return errors.As(err, &syntax) || errors.As(err, &typ) || errors.Is(err, io.ErrUnexpectedEOF)
}

func replyError(err error) *errorResponse {
	status, code := statusOf(err)
	msg := http.StatusText(status)
	if status < http.StatusInternalServerError {
		msg = err.Error()
	}
	return &errorResponse{Code: code, Message: msg}
}
