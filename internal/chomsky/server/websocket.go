package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	cklog "github.com/msto63/chomsky/foundation/core/log"
	"github.com/msto63/chomsky/foundation/utils/stringx"
	"github.com/msto63/chomsky/internal/chomsky/service"
	"github.com/msto63/chomsky/pkg/core/logging"
)

// WebSocket upgrader with permissive settings for local development
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

// WebSocketHandler streams recognition traces over WebSocket connections
type WebSocketHandler struct {
	service *service.Service
	logger  *cklog.Logger
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(svc *service.Service) *WebSocketHandler {
	return &WebSocketHandler{
		service: svc,
		logger:  logging.NewSimpleLogger("chomsky-websocket"),
	}
}

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string          `json:"type"`    // "recognize", "ping"
	Payload json.RawMessage `json:"payload"` // Message-specific payload
}

// WSRecognizePayload represents the recognition request payload
type WSRecognizePayload struct {
	Grammar string `json:"grammar"`
	Input   string `json:"input"`
}

// WSResponse represents a WebSocket response
type WSResponse struct {
	Type    string      `json:"type"`    // "step", "done", "error", "pong"
	Payload interface{} `json:"payload"` // Response-specific payload
}

// WSErrorPayload represents an error payload
type WSErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ServeHTTP handles WebSocket upgrade and connections
func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.ErrorWithErr("websocket upgrade failed", err)
		return
	}
	h.handleConnection(conn)
}

// handleConnection handles a single WebSocket connection
func (h *WebSocketHandler) handleConnection(conn *websocket.Conn) {
	defer conn.Close()

	// Per-connection session token for log correlation
	session, err := stringx.RandomURLSafe(12)
	if err != nil {
		session = conn.RemoteAddr().String()
	}
	log := h.logger.WithField("session", session)

	log.Info("websocket connection established", cklog.Fields{
		"remote": conn.RemoteAddr().String(),
	})

	ctx := context.Background()

	// Set read deadline for ping/pong
	conn.SetReadDeadline(time.Now().Add(120 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(120 * time.Second))
		return nil
	})

	// Read messages in a loop. Recognition runs are bounded by the engine
	// limits, so requests are served synchronously on this goroutine and
	// writes never interleave.
	for {
		var msg WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.ErrorWithErr("websocket read error", err)
			} else {
				log.Info("websocket connection closed")
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(120 * time.Second))

		switch msg.Type {
		case "ping":
			h.sendResponse(conn, WSResponse{Type: "pong", Payload: nil})

		case "recognize":
			var payload WSRecognizePayload
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				h.sendError(conn, "invalid_payload", "Invalid recognize payload")
				continue
			}
			h.handleRecognition(ctx, conn, payload)

		default:
			h.sendError(conn, "unknown_type", "Unknown message type: "+msg.Type)
		}
	}
}

// handleRecognition runs a traced recognition and streams its events
func (h *WebSocketHandler) handleRecognition(ctx context.Context, conn *websocket.Conn, payload WSRecognizePayload) {
	if payload.Grammar == "" {
		h.sendError(conn, "invalid_request", "Grammar name required")
		return
	}

	rec, events, err := h.service.RecognizeWithTrace(ctx, payload.Grammar, payload.Input)
	if err != nil {
		h.sendError(conn, "recognition_error", err.Error())
		return
	}

	for _, ev := range events {
		h.sendResponse(conn, WSResponse{Type: "step", Payload: ev})
	}
	h.sendResponse(conn, WSResponse{Type: "done", Payload: rec})
}

// sendResponse sends a response message via WebSocket
func (h *WebSocketHandler) sendResponse(conn *websocket.Conn, resp WSResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		h.logger.ErrorWithErr("websocket send error", err)
	}
}

// sendError sends an error response via WebSocket
func (h *WebSocketHandler) sendError(conn *websocket.Conn, code, message string) {
	h.sendResponse(conn, WSResponse{
		Type: "error",
		Payload: WSErrorPayload{
			Code:    code,
			Message: message,
		},
	})
}
