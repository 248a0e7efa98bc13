package chat

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/reqlens/srsbot/internal/session"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsRequest is the incoming websocket frame format.
type wsRequest struct {
	SessionID string `json:"session_id"` // empty for new sessions
	Content   string `json:"content"`
}

// wsResponse is the outgoing websocket frame format.
type wsResponse struct {
	Type                  string            `json:"type"` // "response" or "error"
	SessionID             string            `json:"session_id,omitempty"`
	BotMessages           []session.Message `json:"bot_messages,omitempty"`
	AwaitingClarification bool              `json:"awaiting_clarification,omitempty"`
	Timestamp             time.Time         `json:"timestamp"`
	Error                 string            `json:"error,omitempty"`
}

// handleWebSocket speaks the same conversation engine over a websocket, one
// turn per frame.
func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	for {
		var req wsRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn("websocket read failed", zap.Error(err))
			}
			return
		}

		if req.Content == "" {
			h.sendWS(conn, wsResponse{
				Type:      "error",
				SessionID: req.SessionID,
				Error:     "content is required",
				Timestamp: time.Now().UTC(),
			})
			continue
		}

		result := h.engine.HandleTurn(req.SessionID, req.Content)
		h.sendWS(conn, wsResponse{
			Type:                  "response",
			SessionID:             result.SessionID,
			BotMessages:           result.Messages,
			AwaitingClarification: result.Awaiting,
			Timestamp:             time.Now().UTC(),
		})
	}
}

func (h *Handler) sendWS(conn *websocket.Conn, resp wsResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		h.log.Warn("websocket write failed", zap.Error(err))
	}
}
