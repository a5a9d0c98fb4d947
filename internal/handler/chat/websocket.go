package chat

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	chatservice "github.com/normalhq/chatbox/server/internal/service/chat"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type wsError struct {
	Error string `json:"error"`
}

// handleWebSocket runs the chat pipeline over a websocket: one inbound
// frame {message, sessionId} yields one outbound reply frame, the same
// payload POST /chat returns. The connection stays open across turns so
// a client keeps its session without re-posting.
func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx := r.Context()
	for {
		var payload chatRequest
		if err := conn.ReadJSON(&payload); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ws] read failed: %v", err)
			}
			return
		}

		reply, err := h.chatSvc.Respond(ctx, payload.SessionID, payload.Message)
		if err != nil {
			msg := "something went wrong while processing your message"
			if errors.Is(err, chatservice.ErrEmptyMessage) {
				msg = "please provide a valid message"
			}
			if err := conn.WriteJSON(wsError{Error: msg}); err != nil {
				log.Printf("[ws] write failed: %v", err)
				return
			}
			continue
		}

		if err := conn.WriteJSON(reply); err != nil {
			log.Printf("[ws] write failed: %v", err)
			return
		}
	}
}
