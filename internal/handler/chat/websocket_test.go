package chat

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	chatmodel "github.com/normalhq/chatbox/server/internal/model/chat"
)

func dialWebSocket(t *testing.T) *websocket.Conn {
	t.Helper()
	server := httptest.NewServer(setupRouter())
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/chat/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial websocket: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestWebSocketChatRoundTrip(t *testing.T) {
	conn := dialWebSocket(t)

	if err := conn.WriteJSON(map[string]string{"message": "I feel a bit overwhelmed", "sessionId": "ws-1"}); err != nil {
		t.Fatalf("write frame: %v", err)
	}

	var reply chatmodel.Reply
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	if reply.Mode != chatmodel.ModeTemplate {
		t.Fatalf("expected template mode, got %s", reply.Mode)
	}
	if reply.SessionID != "ws-1" {
		t.Fatalf("unexpected session id: %q", reply.SessionID)
	}
}

func TestWebSocketEmptyMessageYieldsErrorFrame(t *testing.T) {
	conn := dialWebSocket(t)

	if err := conn.WriteJSON(map[string]string{"message": ""}); err != nil {
		t.Fatalf("write frame: %v", err)
	}

	var errFrame wsError
	if err := conn.ReadJSON(&errFrame); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	if errFrame.Error == "" {
		t.Fatal("expected error frame for empty message")
	}

	// Connection survives the error and keeps serving turns.
	if err := conn.WriteJSON(map[string]string{"message": "still here"}); err != nil {
		t.Fatalf("write second frame: %v", err)
	}
	var reply chatmodel.Reply
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatalf("read second frame: %v", err)
	}
	if reply.Response == "" {
		t.Fatal("expected a reply after recovering from error frame")
	}
}
