package gateway

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/nidhogg/jobscout/internal/catalog"
	"github.com/nidhogg/jobscout/internal/chat"
	"go.uber.org/zap"
)

type wireFrame struct {
	Type            string `json:"type"`
	Message         string `json:"message"`
	Recommendations []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		MatchScore  int    `json:"matchScore"`
	} `json:"recommendations"`
	Skills []string `json:"skills"`
}

func dialTestServer(t *testing.T) (*chat.Registry, *websocket.Conn) {
	t.Helper()

	registry := chat.NewRegistry(catalog.Builtin(), nil, zap.NewNop())
	adapter := NewWebSocketAdapter(registry, nil, zap.NewNop())

	ts := httptest.NewServer(adapter.Handler())
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })

	return registry, conn
}

func readFrame(t *testing.T, conn *websocket.Conn) *wireFrame {
	t.Helper()
	var f wireFrame
	if err := conn.ReadJSON(&f); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	return &f
}

func TestWebSocketWelcome(t *testing.T) {
	registry, conn := dialTestServer(t)

	welcome := readFrame(t, conn)
	if welcome.Type != "response" || welcome.Message != chat.WelcomeText {
		t.Fatalf("welcome = %+v", welcome)
	}
	if welcome.Recommendations == nil || welcome.Skills == nil {
		t.Fatal("welcome must carry empty arrays, not null")
	}
	if registry.Count() != 1 {
		t.Fatalf("session count = %d, want 1", registry.Count())
	}
}

func TestWebSocketConversation(t *testing.T) {
	_, conn := dialTestServer(t)
	readFrame(t, conn) // welcome

	err := conn.WriteJSON(map[string]string{
		"type": "user_message", "content": "I know python and sql",
	})
	if err != nil {
		t.Fatal(err)
	}

	resp := readFrame(t, conn)
	if resp.Type != "response" || len(resp.Recommendations) == 0 {
		t.Fatalf("reply = %+v", resp)
	}

	if err := conn.WriteJSON(map[string]string{"type": "reset"}); err != nil {
		t.Fatal(err)
	}
	reset := readFrame(t, conn)
	if len(reset.Skills) != 0 || len(reset.Recommendations) != 0 {
		t.Fatalf("reset reply = %+v", reset)
	}
}

func TestWebSocketProtocolError(t *testing.T) {
	_, conn := dialTestServer(t)
	readFrame(t, conn) // welcome

	if err := conn.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatal(err)
	}
	errFrame := readFrame(t, conn)
	if errFrame.Type != "error" {
		t.Fatalf("got %+v, want error frame", errFrame)
	}

	// The connection stays usable after a protocol error.
	err := conn.WriteJSON(map[string]string{
		"type": "user_message", "content": "I know python",
	})
	if err != nil {
		t.Fatal(err)
	}
	resp := readFrame(t, conn)
	if resp.Type != "response" {
		t.Fatalf("got %+v, want response after error", resp)
	}
}

func TestWebSocketDisconnectRemovesSession(t *testing.T) {
	registry, conn := dialTestServer(t)
	readFrame(t, conn) // welcome

	conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.Close()

	// The server-side read loop unwinds asynchronously.
	for i := 0; i < 100; i++ {
		if registry.Count() == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("session count = %d, want 0", registry.Count())
}
