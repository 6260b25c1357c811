package chat

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/nidhogg/jobscout/internal/catalog"
	"go.uber.org/zap"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	return NewRegistry(catalog.Builtin(), nil, zap.NewNop())
}

func TestConnectSendsWelcome(t *testing.T) {
	r := newTestRegistry(t)
	resp := r.Connect("c1")

	if resp.Type != TypeResponse || resp.Message != WelcomeText {
		t.Fatalf("welcome = %+v", resp)
	}
	if len(resp.Recommendations) != 0 || len(resp.Skills) != 0 {
		t.Fatal("welcome must carry empty recommendations and skills")
	}
	if r.Count() != 1 {
		t.Fatalf("session count = %d, want 1", r.Count())
	}
}

func TestHandleUserMessage(t *testing.T) {
	r := newTestRegistry(t)
	r.Connect("c1")

	frame := r.Handle("c1", []byte(`{"type":"user_message","content":"I know python and sql"}`))
	resp, ok := frame.(*Response)
	if !ok {
		t.Fatalf("got %T, want *Response", frame)
	}
	if len(resp.Recommendations) == 0 {
		t.Fatal("expected recommendations")
	}
}

func TestHandleReset(t *testing.T) {
	r := newTestRegistry(t)
	r.Connect("c1")
	r.Handle("c1", []byte(`{"type":"user_message","content":"I know python"}`))

	frame := r.Handle("c1", []byte(`{"type":"reset"}`))
	resp, ok := frame.(*Response)
	if !ok {
		t.Fatalf("got %T, want *Response", frame)
	}
	if len(resp.Skills) != 0 {
		t.Fatalf("reset reply skills = %v, want empty", resp.Skills)
	}
}

func TestHandleMalformedFrames(t *testing.T) {
	r := newTestRegistry(t)
	r.Connect("c1")
	r.Handle("c1", []byte(`{"type":"user_message","content":"I know python"}`))

	cases := []struct {
		name    string
		payload string
	}{
		{"not json", `{{{`},
		{"missing type", `{"content":"hello"}`},
		{"unknown type", `{"type":"subscribe"}`},
		{"user_message without content", `{"type":"user_message"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			frame := r.Handle("c1", []byte(tc.payload))
			if _, ok := frame.(*ErrorFrame); !ok {
				t.Fatalf("got %T, want *ErrorFrame", frame)
			}
		})
	}

	// The session survives untouched and keeps working.
	frame := r.Handle("c1", []byte(`{"type":"user_message","content":"also sql"}`))
	resp, ok := frame.(*Response)
	if !ok {
		t.Fatalf("got %T, want *Response", frame)
	}
	if len(resp.Skills) != 2 {
		t.Fatalf("skills = %v, want python and sql intact", resp.Skills)
	}
}

func TestHandleUnknownConnection(t *testing.T) {
	r := newTestRegistry(t)
	if frame := r.Handle("ghost", []byte(`{"type":"reset"}`)); frame != nil {
		t.Fatalf("got %v, want nil for unknown connection", frame)
	}
}

func TestDisconnectDiscardsSession(t *testing.T) {
	r := newTestRegistry(t)
	r.Connect("c1")
	r.Handle("c1", []byte(`{"type":"user_message","content":"I know python"}`))

	r.Disconnect("c1")
	if r.Count() != 0 {
		t.Fatalf("session count = %d, want 0", r.Count())
	}

	// A fresh connection under the same id starts from scratch.
	r.Connect("c1")
	frame := r.Handle("c1", []byte(`{"type":"user_message","content":"just sql"}`))
	resp := frame.(*Response)
	if len(resp.Skills) != 1 || resp.Skills[0] != "sql" {
		t.Fatalf("skills = %v, want only sql", resp.Skills)
	}
}

func TestHandleTextLazySession(t *testing.T) {
	r := newTestRegistry(t)

	resp := r.HandleText("discord:chan:user", "I know python and sql")
	if len(resp.Recommendations) == 0 {
		t.Fatal("expected recommendations")
	}
	if r.Count() != 1 {
		t.Fatalf("session count = %d, want 1", r.Count())
	}

	reset := r.Reset("discord:chan:user")
	if len(reset.Skills) != 0 {
		t.Fatalf("reset skills = %v, want empty", reset.Skills)
	}
}

// Sessions of different connections are independent and may be driven
// concurrently.
func TestConcurrentConnections(t *testing.T) {
	r := newTestRegistry(t)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("conn-%d", n)
			r.Connect(id)
			for j := 0; j < 10; j++ {
				r.Handle(id, []byte(`{"type":"user_message","content":"python and sql"}`))
			}
			if got := len(r.lookup(id).Skills()); got != 2 {
				t.Errorf("conn %d skills = %d, want 2", n, got)
			}
			r.Disconnect(id)
		}(i)
	}
	wg.Wait()

	if r.Count() != 0 {
		t.Fatalf("session count = %d, want 0", r.Count())
	}
}

func TestResponseWireShape(t *testing.T) {
	r := newTestRegistry(t)
	welcome := r.Connect("c1")

	data, err := json.Marshal(welcome)
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	// Empty collections encode as [], never null.
	if string(raw["recommendations"]) != "[]" || string(raw["skills"]) != "[]" {
		t.Fatalf("wire frame = %s", data)
	}
}
