package chat

import (
	"encoding/json"
	"fmt"

	"github.com/nidhogg/jobscout/internal/recommend"
)

// Inbound frame types accepted from clients.
const (
	TypeUserMessage = "user_message"
	TypeReset       = "reset"
)

// Outbound frame types.
const (
	TypeResponse = "response"
	TypeError    = "error"
)

// Inbound is a decoded client frame: either a user message or a reset
// command.
type Inbound struct {
	Type    string
	Content string
}

// DecodeInbound parses a raw client frame into its tagged variant.
// Unknown types, malformed JSON, and user messages without a content
// field are all protocol errors.
func DecodeInbound(payload []byte) (*Inbound, error) {
	var raw struct {
		Type    string  `json:"type"`
		Content *string `json:"content"`
	}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("parse frame: %w", err)
	}

	switch raw.Type {
	case TypeUserMessage:
		if raw.Content == nil {
			return nil, fmt.Errorf("user_message frame without content")
		}
		return &Inbound{Type: TypeUserMessage, Content: *raw.Content}, nil
	case TypeReset:
		return &Inbound{Type: TypeReset}, nil
	default:
		return nil, fmt.Errorf("unknown frame type %q", raw.Type)
	}
}

// Frame is an outbound protocol message: either a *Response or an *ErrorFrame.
type Frame interface {
	frameType() string
}

// Response carries a chat reply with ranked recommendations and the
// session's accumulated skills. Recommendations and Skills are always
// present on the wire, empty rather than null.
type Response struct {
	Type            string                     `json:"type"`
	Message         string                     `json:"message"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
	Skills          []string                   `json:"skills"`
}

func (*Response) frameType() string { return TypeResponse }

// ErrorFrame reports a protocol error back to the client.
type ErrorFrame struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (*ErrorFrame) frameType() string { return TypeError }

// NewResponse builds a response frame, normalizing nil slices so the
// encoded JSON carries [] instead of null.
func NewResponse(message string, recs []recommend.Recommendation, skills []string) *Response {
	if recs == nil {
		recs = []recommend.Recommendation{}
	}
	if skills == nil {
		skills = []string{}
	}
	return &Response{
		Type:            TypeResponse,
		Message:         message,
		Recommendations: recs,
		Skills:          skills,
	}
}

// NewErrorFrame builds an error frame.
func NewErrorFrame(message string) *ErrorFrame {
	return &ErrorFrame{Type: TypeError, Message: message}
}
