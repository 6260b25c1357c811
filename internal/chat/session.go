package chat

import (
	"strings"
	"sync"

	"github.com/nidhogg/jobscout/internal/catalog"
	"github.com/nidhogg/jobscout/internal/extract"
	"github.com/nidhogg/jobscout/internal/recommend"
)

// Canned reply texts, kept word-for-word stable for clients.
const (
	WelcomeText = "Hello! I'm your job recommendation assistant. " +
		"Tell me about your skills, programming languages, or tools you're familiar with, " +
		"and I'll suggest relevant job opportunities for you."

	needMoreText = "I don't have enough information about your skills yet. " +
		"Could you tell me more about your technical background, programming languages, " +
		"or tools you're familiar with?"

	resetText = "Conversation reset! Tell me about your skills again."

	// ProtocolErrorText is sent when an inbound frame cannot be handled.
	ProtocolErrorText = "Sorry, I encountered an error processing your message. Please try again."
)

// Session holds one connection's conversational state: the skills the
// user has mentioned so far. Skills only accumulate; nothing short of a
// reset removes one. A session is touched by a single connection's
// ordered message stream, but text transports may deliver from multiple
// goroutines, so mutation is locked.
type Session struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	engine  *recommend.Engine
	skills  map[string]struct{}
	order   []string // insertion order, for stable replies
}

// NewSession creates a fresh session with no recorded skills.
func NewSession(c *catalog.Catalog, e *recommend.Engine) *Session {
	return &Session{
		catalog: c,
		engine:  e,
		skills:  make(map[string]struct{}),
	}
}

// Ingest runs one conversation turn: extract skills from text, fold them
// into the session, rank roles, and build the reply.
func (s *Session) Ingest(text string) *Response {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, skill := range extract.Skills(text, s.catalog) {
		s.add(skill)
	}

	recs := s.engine.Rank(s.skills)
	if len(recs) == 0 {
		return NewResponse(needMoreText, nil, s.skillList())
	}

	titles := make([]string, len(recs))
	for i, r := range recs {
		titles[i] = r.Title
	}
	message := "Based on your skills, you might be interested in: " + strings.Join(titles, ", ")

	return NewResponse(message, recs, s.skillList())
}

// Reset clears all recorded skills and confirms with a fixed reply.
func (s *Session) Reset() *Response {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.skills = make(map[string]struct{})
	s.order = nil
	return NewResponse(resetText, nil, nil)
}

// Skills returns the recorded skills in the order they were first seen.
func (s *Session) Skills() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.skillList()
}

func (s *Session) add(skill string) {
	normalized := strings.ToLower(strings.TrimSpace(skill))
	if _, ok := s.skills[normalized]; ok {
		return
	}
	s.skills[normalized] = struct{}{}
	s.order = append(s.order, normalized)
}

func (s *Session) skillList() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
