package chat

import (
	"sync"
	"time"

	"github.com/nidhogg/jobscout/internal/catalog"
	"github.com/nidhogg/jobscout/internal/metrics"
	"github.com/nidhogg/jobscout/internal/recommend"
	"go.uber.org/zap"
)

// Registry owns the connection → session mapping. Each live connection
// gets exactly one session; sessions of different connections are fully
// independent. All methods are safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	catalog  *catalog.Catalog
	engine   *recommend.Engine
	metrics  *metrics.Manager
	logger   *zap.Logger
}

// NewRegistry creates a registry serving the given catalog. metrics may
// be nil.
func NewRegistry(c *catalog.Catalog, m *metrics.Manager, logger *zap.Logger) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		catalog:  c,
		engine:   recommend.NewEngine(c),
		metrics:  m,
		logger:   logger,
	}
}

// Connect creates a fresh session for the connection and returns the
// welcome frame to push before any client input.
func (r *Registry) Connect(id string) *Response {
	r.mu.Lock()
	r.sessions[id] = NewSession(r.catalog, r.engine)
	r.mu.Unlock()

	r.logger.Info("session opened", zap.String("connection", id))
	return NewResponse(WelcomeText, nil, nil)
}

// Handle processes one raw inbound frame for a connection. A frame that
// cannot be decoded yields an error frame and leaves the session
// untouched. A frame for an unknown connection is dropped with a nil
// return; that only happens if the transport misorders lifecycle events.
func (r *Registry) Handle(id string, payload []byte) Frame {
	in, err := DecodeInbound(payload)
	if err != nil {
		r.logger.Warn("protocol error",
			zap.String("connection", id), zap.Error(err))
		r.metrics.IncProtocolErrors()
		return NewErrorFrame(ProtocolErrorText)
	}

	sess := r.lookup(id)
	if sess == nil {
		r.logger.Warn("frame for unknown connection", zap.String("connection", id))
		return nil
	}

	switch in.Type {
	case TypeReset:
		return sess.Reset()
	default:
		return r.ingest(sess, in.Content)
	}
}

// HandleText processes a plain-text message for transports that do not
// speak the JSON frame protocol. The session is created lazily on first
// use, since such transports have no explicit connect event.
func (r *Registry) HandleText(id, text string) *Response {
	return r.ingest(r.ensure(id), text)
}

// Reset clears the session for a text-transport connection, creating it
// first if needed.
func (r *Registry) Reset(id string) *Response {
	return r.ensure(id).Reset()
}

// Disconnect discards the session for a connection. An in-flight ingest
// holding the session pointer finishes against the orphaned session; its
// reply is dropped by the transport along with the connection.
func (r *Registry) Disconnect(id string) {
	r.mu.Lock()
	_, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if ok {
		r.logger.Info("session closed", zap.String("connection", id))
	}
}

// Count returns the number of live sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *Registry) ingest(sess *Session, text string) *Response {
	start := time.Now()
	before := len(sess.Skills())

	resp := sess.Ingest(text)

	r.metrics.AddSkillsExtracted(len(resp.Skills) - before)
	r.metrics.AddRecommendationsServed(len(resp.Recommendations))
	r.metrics.ObserveIngest(time.Since(start))
	return resp
}

func (r *Registry) lookup(id string) *Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[id]
}

func (r *Registry) ensure(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	sess, ok := r.sessions[id]
	if !ok {
		sess = NewSession(r.catalog, r.engine)
		r.sessions[id] = sess
		r.logger.Info("session opened", zap.String("connection", id))
	}
	return sess
}
