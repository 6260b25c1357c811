package gateway

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Manager tracks all registered transport adapters.
type Manager struct {
	mu       sync.RWMutex
	adapters []Adapter
	logger   *zap.Logger
}

// NewManager creates an adapter manager.
func NewManager(logger *zap.Logger) *Manager {
	return &Manager{logger: logger}
}

// Register adds an adapter.
func (m *Manager) Register(a Adapter) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.adapters = append(m.adapters, a)
	m.logger.Info("registered gateway adapter", zap.String("platform", a.Platform()))
}

// ConnectAll starts all registered adapters.
func (m *Manager) ConnectAll(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, a := range m.adapters {
		if err := a.Connect(ctx); err != nil {
			m.logger.Error("adapter connect failed",
				zap.String("platform", a.Platform()), zap.Error(err))
			return fmt.Errorf("connect %s: %w", a.Platform(), err)
		}
		m.logger.Info("adapter connected", zap.String("platform", a.Platform()))
	}
	return nil
}

// Close shuts down all adapters.
func (m *Manager) Close() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, a := range m.adapters {
		if err := a.Close(); err != nil {
			m.logger.Error("adapter close failed",
				zap.String("platform", a.Platform()), zap.Error(err))
		}
	}
	return nil
}

// Platforms returns the registered platform names.
func (m *Manager) Platforms() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.adapters))
	for _, a := range m.adapters {
		names = append(names, a.Platform())
	}
	return names
}
