package gateway

import "context"

// Adapter is one chat transport. Each adapter feeds its platform's
// connections into the shared session registry and sends replies back on
// the connection that triggered them; there is no cross-connection
// traffic.
type Adapter interface {
	Platform() string
	Connect(ctx context.Context) error
	Close() error
}
