package messaging

import "context"

// Publisher defines an interface for publishing domain events to a
// message broker.
type Publisher interface {
	PublishEvent(ctx context.Context, topic string, key string, event any) error
}

// Topics carrying pedido events.
const (
	TopicPedidoStatusChanged = "pedidos.status-changed"
	TopicPedidoCreated       = "pedidos.created"
)
