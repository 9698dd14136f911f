package repository

import (
	"context"
	"errors"

	"github.com/omg-lab/omg-backend/internal/entity"
)

// ErrNotFound is returned when the requested row does not exist or is
// soft-deleted. Callers check it with errors.Is.
var ErrNotFound = errors.New("not found")

// ClienteRepository handles persistence for Clientes.
type ClienteRepository interface {
	Get(ctx context.Context, id int) (*entity.Cliente, error)
	FindAll(ctx context.Context) ([]entity.Cliente, error)
	Search(ctx context.Context, key string) ([]entity.Cliente, error)
	Create(ctx context.Context, cliente *entity.Cliente) error
	Update(ctx context.Context, cliente *entity.Cliente) error
	// Delete soft-deletes the row; subsequent reads exclude it.
	Delete(ctx context.Context, id int) error
}

// CatalogRepository handles persistence for the five catalog attribute
// kinds. Every method scopes to a single kind; labels never collide
// across kinds.
type CatalogRepository interface {
	Get(ctx context.Context, kind entity.CatalogKind, id int) (*entity.CatalogItem, error)
	// FindByNormalizedLabel matches on the trimmed, lower-cased label and
	// returns ErrNotFound on a miss.
	FindByNormalizedLabel(ctx context.Context, kind entity.CatalogKind, label string) (*entity.CatalogItem, error)
	FindAll(ctx context.Context, kind entity.CatalogKind) ([]entity.CatalogItem, error)
	Search(ctx context.Context, kind entity.CatalogKind, key string) ([]entity.CatalogItem, error)
	Create(ctx context.Context, kind entity.CatalogKind, item *entity.CatalogItem) error
	Update(ctx context.Context, kind entity.CatalogKind, item *entity.CatalogItem) error
	Delete(ctx context.Context, kind entity.CatalogKind, id int) error
}

// PedidoRepository handles persistence for Pedidos and their itens.
type PedidoRepository interface {
	// Create persists the pedido and all its itens in one transaction and
	// fills in the generated ids.
	Create(ctx context.Context, pedido *entity.Pedido) error
	// Get returns the pedido with cliente, itens and catalog labels fully
	// materialized. No lazy loading.
	Get(ctx context.Context, id int) (*entity.Pedido, error)
	GetStatus(ctx context.Context, id int) (entity.PedidoStatus, error)
	// ChangeStatus overwrites the status unconditionally.
	ChangeStatus(ctx context.Context, id int, status entity.PedidoStatus) error
	// FindViewHome returns pedidos for the home board, skipping
	// terminal-status pedidos delivered more than cutoffDays ago.
	FindViewHome(ctx context.Context, cutoffDays int) ([]entity.Pedido, error)
}

// EventRepository is the append-only audit log of status transitions.
type EventRepository interface {
	AppendStatusChange(ctx context.Context, event *entity.EventChangeStatus) error
	FindByPedido(ctx context.Context, idPedido int) ([]entity.EventChangeStatus, error)
}

// UsuarioRepository handles persistence for application users.
type UsuarioRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.Usuario, error)
	Create(ctx context.Context, usuario *entity.Usuario) error
	Update(ctx context.Context, usuario *entity.Usuario) error
}
