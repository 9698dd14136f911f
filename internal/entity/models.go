package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cliente is a customer. Clientes are referenced by pedidos but never
// owned by them.
type Cliente struct {
	ID       int    `json:"id"`
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
	Endereco string `json:"endereco"`
}

// CatalogItem is one row of a catalog attribute table: a product type,
// shape, color, scent or packaging, identified by its label. Each
// CatalogKind is an independent namespace.
type CatalogItem struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

// PedidoItem is one line within a pedido. Every catalog reference is
// required; items are created only as part of pedido creation.
type PedidoItem struct {
	ID         int         `json:"id"`
	PedidoID   int         `json:"pedidoId"`
	Produto    CatalogItem `json:"produto"`
	Formato    CatalogItem `json:"formato"`
	Cor        CatalogItem `json:"cor"`
	Aroma      CatalogItem `json:"aroma"`
	Embalagem  CatalogItem `json:"embalagem"`
	Quantidade int         `json:"quantidade"`
}

// Pedido is a customer order. The status field is the only field mutated
// after creation, always through the pedido service.
type Pedido struct {
	ID          int             `json:"id"`
	Status      PedidoStatus    `json:"status"`
	Cliente     Cliente         `json:"cliente"`
	Itens       []PedidoItem    `json:"itens"`
	ValorTotal  decimal.Decimal `json:"valorTotal"`
	Desconto    decimal.Decimal `json:"desconto"`
	Entrada     decimal.Decimal `json:"entrada"`
	IsPermuta   bool            `json:"isPermuta"`
	DataEntrega Date            `json:"dataEntrega"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// EventChangeStatus is one append-only audit record of a status
// transition. Actor fields are optional and stored as given.
type EventChangeStatus struct {
	ID           int          `json:"id"`
	IdPedido     int          `json:"idPedido"`
	OldStatus    PedidoStatus `json:"oldStatus"`
	NewStatus    PedidoStatus `json:"newStatus"`
	UsuarioNome  string       `json:"usuarioNome,omitempty"`
	UsuarioEmail string       `json:"usuarioEmail,omitempty"`
	DataCriacao  time.Time    `json:"dataCriacao"`
}

// Usuario is a registered application user.
type Usuario struct {
	ID           int
	Nome         string
	Email        string
	PasswordHash string
	FailedLogins int
	LockedUntil  *time.Time
	DataCriacao  time.Time
	UltimoAcesso *time.Time
}
