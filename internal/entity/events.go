package entity

import "time"

// PedidoStatusChanged is published to the message broker after a status
// transition has been persisted and audited. Consumers treat it as a
// best-effort feed; the audit table stays the source of truth.
type PedidoStatusChanged struct {
	IdPedido     int          `json:"id_pedido"`
	OldStatus    PedidoStatus `json:"old_status"`
	NewStatus    PedidoStatus `json:"new_status"`
	UsuarioNome  string       `json:"usuario_nome,omitempty"`
	UsuarioEmail string       `json:"usuario_email,omitempty"`
	OccurredAt   time.Time    `json:"occurred_at"`
}

// PedidoCreated is published after a new pedido has been persisted.
type PedidoCreated struct {
	IdPedido   int       `json:"id_pedido"`
	ClienteId  int       `json:"cliente_id"`
	TotalItens int       `json:"total_itens"`
	OccurredAt time.Time `json:"occurred_at"`
}
