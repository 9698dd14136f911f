package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Field names below mirror the wire contract consumed by the web client.

// NewPedidoItemRequest is one line-item spec of a new pedido: a quantity
// plus five free-text catalog labels resolved by the catalog service.
type NewPedidoItemRequest struct {
	Quantidade int    `json:"Quantidade"`
	Produto    string `json:"Produto"`
	Aroma      string `json:"Aroma"`
	Cor        string `json:"Cor"`
	Formato    string `json:"Formato"`
	Embalagem  string `json:"Embalagem"`
}

// NewPedidoRequest is the body of POST /api/Pedido.
type NewPedidoRequest struct {
	DataEntrega   Date                   `json:"DataEntrega"`
	ValorDesconto decimal.Decimal        `json:"ValorDesconto"`
	IsPermuta     bool                   `json:"IsPermuta"`
	ValorEntrada  decimal.Decimal        `json:"ValorEntrada"`
	ValorTotal    decimal.Decimal        `json:"ValorTotal"`
	ClienteId     int                    `json:"ClienteId"`
	Itens         []NewPedidoItemRequest `json:"Itens"`
}

// PedidoChangeStatusRequest is the body of PUT /api/Pedido/ChangeStatus.
type PedidoChangeStatusRequest struct {
	IdPedido  int          `json:"idPedido"`
	NewStatus PedidoStatus `json:"NewStatus"`
}

// --- Auth ---

type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Nome            string `json:"nome,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	Email              string `json:"email"`
	CurrentPassword    string `json:"currentPassword"`
	NewPassword        string `json:"newPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword"`
}

// AuthResponse is returned by every auth endpoint. Message is a
// human-readable outcome; Token is set only on successful login.
type AuthResponse struct {
	Success    bool       `json:"success"`
	Token      string     `json:"token,omitempty"`
	Message    string     `json:"message,omitempty"`
	Expiration *time.Time `json:"expiration,omitempty"`
	Email      string     `json:"email,omitempty"`
	Nome       string     `json:"nome,omitempty"`
}
