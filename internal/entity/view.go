package entity

import "github.com/shopspring/decimal"

// PedidoCard is the compact pedido projection shown on the home board.
type PedidoCard struct {
	PedidoId    int             `json:"pedidoId"`
	NomeCliente string          `json:"nomeCliente"`
	TotalItens  int             `json:"totalItens"`
	DataEntrega Date            `json:"dataEntrega"`
	ValorTotal  decimal.Decimal `json:"valorTotal"`
	Status      PedidoStatus    `json:"status"`
}

// PedidoItemModal is one line of the pedido detail modal, with catalog
// references flattened to their labels.
type PedidoItemModal struct {
	ItemId     int    `json:"itemId"`
	Produto    string `json:"produto"`
	Formato    string `json:"formato"`
	Cor        string `json:"cor"`
	Aroma      string `json:"aroma"`
	Embalagem  string `json:"embalagem"`
	Quantidade int    `json:"quantidade"`
}

// PedidoModal is the full pedido detail projection.
type PedidoModal struct {
	PedidoId    int               `json:"pedidoId"`
	NomeCliente string            `json:"nomeCliente"`
	Telefone    string            `json:"telefone"`
	Endereco    string            `json:"endereco"`
	Status      PedidoStatus      `json:"status"`
	DataEntrega Date              `json:"dataEntrega"`
	ValorTotal  decimal.Decimal   `json:"valorTotal"`
	Desconto    decimal.Decimal   `json:"desconto"`
	Entrada     decimal.Decimal   `json:"entrada"`
	IsPermuta   bool              `json:"isPermuta"`
	Itens       []PedidoItemModal `json:"itens"`
}

// ToCard projects the pedido into its home-board card.
func (p *Pedido) ToCard() PedidoCard {
	return PedidoCard{
		PedidoId:    p.ID,
		NomeCliente: p.Cliente.Nome,
		TotalItens:  len(p.Itens),
		DataEntrega: p.DataEntrega,
		ValorTotal:  p.ValorTotal,
		Status:      p.Status,
	}
}

// ToModal projects the pedido into its detail modal.
func (p *Pedido) ToModal() PedidoModal {
	itens := make([]PedidoItemModal, 0, len(p.Itens))
	for _, item := range p.Itens {
		itens = append(itens, PedidoItemModal{
			ItemId:     item.ID,
			Produto:    item.Produto.Label,
			Formato:    item.Formato.Label,
			Cor:        item.Cor.Label,
			Aroma:      item.Aroma.Label,
			Embalagem:  item.Embalagem.Label,
			Quantidade: item.Quantidade,
		})
	}
	return PedidoModal{
		PedidoId:    p.ID,
		NomeCliente: p.Cliente.Nome,
		Telefone:    p.Cliente.Telefone,
		Endereco:    p.Cliente.Endereco,
		Status:      p.Status,
		DataEntrega: p.DataEntrega,
		ValorTotal:  p.ValorTotal,
		Desconto:    p.Desconto,
		Entrada:     p.Entrada,
		IsPermuta:   p.IsPermuta,
		Itens:       itens,
	}
}
