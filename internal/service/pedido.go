package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/omg-lab/omg-backend/internal/entity"
	"github.com/omg-lab/omg-backend/internal/messaging"
	"github.com/omg-lab/omg-backend/internal/repository"
)

// PedidoService orchestrates pedido creation and status transitions.
type PedidoService struct {
	pedidoRepo repository.PedidoRepository
	eventRepo  repository.EventRepository
	clientes   *ClienteService
	catalog    *CatalogService
	publisher  messaging.Publisher // optional
}

func NewPedidoService(
	pedidoRepo repository.PedidoRepository,
	eventRepo repository.EventRepository,
	clientes *ClienteService,
	catalog *CatalogService,
	publisher messaging.Publisher,
) *PedidoService {
	return &PedidoService{
		pedidoRepo: pedidoRepo,
		eventRepo:  eventRepo,
		clientes:   clientes,
		catalog:    catalog,
		publisher:  publisher,
	}
}

// ChangeStatus overwrites the pedido status and appends one audit event
// recording the status that was in effect before the write. The three
// steps run strictly read, write, append; there is no rollback, so an
// append failure leaves the new status in place unaudited. Transitions
// are not validated: any status may move to any other, including itself.
func (s *PedidoService) ChangeStatus(ctx context.Context, idPedido int, newStatus entity.PedidoStatus, usuarioNome, usuarioEmail string) error {
	oldStatus, err := s.pedidoRepo.GetStatus(ctx, idPedido)
	if err != nil {
		return err
	}

	if err := s.pedidoRepo.ChangeStatus(ctx, idPedido, newStatus); err != nil {
		return err
	}

	err = s.eventRepo.AppendStatusChange(ctx, &entity.EventChangeStatus{
		IdPedido:     idPedido,
		OldStatus:    oldStatus,
		NewStatus:    newStatus,
		UsuarioNome:  usuarioNome,
		UsuarioEmail: usuarioEmail,
		DataCriacao:  time.Now(),
	})
	if err != nil {
		return err
	}

	slog.Info("Pedido status changed",
		"id_pedido", idPedido, "old_status", oldStatus.String(), "new_status", newStatus.String())

	s.publish(ctx, messaging.TopicPedidoStatusChanged, idPedido, entity.PedidoStatusChanged{
		IdPedido:     idPedido,
		OldStatus:    oldStatus,
		NewStatus:    newStatus,
		UsuarioNome:  usuarioNome,
		UsuarioEmail: usuarioEmail,
		OccurredAt:   time.Now(),
	})
	return nil
}

// CreateNewPedido fetches the cliente, resolves every catalog label of
// every item, and persists the pedido with all itens as one aggregate
// write. A missing cliente aborts before anything is written; catalog
// rows created during resolution survive a later failure.
func (s *PedidoService) CreateNewPedido(ctx context.Context, req *entity.NewPedidoRequest) (*entity.Pedido, error) {
	cliente, err := s.clientes.Get(ctx, req.ClienteId)
	if err != nil {
		return nil, fmt.Errorf("cliente %d: %w", req.ClienteId, err)
	}

	pedido := &entity.Pedido{
		Status:      entity.StatusNovo,
		Cliente:     *cliente,
		Itens:       make([]entity.PedidoItem, 0, len(req.Itens)),
		ValorTotal:  req.ValorTotal,
		Desconto:    req.ValorDesconto,
		Entrada:     req.ValorEntrada,
		IsPermuta:   req.IsPermuta,
		DataEntrega: req.DataEntrega,
	}

	for _, item := range req.Itens {
		produto, err := s.catalog.Resolve(ctx, entity.KindProduto, item.Produto)
		if err != nil {
			return nil, err
		}
		aroma, err := s.catalog.Resolve(ctx, entity.KindAroma, item.Aroma)
		if err != nil {
			return nil, err
		}
		cor, err := s.catalog.Resolve(ctx, entity.KindCor, item.Cor)
		if err != nil {
			return nil, err
		}
		formato, err := s.catalog.Resolve(ctx, entity.KindFormato, item.Formato)
		if err != nil {
			return nil, err
		}
		embalagem, err := s.catalog.Resolve(ctx, entity.KindEmbalagem, item.Embalagem)
		if err != nil {
			return nil, err
		}

		pedido.Itens = append(pedido.Itens, entity.PedidoItem{
			Produto:    *produto,
			Aroma:      *aroma,
			Cor:        *cor,
			Formato:    *formato,
			Embalagem:  *embalagem,
			Quantidade: item.Quantidade,
		})
	}

	if err := s.pedidoRepo.Create(ctx, pedido); err != nil {
		return nil, err
	}

	slog.Info("Pedido created",
		"id_pedido", pedido.ID, "cliente_id", cliente.ID, "itens", len(pedido.Itens))

	s.publish(ctx, messaging.TopicPedidoCreated, pedido.ID, entity.PedidoCreated{
		IdPedido:   pedido.ID,
		ClienteId:  cliente.ID,
		TotalItens: len(pedido.Itens),
		OccurredAt: time.Now(),
	})
	return pedido, nil
}

// Get returns the fully materialized pedido.
func (s *PedidoService) Get(ctx context.Context, id int) (*entity.Pedido, error) {
	return s.pedidoRepo.Get(ctx, id)
}

// GetStatusHistory returns the audit trail of a pedido, oldest first.
// The pedido must exist; its events may be empty.
func (s *PedidoService) GetStatusHistory(ctx context.Context, id int) ([]entity.EventChangeStatus, error) {
	if _, err := s.pedidoRepo.GetStatus(ctx, id); err != nil {
		return nil, err
	}
	return s.eventRepo.FindByPedido(ctx, id)
}

// HomeCutoffDays hides terminal-status pedidos from the home board this
// many days after their delivery date.
const HomeCutoffDays = 14

// GetPedidoCards returns the home board projection.
func (s *PedidoService) GetPedidoCards(ctx context.Context) ([]entity.PedidoCard, error) {
	pedidos, err := s.pedidoRepo.FindViewHome(ctx, HomeCutoffDays)
	if err != nil {
		return nil, err
	}
	cards := make([]entity.PedidoCard, 0, len(pedidos))
	for i := range pedidos {
		cards = append(cards, pedidos[i].ToCard())
	}
	return cards, nil
}

// GetPedidoModal returns the detail projection for one pedido.
func (s *PedidoService) GetPedidoModal(ctx context.Context, id int) (*entity.PedidoModal, error) {
	pedido, err := s.pedidoRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	modal := pedido.ToModal()
	return &modal, nil
}

// publish is best-effort: broker trouble is logged, never surfaced, so
// the workflow's outcome does not depend on the event feed.
func (s *PedidoService) publish(ctx context.Context, topic string, idPedido int, event any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishEvent(ctx, topic, strconv.Itoa(idPedido), event); err != nil {
		slog.Error("Failed to publish pedido event", "topic", topic, "id_pedido", idPedido, "err", err)
	}
}
