package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/omg-lab/omg-backend/internal/entity"
	"github.com/omg-lab/omg-backend/internal/repository"
)

type eventRepository struct {
	db *sql.DB
}

// NewEventRepository creates the append-only status audit log backed by
// Postgres.
func NewEventRepository(db *sql.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) AppendStatusChange(ctx context.Context, event *entity.EventChangeStatus) error {
	if event.DataCriacao.IsZero() {
		event.DataCriacao = time.Now()
	}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO event_change_status (id_pedido, old_status, new_status, usuario_nome, usuario_email, data_criacao)
		 VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6) RETURNING id`,
		event.IdPedido, int(event.OldStatus), int(event.NewStatus),
		event.UsuarioNome, event.UsuarioEmail, event.DataCriacao,
	).Scan(&event.ID)
	if err != nil {
		return fmt.Errorf("failed to append status change event: %w", err)
	}
	return nil
}

func (r *eventRepository) FindByPedido(ctx context.Context, idPedido int) ([]entity.EventChangeStatus, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, id_pedido, old_status, new_status, COALESCE(usuario_nome, ''), COALESCE(usuario_email, ''), data_criacao
		 FROM event_change_status WHERE id_pedido = $1 ORDER BY id`,
		idPedido)
	if err != nil {
		return nil, fmt.Errorf("failed to query status change events: %w", err)
	}
	defer rows.Close()

	var events []entity.EventChangeStatus
	for rows.Next() {
		var ev entity.EventChangeStatus
		var oldStatus, newStatus int
		if err := rows.Scan(&ev.ID, &ev.IdPedido, &oldStatus, &newStatus,
			&ev.UsuarioNome, &ev.UsuarioEmail, &ev.DataCriacao); err != nil {
			return nil, fmt.Errorf("failed to scan status change event: %w", err)
		}
		ev.OldStatus = entity.PedidoStatus(oldStatus)
		ev.NewStatus = entity.PedidoStatus(newStatus)
		events = append(events, ev)
	}
	return events, rows.Err()
}
