package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/omg-lab/omg-backend/internal/entity"
	"github.com/omg-lab/omg-backend/internal/repository"
)

// terminalStatuses is the set of finished states excluded from the home
// board once their delivery date is past the cutoff.
func terminalStatuses() any {
	return pq.Array([]int{int(entity.StatusPronto), int(entity.StatusEntregue)})
}

type pedidoRepository struct {
	db *sql.DB
}

// NewPedidoRepository creates a PedidoRepository backed by Postgres.
func NewPedidoRepository(db *sql.DB) repository.PedidoRepository {
	return &pedidoRepository{db: db}
}

func (r *pedidoRepository) Create(ctx context.Context, pedido *entity.Pedido) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO pedidos (status, cliente_id, valor_total, desconto, entrada, is_permuta, data_entrega)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`,
		int(pedido.Status), pedido.Cliente.ID, pedido.ValorTotal, pedido.Desconto,
		pedido.Entrada, pedido.IsPermuta, pedido.DataEntrega,
	).Scan(&pedido.ID, &pedido.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert pedido: %w", err)
	}

	for i := range pedido.Itens {
		item := &pedido.Itens[i]
		item.PedidoID = pedido.ID
		err = tx.QueryRowContext(ctx,
			`INSERT INTO pedido_itens (pedido_id, produto_id, formato_id, cor_id, aroma_id, embalagem_id, quantidade)
			 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
			pedido.ID, item.Produto.ID, item.Formato.ID, item.Cor.ID,
			item.Aroma.ID, item.Embalagem.ID, item.Quantidade,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("failed to insert pedido item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

const pedidoSelect = `
	SELECT p.id, p.status, p.valor_total, p.desconto, p.entrada, p.is_permuta,
	       p.data_entrega, p.created_at, c.id, c.nome, c.telefone, c.endereco
	FROM pedidos p
	JOIN clientes c ON c.id = p.cliente_id`

func (r *pedidoRepository) Get(ctx context.Context, id int) (*entity.Pedido, error) {
	var p entity.Pedido
	var status int
	err := r.db.QueryRowContext(ctx,
		pedidoSelect+" WHERE p.id = $1 AND p.is_deleted = FALSE", id,
	).Scan(&p.ID, &status, &p.ValorTotal, &p.Desconto, &p.Entrada, &p.IsPermuta,
		&p.DataEntrega, &p.CreatedAt, &p.Cliente.ID, &p.Cliente.Nome,
		&p.Cliente.Telefone, &p.Cliente.Endereco)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query pedido %d: %w", id, err)
	}
	p.Status = entity.PedidoStatus(status)

	if err := r.loadItens(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// loadItens materializes the itens with their catalog labels eagerly so
// callers never touch the database again through the returned pedido.
func (r *pedidoRepository) loadItens(ctx context.Context, p *entity.Pedido) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT i.id, i.quantidade,
		       pr.id, pr.descricao,
		       f.id, f.descricao,
		       co.id, co.nome,
		       a.id, a.nome,
		       e.id, e.descricao
		FROM pedido_itens i
		JOIN produtos pr ON pr.id = i.produto_id
		JOIN formatos f ON f.id = i.formato_id
		JOIN cores co ON co.id = i.cor_id
		JOIN aromas a ON a.id = i.aroma_id
		JOIN embalagens e ON e.id = i.embalagem_id
		WHERE i.pedido_id = $1 AND i.is_deleted = FALSE
		ORDER BY i.id`, p.ID)
	if err != nil {
		return fmt.Errorf("failed to query itens for pedido %d: %w", p.ID, err)
	}
	defer rows.Close()

	for rows.Next() {
		item := entity.PedidoItem{PedidoID: p.ID}
		if err := rows.Scan(&item.ID, &item.Quantidade,
			&item.Produto.ID, &item.Produto.Label,
			&item.Formato.ID, &item.Formato.Label,
			&item.Cor.ID, &item.Cor.Label,
			&item.Aroma.ID, &item.Aroma.Label,
			&item.Embalagem.ID, &item.Embalagem.Label); err != nil {
			return fmt.Errorf("failed to scan pedido item: %w", err)
		}
		p.Itens = append(p.Itens, item)
	}
	return rows.Err()
}

func (r *pedidoRepository) GetStatus(ctx context.Context, id int) (entity.PedidoStatus, error) {
	var status int
	err := r.db.QueryRowContext(ctx,
		"SELECT status FROM pedidos WHERE id = $1 AND is_deleted = FALSE", id,
	).Scan(&status)
	if err == sql.ErrNoRows {
		return 0, repository.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query status of pedido %d: %w", id, err)
	}
	return entity.PedidoStatus(status), nil
}

func (r *pedidoRepository) ChangeStatus(ctx context.Context, id int, status entity.PedidoStatus) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE pedidos SET status = $1 WHERE id = $2 AND is_deleted = FALSE",
		int(status), id,
	)
	if err != nil {
		return fmt.Errorf("failed to change status of pedido %d: %w", id, err)
	}
	return affectedOrNotFound(res)
}

func (r *pedidoRepository) FindViewHome(ctx context.Context, cutoffDays int) ([]entity.Pedido, error) {
	rows, err := r.db.QueryContext(ctx,
		pedidoSelect+`
		WHERE p.is_deleted = FALSE
		  AND NOT (p.status = ANY($1) AND p.data_entrega < CURRENT_DATE - $2::int)
		ORDER BY p.data_entrega, p.id`,
		terminalStatuses(), cutoffDays)
	if err != nil {
		return nil, fmt.Errorf("failed to query pedidos for home view: %w", err)
	}
	defer rows.Close()

	var pedidos []entity.Pedido
	for rows.Next() {
		var p entity.Pedido
		var status int
		if err := rows.Scan(&p.ID, &status, &p.ValorTotal, &p.Desconto, &p.Entrada,
			&p.IsPermuta, &p.DataEntrega, &p.CreatedAt, &p.Cliente.ID,
			&p.Cliente.Nome, &p.Cliente.Telefone, &p.Cliente.Endereco); err != nil {
			return nil, fmt.Errorf("failed to scan pedido: %w", err)
		}
		p.Status = entity.PedidoStatus(status)
		pedidos = append(pedidos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range pedidos {
		if err := r.loadItens(ctx, &pedidos[i]); err != nil {
			return nil, err
		}
	}
	return pedidos, nil
}
