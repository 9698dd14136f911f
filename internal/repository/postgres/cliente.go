package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/omg-lab/omg-backend/internal/entity"
	"github.com/omg-lab/omg-backend/internal/repository"
)

type clienteRepository struct {
	db *sql.DB
}

// NewClienteRepository creates a ClienteRepository backed by Postgres.
func NewClienteRepository(db *sql.DB) repository.ClienteRepository {
	return &clienteRepository{db: db}
}

func (r *clienteRepository) Get(ctx context.Context, id int) (*entity.Cliente, error) {
	var c entity.Cliente
	err := r.db.QueryRowContext(ctx,
		"SELECT id, nome, telefone, endereco FROM clientes WHERE id = $1 AND is_deleted = FALSE",
		id,
	).Scan(&c.ID, &c.Nome, &c.Telefone, &c.Endereco)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query cliente %d: %w", id, err)
	}
	return &c, nil
}

func (r *clienteRepository) FindAll(ctx context.Context) ([]entity.Cliente, error) {
	return r.queryClientes(ctx,
		"SELECT id, nome, telefone, endereco FROM clientes WHERE is_deleted = FALSE ORDER BY nome")
}

func (r *clienteRepository) Search(ctx context.Context, key string) ([]entity.Cliente, error) {
	return r.queryClientes(ctx,
		"SELECT id, nome, telefone, endereco FROM clientes WHERE is_deleted = FALSE AND nome ILIKE '%' || $1 || '%' ORDER BY nome",
		key)
}

func (r *clienteRepository) queryClientes(ctx context.Context, query string, args ...any) ([]entity.Cliente, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query clientes: %w", err)
	}
	defer rows.Close()

	var clientes []entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Nome, &c.Telefone, &c.Endereco); err != nil {
			return nil, fmt.Errorf("failed to scan cliente: %w", err)
		}
		clientes = append(clientes, c)
	}
	return clientes, rows.Err()
}

func (r *clienteRepository) Create(ctx context.Context, cliente *entity.Cliente) error {
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO clientes (nome, telefone, endereco) VALUES ($1, $2, $3) RETURNING id",
		cliente.Nome, cliente.Telefone, cliente.Endereco,
	).Scan(&cliente.ID)
	if err != nil {
		return fmt.Errorf("failed to insert cliente: %w", err)
	}
	return nil
}

func (r *clienteRepository) Update(ctx context.Context, cliente *entity.Cliente) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE clientes SET nome = $1, telefone = $2, endereco = $3 WHERE id = $4 AND is_deleted = FALSE",
		cliente.Nome, cliente.Telefone, cliente.Endereco, cliente.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update cliente %d: %w", cliente.ID, err)
	}
	return affectedOrNotFound(res)
}

func (r *clienteRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE clientes SET is_deleted = TRUE, deleted_at = $1 WHERE id = $2 AND is_deleted = FALSE",
		time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete cliente %d: %w", id, err)
	}
	return affectedOrNotFound(res)
}

// affectedOrNotFound converts a zero-row UPDATE into ErrNotFound.
func affectedOrNotFound(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
