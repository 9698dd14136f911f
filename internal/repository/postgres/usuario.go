package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/omg-lab/omg-backend/internal/entity"
	"github.com/omg-lab/omg-backend/internal/repository"
)

type usuarioRepository struct {
	db *sql.DB
}

// NewUsuarioRepository creates a UsuarioRepository backed by Postgres.
func NewUsuarioRepository(db *sql.DB) repository.UsuarioRepository {
	return &usuarioRepository{db: db}
}

func (r *usuarioRepository) FindByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.db.QueryRowContext(ctx,
		`SELECT id, nome, email, password_hash, failed_logins, locked_until, data_criacao, ultimo_acesso
		 FROM usuarios WHERE LOWER(email) = LOWER($1)`,
		email,
	).Scan(&u.ID, &u.Nome, &u.Email, &u.PasswordHash, &u.FailedLogins,
		&u.LockedUntil, &u.DataCriacao, &u.UltimoAcesso)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query usuario by email: %w", err)
	}
	return &u, nil
}

func (r *usuarioRepository) Create(ctx context.Context, usuario *entity.Usuario) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO usuarios (nome, email, password_hash) VALUES ($1, $2, $3)
		 RETURNING id, data_criacao`,
		usuario.Nome, usuario.Email, usuario.PasswordHash,
	).Scan(&usuario.ID, &usuario.DataCriacao)
	if err != nil {
		return fmt.Errorf("failed to insert usuario: %w", err)
	}
	return nil
}

func (r *usuarioRepository) Update(ctx context.Context, usuario *entity.Usuario) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE usuarios SET nome = $1, password_hash = $2, failed_logins = $3,
		        locked_until = $4, ultimo_acesso = $5
		 WHERE id = $6`,
		usuario.Nome, usuario.PasswordHash, usuario.FailedLogins,
		usuario.LockedUntil, usuario.UltimoAcesso, usuario.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update usuario %d: %w", usuario.ID, err)
	}
	return affectedOrNotFound(res)
}
