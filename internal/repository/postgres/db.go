package postgres

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"
)

// InitDB opens the connection pool and bootstraps the schema.
func InitDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := migrateDB(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	slog.Info("Database connected and migrated")
	return db, nil
}

func migrateDB(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS clientes (
			id SERIAL PRIMARY KEY,
			nome VARCHAR(150) NOT NULL,
			telefone VARCHAR(50) NOT NULL DEFAULT '',
			endereco VARCHAR(300) NOT NULL DEFAULT '',
			is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
			deleted_at TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS ix_clientes_nome ON clientes (nome);
		CREATE INDEX IF NOT EXISTS ix_clientes_is_deleted ON clientes (is_deleted) WHERE is_deleted = FALSE;

		CREATE TABLE IF NOT EXISTS produtos (
			id SERIAL PRIMARY KEY,
			descricao VARCHAR(250) NOT NULL,
			is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
			deleted_at TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS ix_produtos_descricao ON produtos (descricao);
		CREATE INDEX IF NOT EXISTS ix_produtos_is_deleted ON produtos (is_deleted) WHERE is_deleted = FALSE;

		CREATE TABLE IF NOT EXISTS formatos (
			id SERIAL PRIMARY KEY,
			descricao VARCHAR(250) NOT NULL,
			is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
			deleted_at TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS ix_formatos_descricao ON formatos (descricao);
		CREATE INDEX IF NOT EXISTS ix_formatos_is_deleted ON formatos (is_deleted) WHERE is_deleted = FALSE;

		CREATE TABLE IF NOT EXISTS cores (
			id SERIAL PRIMARY KEY,
			nome VARCHAR(250) NOT NULL,
			is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
			deleted_at TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS ix_cores_nome ON cores (nome);
		CREATE INDEX IF NOT EXISTS ix_cores_is_deleted ON cores (is_deleted) WHERE is_deleted = FALSE;

		CREATE TABLE IF NOT EXISTS aromas (
			id SERIAL PRIMARY KEY,
			nome VARCHAR(250) NOT NULL,
			is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
			deleted_at TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS ix_aromas_nome ON aromas (nome);
		CREATE INDEX IF NOT EXISTS ix_aromas_is_deleted ON aromas (is_deleted) WHERE is_deleted = FALSE;

		CREATE TABLE IF NOT EXISTS embalagens (
			id SERIAL PRIMARY KEY,
			descricao VARCHAR(250) NOT NULL,
			is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
			deleted_at TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS ix_embalagens_descricao ON embalagens (descricao);
		CREATE INDEX IF NOT EXISTS ix_embalagens_is_deleted ON embalagens (is_deleted) WHERE is_deleted = FALSE;

		CREATE TABLE IF NOT EXISTS pedidos (
			id SERIAL PRIMARY KEY,
			status INT NOT NULL DEFAULT 0,
			cliente_id INT NOT NULL REFERENCES clientes(id),
			valor_total NUMERIC(9,2) NOT NULL DEFAULT 0,
			desconto NUMERIC(9,2) NOT NULL DEFAULT 0,
			entrada NUMERIC(9,2) NOT NULL DEFAULT 0,
			is_permuta BOOLEAN NOT NULL DEFAULT FALSE,
			data_entrega DATE NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
			deleted_at TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS ix_pedidos_cliente_id ON pedidos (cliente_id);
		CREATE INDEX IF NOT EXISTS ix_pedidos_is_deleted ON pedidos (is_deleted) WHERE is_deleted = FALSE;

		CREATE TABLE IF NOT EXISTS pedido_itens (
			id SERIAL PRIMARY KEY,
			pedido_id INT NOT NULL REFERENCES pedidos(id) ON DELETE CASCADE,
			produto_id INT NOT NULL REFERENCES produtos(id),
			formato_id INT NOT NULL REFERENCES formatos(id),
			cor_id INT NOT NULL REFERENCES cores(id),
			aroma_id INT NOT NULL REFERENCES aromas(id),
			embalagem_id INT NOT NULL REFERENCES embalagens(id),
			quantidade INT NOT NULL DEFAULT 1,
			is_deleted BOOLEAN NOT NULL DEFAULT FALSE,
			deleted_at TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS ix_pedido_itens_pedido_id ON pedido_itens (pedido_id);

		CREATE TABLE IF NOT EXISTS event_change_status (
			id SERIAL PRIMARY KEY,
			id_pedido INT NOT NULL,
			old_status INT NOT NULL,
			new_status INT NOT NULL,
			usuario_nome VARCHAR(200),
			usuario_email VARCHAR(200),
			data_criacao TIMESTAMP NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS ix_event_change_status_id_pedido ON event_change_status (id_pedido);

		CREATE TABLE IF NOT EXISTS usuarios (
			id SERIAL PRIMARY KEY,
			nome VARCHAR(200) NOT NULL DEFAULT '',
			email VARCHAR(200) NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			failed_logins INT NOT NULL DEFAULT 0,
			locked_until TIMESTAMP,
			data_criacao TIMESTAMP NOT NULL DEFAULT NOW(),
			ultimo_acesso TIMESTAMP
		);
	`)
	return err
}
