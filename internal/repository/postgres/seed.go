package postgres

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// SeedClientes inserts a starter cliente so a fresh database has
// something to hang the first pedido on. No-op when clientes exist.
func SeedClientes(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM clientes WHERE is_deleted = FALSE").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	_, err := db.Exec(
		"INSERT INTO clientes (nome, telefone, endereco) VALUES ($1, $2, $3)",
		"Cliente Exemplo", "(00) 00000-0000", "Endereço de exemplo, 100",
	)
	if err != nil {
		return fmt.Errorf("failed to seed clientes: %w", err)
	}

	slog.Info("Seeded clientes", "count", 1)
	return nil
}
