package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/omg-lab/omg-backend/internal/entity"
	"github.com/omg-lab/omg-backend/internal/repository"
)

// tableFor maps each catalog kind to its table and label column. The
// identifiers are interpolated into SQL, so they must stay a closed set.
var tableFor = map[entity.CatalogKind]struct{ table, label string }{
	entity.KindProduto:   {"produtos", "descricao"},
	entity.KindFormato:   {"formatos", "descricao"},
	entity.KindCor:       {"cores", "nome"},
	entity.KindAroma:     {"aromas", "nome"},
	entity.KindEmbalagem: {"embalagens", "descricao"},
}

type catalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a CatalogRepository backed by Postgres.
func NewCatalogRepository(db *sql.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

func kindSQL(kind entity.CatalogKind) (table, label string, err error) {
	t, ok := tableFor[kind]
	if !ok {
		return "", "", fmt.Errorf("unknown catalog kind %q", kind)
	}
	return t.table, t.label, nil
}

func (r *catalogRepository) Get(ctx context.Context, kind entity.CatalogKind, id int) (*entity.CatalogItem, error) {
	table, label, err := kindSQL(kind)
	if err != nil {
		return nil, err
	}

	var item entity.CatalogItem
	err = r.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT id, %s FROM %s WHERE id = $1 AND is_deleted = FALSE", label, table),
		id,
	).Scan(&item.ID, &item.Label)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query %s %d: %w", table, id, err)
	}
	return &item, nil
}

func (r *catalogRepository) FindByNormalizedLabel(ctx context.Context, kind entity.CatalogKind, labelValue string) (*entity.CatalogItem, error) {
	table, label, err := kindSQL(kind)
	if err != nil {
		return nil, err
	}

	var item entity.CatalogItem
	err = r.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT id, %s FROM %s WHERE is_deleted = FALSE AND LOWER(TRIM(%s)) = LOWER(TRIM($1)) LIMIT 1", label, table, label),
		labelValue,
	).Scan(&item.ID, &item.Label)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query %s by label: %w", table, err)
	}
	return &item, nil
}

func (r *catalogRepository) FindAll(ctx context.Context, kind entity.CatalogKind) ([]entity.CatalogItem, error) {
	table, label, err := kindSQL(kind)
	if err != nil {
		return nil, err
	}
	return r.queryItems(ctx, table,
		fmt.Sprintf("SELECT id, %s FROM %s WHERE is_deleted = FALSE ORDER BY %s", label, table, label))
}

func (r *catalogRepository) Search(ctx context.Context, kind entity.CatalogKind, key string) ([]entity.CatalogItem, error) {
	table, label, err := kindSQL(kind)
	if err != nil {
		return nil, err
	}
	return r.queryItems(ctx, table,
		fmt.Sprintf("SELECT id, %s FROM %s WHERE is_deleted = FALSE AND %s ILIKE '%%' || $1 || '%%' ORDER BY %s", label, table, label, label),
		key)
}

func (r *catalogRepository) queryItems(ctx context.Context, table, query string, args ...any) ([]entity.CatalogItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	var items []entity.CatalogItem
	for rows.Next() {
		var item entity.CatalogItem
		if err := rows.Scan(&item.ID, &item.Label); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *catalogRepository) Create(ctx context.Context, kind entity.CatalogKind, item *entity.CatalogItem) error {
	table, label, err := kindSQL(kind)
	if err != nil {
		return err
	}

	err = r.db.QueryRowContext(ctx,
		fmt.Sprintf("INSERT INTO %s (%s) VALUES ($1) RETURNING id", table, label),
		item.Label,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return nil
}

func (r *catalogRepository) Update(ctx context.Context, kind entity.CatalogKind, item *entity.CatalogItem) error {
	table, label, err := kindSQL(kind)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx,
		fmt.Sprintf("UPDATE %s SET %s = $1 WHERE id = $2 AND is_deleted = FALSE", table, label),
		item.Label, item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update %s %d: %w", table, item.ID, err)
	}
	return affectedOrNotFound(res)
}

func (r *catalogRepository) Delete(ctx context.Context, kind entity.CatalogKind, id int) error {
	table, _, err := kindSQL(kind)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx,
		fmt.Sprintf("UPDATE %s SET is_deleted = TRUE, deleted_at = $1 WHERE id = $2 AND is_deleted = FALSE", table),
		time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete %s %d: %w", table, id, err)
	}
	return affectedOrNotFound(res)
}
