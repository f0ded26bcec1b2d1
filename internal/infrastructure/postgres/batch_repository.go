package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

const batchColumns = `id, packaging, status, quantity, planned_date, created_at, start_date, completed_date`

// BatchRepo implementación de BatchRepository sobre PostgreSQL.
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

// Create persiste un lote nuevo.
func (r *BatchRepo) Create(b *entity.Batch) error {
	query := `
		INSERT INTO batches (` + batchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.Packaging, b.Status, b.Quantity, b.PlannedDate,
		b.CreatedAt, b.StartDate, b.CompletedDate,
	)
	if err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *BatchRepo) GetByID(id string) (*entity.Batch, error) {
	return r.get(`SELECT `+batchColumns+` FROM batches WHERE id = $1`, id)
}

// GetForUpdate obtiene el lote y bloquea la fila (SELECT FOR UPDATE). Una
// cancelación y un inicio de fase concurrentes sobre el mismo lote serializan aquí.
func (r *BatchRepo) GetForUpdate(id string) (*entity.Batch, error) {
	return r.get(`SELECT `+batchColumns+` FROM batches WHERE id = $1 FOR UPDATE`, id)
}

func (r *BatchRepo) get(query string, arg any) (*entity.Batch, error) {
	var b entity.Batch
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&b.ID, &b.Packaging, &b.Status, &b.Quantity, &b.PlannedDate,
		&b.CreatedAt, &b.StartDate, &b.CompletedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return &b, nil
}

// Update actualiza un lote.
func (r *BatchRepo) Update(b *entity.Batch) error {
	query := `
		UPDATE batches
		SET packaging = $2, status = $3, quantity = $4, planned_date = $5,
		    start_date = $6, completed_date = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.Packaging, b.Status, b.Quantity, b.PlannedDate, b.StartDate, b.CompletedDate,
	)
	if err != nil {
		return fmt.Errorf("update batch: %w", err)
	}
	return nil
}

// List lista lotes, opcionalmente filtrados por estado, más reciente primero.
func (r *BatchRepo) List(status string, limit, offset int) ([]*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = append(args, status, limit, offset)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	var out []*entity.Batch
	for rows.Next() {
		var b entity.Batch
		if err := rows.Scan(
			&b.ID, &b.Packaging, &b.Status, &b.Quantity, &b.PlannedDate,
			&b.CreatedAt, &b.StartDate, &b.CompletedDate,
		); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		out = append(out, &b)
	}
	return out, rows.Err()
}
