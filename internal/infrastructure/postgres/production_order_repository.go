package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/repository"
)

var _ repository.ProductionOrderRepository = (*ProductionOrderRepo)(nil)

const orderColumns = `id, product_id, batch_id, status, quantity, return_reason, created_at, validation_date, created_by, approved_by`

// ProductionOrderRepo implementación de ProductionOrderRepository sobre PostgreSQL.
type ProductionOrderRepo struct {
	q Querier
}

// NewProductionOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionOrderRepository(q Querier) *ProductionOrderRepo {
	return &ProductionOrderRepo{q: q}
}

// Create persiste una orden nueva.
func (r *ProductionOrderRepo) Create(o *entity.ProductionOrder) error {
	query := `
		INSERT INTO production_orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.ProductID, o.BatchID, o.Status, o.Quantity, o.ReturnReason,
		o.CreatedAt, o.ValidationDate, o.CreatedBy, o.ApprovedBy,
	)
	if err != nil {
		return fmt.Errorf("insert production order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *ProductionOrderRepo) GetByID(id string) (*entity.ProductionOrder, error) {
	return r.get(`SELECT `+orderColumns+` FROM production_orders WHERE id = $1`, id)
}

// GetByBatchID obtiene la orden dueña de un lote (relación 1:1).
func (r *ProductionOrderRepo) GetByBatchID(batchID string) (*entity.ProductionOrder, error) {
	return r.get(`SELECT `+orderColumns+` FROM production_orders WHERE batch_id = $1`, batchID)
}

// GetForUpdate obtiene la orden y bloquea la fila (SELECT FOR UPDATE).
func (r *ProductionOrderRepo) GetForUpdate(id string) (*entity.ProductionOrder, error) {
	return r.get(`SELECT `+orderColumns+` FROM production_orders WHERE id = $1 FOR UPDATE`, id)
}

func (r *ProductionOrderRepo) get(query string, arg any) (*entity.ProductionOrder, error) {
	var o entity.ProductionOrder
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&o.ID, &o.ProductID, &o.BatchID, &o.Status, &o.Quantity, &o.ReturnReason,
		&o.CreatedAt, &o.ValidationDate, &o.CreatedBy, &o.ApprovedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production order: %w", err)
	}
	return &o, nil
}

// Update actualiza una orden.
func (r *ProductionOrderRepo) Update(o *entity.ProductionOrder) error {
	query := `
		UPDATE production_orders
		SET status = $2, return_reason = $3, validation_date = $4, approved_by = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.Status, o.ReturnReason, o.ValidationDate, o.ApprovedBy,
	)
	if err != nil {
		return fmt.Errorf("update production order: %w", err)
	}
	return nil
}

// List lista órdenes, opcionalmente filtradas por estado, más reciente primero.
func (r *ProductionOrderRepo) List(status string, limit, offset int) ([]*entity.ProductionOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM production_orders`
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
		return nil, fmt.Errorf("list production orders: %w", err)
	}
	defer rows.Close()

	var out []*entity.ProductionOrder
	for rows.Next() {
		var o entity.ProductionOrder
		if err := rows.Scan(
			&o.ID, &o.ProductID, &o.BatchID, &o.Status, &o.Quantity, &o.ReturnReason,
			&o.CreatedAt, &o.ValidationDate, &o.CreatedBy, &o.ApprovedBy,
		); err != nil {
			return nil, fmt.Errorf("scan production order: %w", err)
		}
		out = append(out, &o)
	}
	return out, rows.Err()
}
