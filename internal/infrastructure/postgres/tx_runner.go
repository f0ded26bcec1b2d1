package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/cerveceria-pro/internal/application/materials"
	"github.com/tu-usuario/cerveceria-pro/internal/application/production"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/repository"
)

// Ensure TxRunner implements materials.TxRunner and production.TxRunner.
var _ materials.TxRunner = (*TxRunner)(nil)
var _ production.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con el repo de materiales atado a la
// tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(materialRepo repository.MaterialRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewMaterialRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunProduction inicia una transacción con el juego completo de repos que usa
// el motor de producción (órdenes, lotes, fases, reservas, calidad).
func (r *TxRunner) RunProduction(ctx context.Context, fn func(repos production.Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := production.Repos{
		Orders:         NewProductionOrderRepository(tx),
		Batches:        NewBatchRepository(tx),
		Phases:         NewProductionPhaseRepository(tx),
		PhaseMaterials: NewProductionMaterialRepository(tx),
		Materials:      NewMaterialRepository(tx),
		Sectors:        NewSectorRepository(tx),
		Products:       NewProductRepository(tx),
		ProductPhases:  NewProductPhaseRepository(tx),
		Quality:        NewQualityRepository(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
