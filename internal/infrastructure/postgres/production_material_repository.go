package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/cerveceria-pro/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/repository"
)

var _ repository.ProductionMaterialRepository = (*ProductionMaterialRepo)(nil)

// ProductionMaterialRepo reservas reales de material por instancia de fase.
type ProductionMaterialRepo struct {
	q Querier
}

// NewProductionMaterialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionMaterialRepository(q Querier) *ProductionMaterialRepo {
	return &ProductionMaterialRepo{q: q}
}

// Create persiste una reserva de material.
func (r *ProductionMaterialRepo) Create(pm *entity.ProductionMaterial) error {
	query := `
		INSERT INTO production_materials (id, production_phase_id, material_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		pm.ID, pm.ProductionPhaseID, pm.MaterialID, pm.Quantity, pm.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert production material: %w", err)
	}
	return nil
}

// ListByPhase reservas registradas para una instancia de fase.
func (r *ProductionMaterialRepo) ListByPhase(productionPhaseID string) ([]*entity.ProductionMaterial, error) {
	query := `
		SELECT id, production_phase_id, material_id, quantity, created_at
		FROM production_materials WHERE production_phase_id = $1`
	rows, err := r.q.Query(context.Background(), query, productionPhaseID)
	if err != nil {
		return nil, fmt.Errorf("list production materials: %w", err)
	}
	defer rows.Close()

	var out []*entity.ProductionMaterial
	for rows.Next() {
		var pm entity.ProductionMaterial
		if err := rows.Scan(&pm.ID, &pm.ProductionPhaseID, &pm.MaterialID, &pm.Quantity, &pm.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan production material: %w", err)
		}
		out = append(out, &pm)
	}
	return out, rows.Err()
}
