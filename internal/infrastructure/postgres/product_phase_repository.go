package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/cerveceria-pro/internal/domain"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/repository"
)

var _ repository.ProductPhaseRepository = (*ProductPhaseRepo)(nil)

// ProductPhaseRepo plantillas de fase por producto y sus recetas (usable con pool o tx).
type ProductPhaseRepo struct {
	q Querier
}

// NewProductPhaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductPhaseRepository(q Querier) *ProductPhaseRepo {
	return &ProductPhaseRepo{q: q}
}

// Create persiste una plantilla de fase. El par (producto, fase) es único.
func (r *ProductPhaseRepo) Create(tpl *entity.ProductPhase) error {
	query := `
		INSERT INTO product_phases (id, product_id, phase, standard_output, output_unit, estimated_hours, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		tpl.ID, tpl.ProductID, string(tpl.Phase), tpl.StandardOutput,
		tpl.OutputUnit, tpl.EstimatedHours, tpl.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product phase: %w", err)
	}
	return nil
}

// GetByProductAndPhase obtiene la plantilla de un producto para una fase, nil si no existe.
func (r *ProductPhaseRepo) GetByProductAndPhase(productID string, phase entity.Phase) (*entity.ProductPhase, error) {
	query := `
		SELECT id, product_id, phase, standard_output, output_unit, estimated_hours, created_at
		FROM product_phases WHERE product_id = $1 AND phase = $2`
	var tpl entity.ProductPhase
	var phaseName string
	err := r.q.QueryRow(context.Background(), query, productID, string(phase)).Scan(
		&tpl.ID, &tpl.ProductID, &phaseName, &tpl.StandardOutput,
		&tpl.OutputUnit, &tpl.EstimatedHours, &tpl.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product phase: %w", err)
	}
	tpl.Phase = entity.Phase(phaseName)
	return &tpl, nil
}

// ListByProduct plantillas del producto con sus recetas, en orden de catálogo.
// El orden lo resuelve el dominio (Phase.Order), no la BD.
func (r *ProductPhaseRepo) ListByProduct(productID string) ([]*entity.ProductPhase, error) {
	query := `
		SELECT id, product_id, phase, standard_output, output_unit, estimated_hours, created_at
		FROM product_phases WHERE product_id = $1`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list product phases: %w", err)
	}
	defer rows.Close()

	var out []*entity.ProductPhase
	for rows.Next() {
		var tpl entity.ProductPhase
		var phaseName string
		if err := rows.Scan(
			&tpl.ID, &tpl.ProductID, &phaseName, &tpl.StandardOutput,
			&tpl.OutputUnit, &tpl.EstimatedHours, &tpl.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product phase: %w", err)
		}
		tpl.Phase = entity.Phase(phaseName)
		out = append(out, &tpl)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, tpl := range out {
		recipes, err := r.ListRecipes(tpl.ID)
		if err != nil {
			return nil, err
		}
		tpl.Recipes = recipes
	}
	sortByCatalogOrder(out)
	return out, nil
}

// AddRecipe agrega una línea de receta. El par (plantilla, material) es único.
func (r *ProductPhaseRepo) AddRecipe(line *entity.Recipe) error {
	query := `
		INSERT INTO recipes (id, product_phase_id, material_id, standard_quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.ProductPhaseID, line.MaterialID, line.StandardQuantity, line.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert recipe: %w", err)
	}
	return nil
}

// ListRecipes líneas de receta de una plantilla.
func (r *ProductPhaseRepo) ListRecipes(productPhaseID string) ([]*entity.Recipe, error) {
	query := `
		SELECT id, product_phase_id, material_id, standard_quantity, created_at
		FROM recipes WHERE product_phase_id = $1`
	rows, err := r.q.Query(context.Background(), query, productPhaseID)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	var out []*entity.Recipe
	for rows.Next() {
		var line entity.Recipe
		if err := rows.Scan(&line.ID, &line.ProductPhaseID, &line.MaterialID, &line.StandardQuantity, &line.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		out = append(out, &line)
	}
	return out, rows.Err()
}

// sortByCatalogOrder ordena plantillas por el orden del catálogo de fases.
func sortByCatalogOrder(list []*entity.ProductPhase) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].Phase.ComesBefore(list[j].Phase)
	})
}
