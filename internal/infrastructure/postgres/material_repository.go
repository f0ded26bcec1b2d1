package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/cerveceria-pro/internal/domain"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

const materialColumns = `id, code, name, supplier, unit, stock, reserved_stock, threshold, is_active, created_at, updated_at`

// MaterialRepo implementación de MaterialRepository sobre PostgreSQL (usable con pool o tx).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

// Create persiste una materia prima nueva.
func (r *MaterialRepo) Create(m *entity.Material) error {
	query := `
		INSERT INTO materials (` + materialColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Code, m.Name, m.Supplier, m.Unit,
		m.Stock, m.ReservedStock, m.Threshold, m.IsActive, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// GetByID obtiene una materia prima por ID.
func (r *MaterialRepo) GetByID(id string) (*entity.Material, error) {
	return r.get(`SELECT `+materialColumns+` FROM materials WHERE id = $1`, id)
}

// GetByCode obtiene una materia prima por código.
func (r *MaterialRepo) GetByCode(code string) (*entity.Material, error) {
	return r.get(`SELECT `+materialColumns+` FROM materials WHERE code = $1`, code)
}

// GetForUpdate obtiene la materia prima y bloquea la fila (SELECT FOR UPDATE).
// Las reservas concurrentes sobre el mismo material serializan aquí.
func (r *MaterialRepo) GetForUpdate(id string) (*entity.Material, error) {
	return r.get(`SELECT `+materialColumns+` FROM materials WHERE id = $1 FOR UPDATE`, id)
}

func (r *MaterialRepo) get(query string, arg any) (*entity.Material, error) {
	var m entity.Material
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&m.ID, &m.Code, &m.Name, &m.Supplier, &m.Unit,
		&m.Stock, &m.ReservedStock, &m.Threshold, &m.IsActive, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return &m, nil
}

// Update actualiza la materia prima. El código no se toca: es inmutable.
func (r *MaterialRepo) Update(m *entity.Material) error {
	query := `
		UPDATE materials
		SET name = $2, supplier = $3, unit = $4, stock = $5, reserved_stock = $6,
		    threshold = $7, is_active = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Name, m.Supplier, m.Unit, m.Stock, m.ReservedStock,
		m.Threshold, m.IsActive, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update material: %w", err)
	}
	return nil
}

// List lista materias primas con paginación, ordenadas por código.
func (r *MaterialRepo) List(limit, offset int) ([]*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials ORDER BY code LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListBelowThreshold materias primas activas en o por debajo del umbral.
func (r *MaterialRepo) ListBelowThreshold() ([]*entity.Material, error) {
	query := `
		SELECT ` + materialColumns + `
		FROM materials
		WHERE is_active AND stock <= threshold
		ORDER BY code`
	return r.list(query)
}

func (r *MaterialRepo) list(query string, args ...any) ([]*entity.Material, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()

	var out []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(
			&m.ID, &m.Code, &m.Name, &m.Supplier, &m.Unit,
			&m.Stock, &m.ReservedStock, &m.Threshold, &m.IsActive, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}
