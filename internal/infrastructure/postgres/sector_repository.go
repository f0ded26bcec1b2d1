package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/repository"
)

var _ repository.SectorRepository = (*SectorRepo)(nil)

const sectorColumns = `id, name, supervisor_id, type, phase, production_capacity, actual_production, is_active, is_time_active, created_at, updated_at`

// SectorRepo implementación de SectorRepository sobre PostgreSQL (usable con pool o tx).
type SectorRepo struct {
	q Querier
}

// NewSectorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSectorRepository(q Querier) *SectorRepo {
	return &SectorRepo{q: q}
}

// Create persiste un sector nuevo.
func (r *SectorRepo) Create(s *entity.Sector) error {
	query := `
		INSERT INTO sectors (` + sectorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, s.SupervisorID, s.Type, phaseToNull(s.Phase),
		s.ProductionCapacity, s.ActualProduction, s.IsActive, s.IsTimeActive,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sector: %w", err)
	}
	return nil
}

// GetByID obtiene un sector por ID.
func (r *SectorRepo) GetByID(id string) (*entity.Sector, error) {
	return r.get(`SELECT `+sectorColumns+` FROM sectors WHERE id = $1`, id)
}

// GetForUpdate obtiene el sector y bloquea la fila (SELECT FOR UPDATE).
func (r *SectorRepo) GetForUpdate(id string) (*entity.Sector, error) {
	return r.get(`SELECT `+sectorColumns+` FROM sectors WHERE id = $1 FOR UPDATE`, id)
}

// GetActiveByPhase devuelve un sector activo con afinidad a la fase, nil si no hay.
func (r *SectorRepo) GetActiveByPhase(phase entity.Phase) (*entity.Sector, error) {
	query := `
		SELECT ` + sectorColumns + `
		FROM sectors
		WHERE is_active AND phase = $1
		ORDER BY actual_production ASC
		LIMIT 1`
	return r.get(query, string(phase))
}

func (r *SectorRepo) get(query string, arg any) (*entity.Sector, error) {
	var s entity.Sector
	var phase *string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&s.ID, &s.Name, &s.SupervisorID, &s.Type, &phase,
		&s.ProductionCapacity, &s.ActualProduction, &s.IsActive, &s.IsTimeActive,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sector: %w", err)
	}
	s.Phase = nullToPhase(phase)
	return &s, nil
}

// Update actualiza un sector.
func (r *SectorRepo) Update(s *entity.Sector) error {
	query := `
		UPDATE sectors
		SET name = $2, supervisor_id = $3, type = $4, phase = $5, production_capacity = $6,
		    actual_production = $7, is_active = $8, is_time_active = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, s.SupervisorID, s.Type, phaseToNull(s.Phase),
		s.ProductionCapacity, s.ActualProduction, s.IsActive, s.IsTimeActive, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sector: %w", err)
	}
	return nil
}

// List lista sectores con paginación, ordenados por nombre.
func (r *SectorRepo) List(limit, offset int) ([]*entity.Sector, error) {
	query := `SELECT ` + sectorColumns + ` FROM sectors ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sectors: %w", err)
	}
	defer rows.Close()

	var out []*entity.Sector
	for rows.Next() {
		var s entity.Sector
		var phase *string
		if err := rows.Scan(
			&s.ID, &s.Name, &s.SupervisorID, &s.Type, &phase,
			&s.ProductionCapacity, &s.ActualProduction, &s.IsActive, &s.IsTimeActive,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sector: %w", err)
		}
		s.Phase = nullToPhase(phase)
		out = append(out, &s)
	}
	return out, rows.Err()
}

func phaseToNull(p *entity.Phase) *string {
	if p == nil {
		return nil
	}
	s := string(*p)
	return &s
}

func nullToPhase(s *string) *entity.Phase {
	if s == nil {
		return nil
	}
	p := entity.Phase(*s)
	return &p
}
