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

var _ repository.QualityRepository = (*QualityRepo)(nil)

const qualityParamColumns = `id, phase, name, description, min_value, max_value, is_critical, is_active, version, created_at`
const qualityValueColumns = `id, production_phase_id, quality_parameter_id, value, is_approved, recorded_by, created_at`

// QualityRepo parámetros de calidad y valores por instancia de fase sobre PostgreSQL.
type QualityRepo struct {
	q Querier
}

// NewQualityRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQualityRepository(q Querier) *QualityRepo {
	return &QualityRepo{q: q}
}

// CreateParameter persiste un parámetro de calidad.
func (r *QualityRepo) CreateParameter(p *entity.QualityParameter) error {
	query := `
		INSERT INTO quality_parameters (` + qualityParamColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, string(p.Phase), p.Name, p.Description, p.MinValue, p.MaxValue,
		p.IsCritical, p.IsActive, p.Version, p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert quality parameter: %w", err)
	}
	return nil
}

// GetParameterByID obtiene un parámetro por ID, nil si no existe.
func (r *QualityRepo) GetParameterByID(id string) (*entity.QualityParameter, error) {
	query := `SELECT ` + qualityParamColumns + ` FROM quality_parameters WHERE id = $1`
	var p entity.QualityParameter
	var phaseName string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &phaseName, &p.Name, &p.Description, &p.MinValue, &p.MaxValue,
		&p.IsCritical, &p.IsActive, &p.Version, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quality parameter: %w", err)
	}
	p.Phase = entity.Phase(phaseName)
	return &p, nil
}

// ListParametersByPhase parámetros activos definidos para una fase del catálogo.
func (r *QualityRepo) ListParametersByPhase(phase entity.Phase) ([]*entity.QualityParameter, error) {
	query := `
		SELECT ` + qualityParamColumns + `
		FROM quality_parameters WHERE phase = $1 AND is_active ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, string(phase))
	if err != nil {
		return nil, fmt.Errorf("list quality parameters: %w", err)
	}
	defer rows.Close()

	var out []*entity.QualityParameter
	for rows.Next() {
		var p entity.QualityParameter
		var phaseName string
		if err := rows.Scan(
			&p.ID, &phaseName, &p.Name, &p.Description, &p.MinValue, &p.MaxValue,
			&p.IsCritical, &p.IsActive, &p.Version, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan quality parameter: %w", err)
		}
		p.Phase = entity.Phase(phaseName)
		out = append(out, &p)
	}
	return out, rows.Err()
}

// RecordValue persiste un valor medido para una instancia de fase.
func (r *QualityRepo) RecordValue(v *entity.ProductionPhaseQuality) error {
	query := `
		INSERT INTO production_phase_qualities (` + qualityValueColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.ProductionPhaseID, v.QualityParameterID, v.Value,
		v.IsApproved, v.RecordedBy, v.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert quality value: %w", err)
	}
	return nil
}

// GetValueByID obtiene un valor registrado por ID, nil si no existe.
func (r *QualityRepo) GetValueByID(id string) (*entity.ProductionPhaseQuality, error) {
	query := `SELECT ` + qualityValueColumns + ` FROM production_phase_qualities WHERE id = $1`
	var v entity.ProductionPhaseQuality
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.ProductionPhaseID, &v.QualityParameterID, &v.Value,
		&v.IsApproved, &v.RecordedBy, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quality value: %w", err)
	}
	return &v, nil
}

// ApproveValue marca un valor como aprobado.
func (r *QualityRepo) ApproveValue(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE production_phase_qualities SET is_approved = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("approve quality value: %w", err)
	}
	return nil
}

// ListValuesByPhaseInstance valores registrados para una instancia de fase.
func (r *QualityRepo) ListValuesByPhaseInstance(productionPhaseID string) ([]*entity.ProductionPhaseQuality, error) {
	query := `
		SELECT ` + qualityValueColumns + `
		FROM production_phase_qualities WHERE production_phase_id = $1 ORDER BY created_at`
	return r.listValues(query, productionPhaseID)
}

// ListUnapprovedCritical valores de parámetros críticos aún sin aprobar. Si
// devuelve filas, la fase no puede aprobarse.
func (r *QualityRepo) ListUnapprovedCritical(productionPhaseID string) ([]*entity.ProductionPhaseQuality, error) {
	query := `
		SELECT v.id, v.production_phase_id, v.quality_parameter_id, v.value, v.is_approved, v.recorded_by, v.created_at
		FROM production_phase_qualities v
		JOIN quality_parameters p ON p.id = v.quality_parameter_id
		WHERE v.production_phase_id = $1 AND p.is_critical AND NOT v.is_approved`
	return r.listValues(query, productionPhaseID)
}

func (r *QualityRepo) listValues(query string, arg any) ([]*entity.ProductionPhaseQuality, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list quality values: %w", err)
	}
	defer rows.Close()

	var out []*entity.ProductionPhaseQuality
	for rows.Next() {
		var v entity.ProductionPhaseQuality
		if err := rows.Scan(
			&v.ID, &v.ProductionPhaseID, &v.QualityParameterID, &v.Value,
			&v.IsApproved, &v.RecordedBy, &v.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan quality value: %w", err)
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}
