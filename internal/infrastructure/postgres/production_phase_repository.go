package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/repository"
)

var _ repository.ProductionPhaseRepository = (*ProductionPhaseRepo)(nil)

const productionPhaseColumns = `id, batch_id, phase, sector_id, status, standard_input, standard_output, input, output, start_date, end_date, created_at`

// ProductionPhaseRepo instancias de fase de un lote sobre PostgreSQL.
type ProductionPhaseRepo struct {
	q Querier
}

// NewProductionPhaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionPhaseRepository(q Querier) *ProductionPhaseRepo {
	return &ProductionPhaseRepo{q: q}
}

// Create persiste una instancia de fase.
func (r *ProductionPhaseRepo) Create(p *entity.ProductionPhase) error {
	query := `
		INSERT INTO production_phases (` + productionPhaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.BatchID, string(p.Phase), p.SectorID, p.Status,
		p.StandardInput, p.StandardOutput, p.Input, p.Output,
		p.StartDate, p.EndDate, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert production phase: %w", err)
	}
	return nil
}

// GetByID obtiene una instancia de fase por ID.
func (r *ProductionPhaseRepo) GetByID(id string) (*entity.ProductionPhase, error) {
	return r.get(`SELECT `+productionPhaseColumns+` FROM production_phases WHERE id = $1`, id)
}

// GetForUpdate obtiene la instancia y bloquea la fila (SELECT FOR UPDATE).
func (r *ProductionPhaseRepo) GetForUpdate(id string) (*entity.ProductionPhase, error) {
	return r.get(`SELECT `+productionPhaseColumns+` FROM production_phases WHERE id = $1 FOR UPDATE`, id)
}

func (r *ProductionPhaseRepo) get(query string, arg any) (*entity.ProductionPhase, error) {
	var p entity.ProductionPhase
	var phaseName string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.BatchID, &phaseName, &p.SectorID, &p.Status,
		&p.StandardInput, &p.StandardOutput, &p.Input, &p.Output,
		&p.StartDate, &p.EndDate, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production phase: %w", err)
	}
	p.Phase = entity.Phase(phaseName)
	return &p, nil
}

// Update actualiza una instancia de fase.
func (r *ProductionPhaseRepo) Update(p *entity.ProductionPhase) error {
	query := `
		UPDATE production_phases
		SET sector_id = $2, status = $3, standard_input = $4, standard_output = $5,
		    input = $6, output = $7, start_date = $8, end_date = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.SectorID, p.Status, p.StandardInput, p.StandardOutput,
		p.Input, p.Output, p.StartDate, p.EndDate,
	)
	if err != nil {
		return fmt.Errorf("update production phase: %w", err)
	}
	return nil
}

// ListByBatch instancias del lote en orden de catálogo. El orden lo resuelve
// el dominio (Phase.Order), no la BD.
func (r *ProductionPhaseRepo) ListByBatch(batchID string) ([]*entity.ProductionPhase, error) {
	query := `SELECT ` + productionPhaseColumns + ` FROM production_phases WHERE batch_id = $1`
	rows, err := r.q.Query(context.Background(), query, batchID)
	if err != nil {
		return nil, fmt.Errorf("list production phases: %w", err)
	}
	defer rows.Close()

	var out []*entity.ProductionPhase
	for rows.Next() {
		var p entity.ProductionPhase
		var phaseName string
		if err := rows.Scan(
			&p.ID, &p.BatchID, &phaseName, &p.SectorID, &p.Status,
			&p.StandardInput, &p.StandardOutput, &p.Input, &p.Output,
			&p.StartDate, &p.EndDate, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan production phase: %w", err)
		}
		p.Phase = entity.Phase(phaseName)
		out = append(out, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Phase.ComesBefore(out[j].Phase)
	})
	return out, nil
}
