package production

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cerveceria-pro/internal/application/dto"
	"github.com/tu-usuario/cerveceria-pro/internal/domain"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/capacity"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/ledger"
)

// StartPhase inicia una instancia de fase: PENDING -> IN_PROGRESS. Solo puede
// iniciar la instancia de menor orden aún no aprobada de su lote, y nunca en un
// lote cancelado. Reserva cada línea de receta escalada por la cantidad del
// lote; si alguna reserva falla por stock insuficiente, las reservas parciales
// hechas en esta misma llamada se devuelven explícitamente antes de propagar el
// error (todo o nada por fase). Al iniciar, la carga del sector asignado sube
// por la salida estándar de la fase; superar la capacidad declarada solo genera
// una advertencia.
func (e *Engine) StartPhase(ctx context.Context, phaseID string) (*dto.ProductionPhaseResponse, error) {
	var out *dto.ProductionPhaseResponse
	err := e.txRunner.RunProduction(ctx, func(r Repos) error {
		instance, err := r.Phases.GetForUpdate(phaseID)
		if err != nil {
			return err
		}
		if instance == nil {
			return domain.ErrNotFound
		}
		batch, err := r.Batches.GetForUpdate(instance.BatchID)
		if err != nil {
			return err
		}
		if batch == nil {
			return domain.ErrNotFound
		}
		// Un lote cancelado corta cualquier inicio en curso, incluso si la
		// cancelación llegó entre la petición y esta transacción.
		if batch.IsTerminal() {
			return domain.ErrInvalidTransition
		}
		if instance.Status != entity.PhaseStatusPending {
			return domain.ErrInvalidTransition
		}
		siblings, err := r.Phases.ListByBatch(instance.BatchID)
		if err != nil {
			return err
		}
		for _, sibling := range siblings {
			if sibling.Phase.ComesBefore(instance.Phase) && sibling.Status != entity.PhaseStatusApproved {
				return domain.ErrInvalidTransition
			}
		}

		if err := e.reserveRecipeMaterials(r, instance, batch); err != nil {
			return err
		}
		if err := e.commitSectorLoad(r, instance); err != nil {
			return err
		}

		now := time.Now()
		instance.Status = entity.PhaseStatusInProgress
		instance.StartDate = &now
		if err := r.Phases.Update(instance); err != nil {
			return err
		}
		out = toPhaseResponse(instance)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// reserveRecipeMaterials reserva cada línea de receta de la plantilla de la
// fase, escalada por la cantidad del lote, y registra la reserva real. Si una
// línea falla, devuelve las reservas ya hechas en esta llamada y propaga.
func (e *Engine) reserveRecipeMaterials(r Repos, instance *entity.ProductionPhase, batch *entity.Batch) error {
	order, err := r.Orders.GetByBatchID(batch.ID)
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("orden del lote %s: %w", batch.ID, domain.ErrNotFound)
	}
	tpl, err := r.ProductPhases.GetByProductAndPhase(order.ProductID, instance.Phase)
	if err != nil {
		return err
	}
	if tpl == nil {
		return nil // fase sin plantilla: nada que reservar
	}
	recipes, err := r.ProductPhases.ListRecipes(tpl.ID)
	if err != nil {
		return err
	}

	type reserved struct {
		material *entity.Material
		amount   decimal.Decimal
	}
	var done []reserved

	unwind := func() {
		// Devolución explícita de lo reservado en esta misma llamada; las
		// filas siguen bloqueadas por la transacción en curso.
		for _, res := range done {
			if rErr := ledger.Return(res.material, res.amount); rErr == nil {
				_ = r.Materials.Update(res.material)
			}
		}
	}

	now := time.Now()
	for _, recipe := range recipes {
		amount := recipe.StandardQuantity.Mul(batch.Quantity)
		if !amount.GreaterThan(decimal.Zero) {
			continue
		}
		material, err := r.Materials.GetForUpdate(recipe.MaterialID)
		if err != nil {
			unwind()
			return err
		}
		if material == nil {
			unwind()
			return fmt.Errorf("material %s de la receta: %w", recipe.MaterialID, domain.ErrNotFound)
		}
		if err := ledger.Reserve(material, amount); err != nil {
			unwind()
			return fmt.Errorf("reservar %s de %s: %w", amount, material.Code, err)
		}
		material.UpdatedAt = now
		if err := r.Materials.Update(material); err != nil {
			unwind()
			return err
		}
		row := &entity.ProductionMaterial{
			ID:                uuid.New().String(),
			ProductionPhaseID: instance.ID,
			MaterialID:        material.ID,
			Quantity:          amount,
			CreatedAt:         now,
		}
		if err := r.PhaseMaterials.Create(row); err != nil {
			unwind()
			return err
		}
		done = append(done, reserved{material: material, amount: amount})
	}
	return nil
}

// commitSectorLoad sube la carga comprometida del sector asignado por la salida
// estándar de la fase. La capacidad declarada es informativa: se advierte por
// log, no se bloquea.
func (e *Engine) commitSectorLoad(r Repos, instance *entity.ProductionPhase) error {
	sector, err := r.Sectors.GetForUpdate(instance.SectorID)
	if err != nil {
		return err
	}
	if sector == nil {
		return fmt.Errorf("sector %s de la fase: %w", instance.SectorID, domain.ErrNotFound)
	}
	if sector.WouldExceedCapacity(instance.StandardOutput) {
		e.log.Warn().
			Str("sector_id", sector.ID).
			Str("sector", sector.Name).
			Str("fase", string(instance.Phase)).
			Str("carga_actual", sector.ActualProduction.String()).
			Str("incremento", instance.StandardOutput.String()).
			Msg("capacidad de sector superada")
	}
	if err := capacity.Increase(sector, instance.StandardOutput); err != nil {
		return err
	}
	sector.UpdatedAt = time.Now()
	return r.Sectors.Update(sector)
}

// releaseSectorLoad baja la carga comprometida del sector por la salida
// estándar de la fase, acotada en cero.
func (e *Engine) releaseSectorLoad(r Repos, instance *entity.ProductionPhase) error {
	sector, err := r.Sectors.GetForUpdate(instance.SectorID)
	if err != nil {
		return err
	}
	if sector == nil {
		return fmt.Errorf("sector %s de la fase: %w", instance.SectorID, domain.ErrNotFound)
	}
	if err := capacity.Decrease(sector, instance.StandardOutput); err != nil {
		return err
	}
	sector.UpdatedAt = time.Now()
	return r.Sectors.Update(sector)
}

// SetUnderReview envía la fase a revisión: IN_PROGRESS -> UNDER_REVIEW,
// registrando las cantidades reales de entrada y salida.
func (e *Engine) SetUnderReview(ctx context.Context, phaseID string, input, output decimal.Decimal) (*dto.ProductionPhaseResponse, error) {
	if input.IsNegative() || output.IsNegative() {
		return nil, domain.ErrInvalidQuantity
	}
	var out *dto.ProductionPhaseResponse
	err := e.txRunner.RunProduction(ctx, func(r Repos) error {
		instance, err := r.Phases.GetForUpdate(phaseID)
		if err != nil {
			return err
		}
		if instance == nil {
			return domain.ErrNotFound
		}
		if instance.Status != entity.PhaseStatusInProgress {
			return domain.ErrInvalidTransition
		}
		instance.Status = entity.PhaseStatusUnderReview
		instance.Input = &input
		instance.Output = &output
		if err := r.Phases.Update(instance); err != nil {
			return err
		}
		out = toPhaseResponse(instance)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ApprovePhase aprueba la fase: UNDER_REVIEW -> APPROVED, solo si no queda
// ningún parámetro de calidad crítico sin aprobar. Aprobar la última fase del
// lote lo completa (COMPLETADO, con fecha); aprobar cualquier otra lo mueve de
// PENDIENTE a EN_PROCESO la primera vez.
func (e *Engine) ApprovePhase(ctx context.Context, phaseID string) (*dto.ProductionPhaseResponse, error) {
	var out *dto.ProductionPhaseResponse
	err := e.txRunner.RunProduction(ctx, func(r Repos) error {
		instance, err := r.Phases.GetForUpdate(phaseID)
		if err != nil {
			return err
		}
		if instance == nil {
			return domain.ErrNotFound
		}
		if instance.Status != entity.PhaseStatusUnderReview {
			return domain.ErrInvalidTransition
		}
		pending, err := r.Quality.ListUnapprovedCritical(instance.ID)
		if err != nil {
			return err
		}
		if len(pending) > 0 {
			return fmt.Errorf("%d parámetro(s) crítico(s) pendientes: %w", len(pending), domain.ErrQualityGateBlocked)
		}

		now := time.Now()
		instance.Status = entity.PhaseStatusApproved
		instance.EndDate = &now
		if err := r.Phases.Update(instance); err != nil {
			return err
		}

		batch, err := r.Batches.GetForUpdate(instance.BatchID)
		if err != nil {
			return err
		}
		if batch == nil {
			return domain.ErrNotFound
		}
		siblings, err := r.Phases.ListByBatch(instance.BatchID)
		if err != nil {
			return err
		}
		if isLastPhaseOfBatch(instance, siblings) {
			if batch.StartDate == nil {
				batch.StartDate = &now
			}
			batch.Status = entity.BatchStatusCompletado
			batch.CompletedDate = &now
			if err := r.Batches.Update(batch); err != nil {
				return err
			}
		} else if batch.Status == entity.BatchStatusPendiente {
			batch.Status = entity.BatchStatusEnProceso
			batch.StartDate = &now
			if err := r.Batches.Update(batch); err != nil {
				return err
			}
		}
		out = toPhaseResponse(instance)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RejectPhase rechaza la fase: UNDER_REVIEW -> REJECTED. Devuelve al stock las
// reservas no consumidas de la instancia y libera la carga del sector.
func (e *Engine) RejectPhase(ctx context.Context, phaseID string) (*dto.ProductionPhaseResponse, error) {
	var out *dto.ProductionPhaseResponse
	err := e.txRunner.RunProduction(ctx, func(r Repos) error {
		instance, err := r.Phases.GetForUpdate(phaseID)
		if err != nil {
			return err
		}
		if instance == nil {
			return domain.ErrNotFound
		}
		if instance.Status != entity.PhaseStatusUnderReview {
			return domain.ErrInvalidTransition
		}
		if err := e.releaseReservations(r, instance); err != nil {
			return err
		}
		if err := e.releaseSectorLoad(r, instance); err != nil {
			return err
		}
		now := time.Now()
		instance.Status = entity.PhaseStatusRejected
		instance.EndDate = &now
		if err := r.Phases.Update(instance); err != nil {
			return err
		}
		out = toPhaseResponse(instance)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// isLastPhaseOfBatch indica si la instancia es la de mayor orden de su lote.
func isLastPhaseOfBatch(instance *entity.ProductionPhase, siblings []*entity.ProductionPhase) bool {
	for _, sibling := range siblings {
		if instance.Phase.ComesBefore(sibling.Phase) {
			return false
		}
	}
	return true
}
