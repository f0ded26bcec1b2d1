package production

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cerveceria-pro/internal/application/dto"
	"github.com/tu-usuario/cerveceria-pro/internal/domain"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/ledger"
)

// CreateOrderInput entrada para crear una orden de producción.
type CreateOrderInput struct {
	ProductID   string
	Quantity    decimal.Decimal
	Packaging   string
	PlannedDate time.Time
	CreatedBy   string
}

// CreateProductionOrder crea la orden en PENDING junto con su lote en PENDIENTE
// y una instancia de fase por cada fase aplicable del producto que tenga
// plantilla, con cantidades estándar escaladas por la cantidad solicitada.
// El sector de cada instancia se asigna por afinidad de fase.
func (e *Engine) CreateProductionOrder(ctx context.Context, in CreateOrderInput) (*dto.ProductionOrderResponse, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidQuantity
	}

	var out *dto.ProductionOrderResponse
	err := e.txRunner.RunProduction(ctx, func(r Repos) error {
		product, err := r.Products.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if !product.IsActive {
			return fmt.Errorf("producto inactivo: %w", domain.ErrConflict)
		}
		templates, err := r.ProductPhases.ListByProduct(in.ProductID)
		if err != nil {
			return err
		}
		product.Phases = templates

		now := time.Now()
		batch := &entity.Batch{
			ID:          uuid.New().String(),
			Packaging:   in.Packaging,
			Status:      entity.BatchStatusPendiente,
			Quantity:    in.Quantity,
			PlannedDate: in.PlannedDate,
			CreatedAt:   now,
		}
		order := &entity.ProductionOrder{
			ID:        uuid.New().String(),
			ProductID: in.ProductID,
			BatchID:   batch.ID,
			Status:    entity.OrderStatusPending,
			Quantity:  in.Quantity,
			CreatedAt: now,
			CreatedBy: in.CreatedBy,
		}
		if err := r.Batches.Create(batch); err != nil {
			return err
		}
		if err := r.Orders.Create(order); err != nil {
			return err
		}

		// La entrada estándar de cada fase es la salida de la anterior;
		// la primera arranca con su propia salida escalada.
		prevOutput := decimal.Zero
		first := true
		for _, phase := range product.ApplicablePhases() {
			tpl := product.PhaseTemplate(phase)
			if tpl == nil {
				continue // el producto no declara esta fase
			}
			stdOutput := tpl.StandardOutput.Mul(in.Quantity)
			stdInput := prevOutput
			if first {
				stdInput = stdOutput
				first = false
			}
			sector, err := r.Sectors.GetActiveByPhase(phase)
			if err != nil {
				return err
			}
			if sector == nil {
				return fmt.Errorf("sin sector activo para la fase %s: %w", phase, domain.ErrConflict)
			}
			instance := &entity.ProductionPhase{
				ID:             uuid.New().String(),
				BatchID:        batch.ID,
				Phase:          phase,
				SectorID:       sector.ID,
				Status:         entity.PhaseStatusPending,
				StandardInput:  stdInput,
				StandardOutput: stdOutput,
				CreatedAt:      now,
			}
			if err := r.Phases.Create(instance); err != nil {
				return err
			}
			prevOutput = stdOutput
		}

		out = toOrderResponse(order)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ApproveOrder aprueba una orden: PENDING -> APPROVED, estampa fecha de
// validación y usuario aprobador. No toca el estado del lote.
func (e *Engine) ApproveOrder(ctx context.Context, orderID, approvedBy string) (*dto.ProductionOrderResponse, error) {
	var out *dto.ProductionOrderResponse
	err := e.txRunner.RunProduction(ctx, func(r Repos) error {
		order, err := r.Orders.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.OrderStatusPending {
			return domain.ErrInvalidTransition
		}
		now := time.Now()
		order.Status = entity.OrderStatusApproved
		order.ValidationDate = &now
		order.ApprovedBy = approvedBy
		if err := r.Orders.Update(order); err != nil {
			return err
		}
		out = toOrderResponse(order)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReturnOrder devuelve una orden: PENDING -> RETURNED. Cancela el lote asociado,
// suspende las instancias de fase restantes y devuelve al stock toda reserva
// pendiente de esas instancias.
func (e *Engine) ReturnOrder(ctx context.Context, orderID, reason string) (*dto.ProductionOrderResponse, error) {
	var out *dto.ProductionOrderResponse
	err := e.txRunner.RunProduction(ctx, func(r Repos) error {
		order, err := r.Orders.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.OrderStatusPending {
			return domain.ErrInvalidTransition
		}
		now := time.Now()
		order.Status = entity.OrderStatusReturned
		order.ReturnReason = reason
		order.ValidationDate = &now
		if err := r.Orders.Update(order); err != nil {
			return err
		}

		batch, err := r.Batches.GetForUpdate(order.BatchID)
		if err != nil {
			return err
		}
		if batch != nil && batch.Status != entity.BatchStatusCancelado {
			batch.Status = entity.BatchStatusCancelado
			if err := r.Batches.Update(batch); err != nil {
				return err
			}
		}
		if err := e.suspendRemaining(r, order.BatchID, now); err != nil {
			return err
		}
		out = toOrderResponse(order)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CancelBatch cancela un lote directamente (sin pasar por la orden) y suspende
// sus fases restantes. Re-invocarlo sobre un lote ya cancelado es un no-op.
func (e *Engine) CancelBatch(ctx context.Context, batchID string) (*dto.BatchResponse, error) {
	var out *dto.BatchResponse
	err := e.txRunner.RunProduction(ctx, func(r Repos) error {
		batch, err := r.Batches.GetForUpdate(batchID)
		if err != nil {
			return err
		}
		if batch == nil {
			return domain.ErrNotFound
		}
		if batch.Status == entity.BatchStatusCompletado {
			return domain.ErrInvalidTransition
		}
		now := time.Now()
		if batch.Status != entity.BatchStatusCancelado {
			batch.Status = entity.BatchStatusCancelado
			if err := r.Batches.Update(batch); err != nil {
				return err
			}
		}
		if err := e.suspendRemaining(r, batchID, now); err != nil {
			return err
		}
		instances, err := r.Phases.ListByBatch(batchID)
		if err != nil {
			return err
		}
		out = toBatchResponse(batch, instances)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// suspendRemaining transiciona toda instancia no terminal del lote a CANCELLED
// y devuelve al stock sus reservas pendientes. Idempotente: las instancias ya
// terminales (incluido CANCELLED) se saltan, así que re-invocar no duplica
// devoluciones.
func (e *Engine) suspendRemaining(r Repos, batchID string, now time.Time) error {
	instances, err := r.Phases.ListByBatch(batchID)
	if err != nil {
		return err
	}
	for _, instance := range instances {
		if instance.IsTerminal() {
			continue
		}
		if err := e.releaseReservations(r, instance); err != nil {
			return err
		}
		// Las fases que ya habían iniciado liberan también su carga de sector.
		if instance.Status == entity.PhaseStatusInProgress || instance.Status == entity.PhaseStatusUnderReview {
			if err := e.releaseSectorLoad(r, instance); err != nil {
				return err
			}
		}
		instance.Status = entity.PhaseStatusCancelled
		instance.EndDate = &now
		if err := r.Phases.Update(instance); err != nil {
			return err
		}
	}
	return nil
}

// releaseReservations devuelve al stock toda reserva registrada para la instancia.
func (e *Engine) releaseReservations(r Repos, instance *entity.ProductionPhase) error {
	rows, err := r.PhaseMaterials.ListByPhase(instance.ID)
	if err != nil {
		return err
	}
	for _, row := range rows {
		material, err := r.Materials.GetForUpdate(row.MaterialID)
		if err != nil {
			return err
		}
		if material == nil {
			return fmt.Errorf("material %s de la reserva: %w", row.MaterialID, domain.ErrNotFound)
		}
		if err := ledger.Return(material, row.Quantity); err != nil {
			return err
		}
		material.UpdatedAt = time.Now()
		if err := r.Materials.Update(material); err != nil {
			return err
		}
	}
	return nil
}
