package production

import (
	"context"

	"github.com/tu-usuario/cerveceria-pro/internal/application/dto"
	"github.com/tu-usuario/cerveceria-pro/internal/domain"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/repository"
	"github.com/tu-usuario/cerveceria-pro/pkg/logger"
)

// Engine motor del flujo de producción: orquesta las transiciones
// Orden -> Lote -> Instancias de fase, invocando el libro de materiales y la
// carga por sector, con la puerta de calidad como condición de aprobación.
// Cada operación pública corre en una sola transacción vía TxRunner.
type Engine struct {
	txRunner TxRunner
	orders   repository.ProductionOrderRepository
	batches  repository.BatchRepository
	phases   repository.ProductionPhaseRepository
	log      *logger.Logger
}

// NewEngine construye el motor. Los repositorios sueltos (sin tx) se usan solo
// para lecturas; toda mutación pasa por el TxRunner.
func NewEngine(
	txRunner TxRunner,
	orders repository.ProductionOrderRepository,
	batches repository.BatchRepository,
	phases repository.ProductionPhaseRepository,
	log *logger.Logger,
) *Engine {
	return &Engine{
		txRunner: txRunner,
		orders:   orders,
		batches:  batches,
		phases:   phases,
		log:      log,
	}
}

// GetOrder obtiene una orden de producción por ID.
func (e *Engine) GetOrder(ctx context.Context, id string) (*dto.ProductionOrderResponse, error) {
	o, err := e.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(o), nil
}

// ListOrders lista órdenes, opcionalmente filtradas por estado.
func (e *Engine) ListOrders(ctx context.Context, status string, limit, offset int) (*dto.OrderListResponse, error) {
	list, err := e.orders.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductionOrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// GetBatch obtiene un lote con sus instancias de fase ordenadas por catálogo.
func (e *Engine) GetBatch(ctx context.Context, id string) (*dto.BatchResponse, error) {
	b, err := e.batches.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	instances, err := e.phases.ListByBatch(id)
	if err != nil {
		return nil, err
	}
	return toBatchResponse(b, instances), nil
}

// ListBatches lista lotes, opcionalmente filtrados por estado.
func (e *Engine) ListBatches(ctx context.Context, status string, limit, offset int) (*dto.BatchListResponse, error) {
	list, err := e.batches.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BatchResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBatchResponse(b, nil))
	}
	return &dto.BatchListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// GetPhase obtiene una instancia de fase por ID.
func (e *Engine) GetPhase(ctx context.Context, id string) (*dto.ProductionPhaseResponse, error) {
	ph, err := e.phases.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ph == nil {
		return nil, domain.ErrNotFound
	}
	return toPhaseResponse(ph), nil
}

func toOrderResponse(o *entity.ProductionOrder) *dto.ProductionOrderResponse {
	if o == nil {
		return nil
	}
	return &dto.ProductionOrderResponse{
		ID:             o.ID,
		ProductID:      o.ProductID,
		BatchID:        o.BatchID,
		Status:         o.Status,
		Quantity:       o.Quantity,
		ReturnReason:   o.ReturnReason,
		CreatedAt:      o.CreatedAt,
		ValidationDate: o.ValidationDate,
		CreatedBy:      o.CreatedBy,
		ApprovedBy:     o.ApprovedBy,
	}
}

func toBatchResponse(b *entity.Batch, instances []*entity.ProductionPhase) *dto.BatchResponse {
	if b == nil {
		return nil
	}
	resp := &dto.BatchResponse{
		ID:            b.ID,
		Packaging:     b.Packaging,
		Status:        b.Status,
		Quantity:      b.Quantity,
		PlannedDate:   b.PlannedDate,
		CreatedAt:     b.CreatedAt,
		StartDate:     b.StartDate,
		CompletedDate: b.CompletedDate,
	}
	for _, ph := range instances {
		resp.Phases = append(resp.Phases, *toPhaseResponse(ph))
	}
	return resp
}

func toPhaseResponse(ph *entity.ProductionPhase) *dto.ProductionPhaseResponse {
	if ph == nil {
		return nil
	}
	return &dto.ProductionPhaseResponse{
		ID:             ph.ID,
		BatchID:        ph.BatchID,
		Phase:          string(ph.Phase),
		PhaseOrder:     ph.Phase.Order(),
		SectorID:       ph.SectorID,
		Status:         ph.Status,
		StandardInput:  ph.StandardInput,
		StandardOutput: ph.StandardOutput,
		Input:          ph.Input,
		Output:         ph.Output,
		StartDate:      ph.StartDate,
		EndDate:        ph.EndDate,
	}
}
