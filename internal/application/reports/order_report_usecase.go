package reports

import (
	"context"

	"github.com/tu-usuario/cerveceria-pro/internal/domain"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/repository"
)

// OrderReportUseCase genera la ficha PDF de una orden de producción: orden,
// lote y avance de fases.
type OrderReportUseCase struct {
	orders    repository.ProductionOrderRepository
	products  repository.ProductRepository
	batches   repository.BatchRepository
	phases    repository.ProductionPhaseRepository
	generator OrderPDFGenerator
}

// NewOrderReportUseCase construye el caso de uso.
func NewOrderReportUseCase(
	orders repository.ProductionOrderRepository,
	products repository.ProductRepository,
	batches repository.BatchRepository,
	phases repository.ProductionPhaseRepository,
	generator OrderPDFGenerator,
) *OrderReportUseCase {
	return &OrderReportUseCase{
		orders:    orders,
		products:  products,
		batches:   batches,
		phases:    phases,
		generator: generator,
	}
}

// GeneratePDF arma los datos de la orden y delega en el generador.
func (uc *OrderReportUseCase) GeneratePDF(ctx context.Context, orderID string) ([]byte, error) {
	order, err := uc.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	product, err := uc.products.GetByID(order.ProductID)
	if err != nil {
		return nil, err
	}
	batch, err := uc.batches.GetByID(order.BatchID)
	if err != nil {
		return nil, err
	}
	instances, err := uc.phases.ListByBatch(order.BatchID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateOrderPDF(ctx, OrderReportData{
		Order:   order,
		Product: product,
		Batch:   batch,
		Phases:  instances,
	})
}
