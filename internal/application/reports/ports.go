package reports

import (
	"context"

	"github.com/tu-usuario/cerveceria-pro/internal/domain/entity"
)

// OrderReportData datos planos para la ficha PDF de una orden de producción.
type OrderReportData struct {
	Order   *entity.ProductionOrder
	Product *entity.Product
	Batch   *entity.Batch
	Phases  []*entity.ProductionPhase
}

// OrderPDFGenerator puerto de generación del PDF. Colaborador de presentación
// pura: consume entidades, no aporta nada al estado del motor.
type OrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, data OrderReportData) ([]byte, error)
}
