package repository

import "github.com/tu-usuario/cerveceria-pro/internal/domain/entity"

// ProductionOrderRepository órdenes de producción.
type ProductionOrderRepository interface {
	Create(o *entity.ProductionOrder) error
	GetByID(id string) (*entity.ProductionOrder, error)
	GetByBatchID(batchID string) (*entity.ProductionOrder, error)
	GetForUpdate(id string) (*entity.ProductionOrder, error)
	Update(o *entity.ProductionOrder) error
	List(status string, limit, offset int) ([]*entity.ProductionOrder, error)
}

// BatchRepository lotes de producción.
type BatchRepository interface {
	Create(b *entity.Batch) error
	GetByID(id string) (*entity.Batch, error)
	GetForUpdate(id string) (*entity.Batch, error)
	Update(b *entity.Batch) error
	List(status string, limit, offset int) ([]*entity.Batch, error)
}

// ProductionPhaseRepository instancias de fase de un lote.
// ListByBatch devuelve las instancias ordenadas por el orden del catálogo.
type ProductionPhaseRepository interface {
	Create(p *entity.ProductionPhase) error
	GetByID(id string) (*entity.ProductionPhase, error)
	GetForUpdate(id string) (*entity.ProductionPhase, error)
	Update(p *entity.ProductionPhase) error
	ListByBatch(batchID string) ([]*entity.ProductionPhase, error)
}

// ProductionMaterialRepository reservas reales de material por instancia de fase.
type ProductionMaterialRepository interface {
	Create(pm *entity.ProductionMaterial) error
	ListByPhase(productionPhaseID string) ([]*entity.ProductionMaterial, error)
}
