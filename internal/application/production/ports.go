package production

import (
	"context"

	"github.com/tu-usuario/cerveceria-pro/internal/domain/repository"
)

// Repos repositorios atados a la transacción en curso. El motor decide qué
// registros hijos persistir en la misma transacción; no hay cascada implícita.
type Repos struct {
	Orders         repository.ProductionOrderRepository
	Batches        repository.BatchRepository
	Phases         repository.ProductionPhaseRepository
	PhaseMaterials repository.ProductionMaterialRepository
	Materials      repository.MaterialRepository
	Sectors        repository.SectorRepository
	Products       repository.ProductRepository
	ProductPhases  repository.ProductPhaseRepository
	Quality        repository.QualityRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de producción atados a esa tx. Cada operación pública del motor
// es una unidad de trabajo: Commit si fn retorna nil, Rollback si falla.
type TxRunner interface {
	RunProduction(ctx context.Context, fn func(r Repos) error) error
}
