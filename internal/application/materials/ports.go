package materials

import (
	"context"

	"github.com/tu-usuario/cerveceria-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando el
// repositorio de materiales atado a esa tx. Combinado con GetForUpdate
// garantiza que el check-then-decrement de una reserva sea atómico frente a
// reservas concurrentes sobre el mismo material.
type TxRunner interface {
	Run(ctx context.Context, fn func(materialRepo repository.MaterialRepository) error) error
}
