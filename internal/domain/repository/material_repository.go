package repository

import "github.com/tu-usuario/cerveceria-pro/internal/domain/entity"

// MaterialRepository define el puerto de persistencia para materias primas.
// GetForUpdate bloquea la fila (SELECT FOR UPDATE): dos reservas concurrentes
// sobre el mismo material deben serializarse ahí para no sobrevender.
type MaterialRepository interface {
	Create(m *entity.Material) error
	GetByID(id string) (*entity.Material, error)
	GetByCode(code string) (*entity.Material, error)
	GetForUpdate(id string) (*entity.Material, error)
	Update(m *entity.Material) error
	List(limit, offset int) ([]*entity.Material, error)
	ListBelowThreshold() ([]*entity.Material, error)
}
