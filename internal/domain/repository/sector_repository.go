package repository

import "github.com/tu-usuario/cerveceria-pro/internal/domain/entity"

// SectorRepository define el puerto de persistencia para sectores de planta.
type SectorRepository interface {
	Create(s *entity.Sector) error
	GetByID(id string) (*entity.Sector, error)
	GetForUpdate(id string) (*entity.Sector, error)
	// GetActiveByPhase devuelve un sector activo con afinidad a la fase, nil si no hay.
	GetActiveByPhase(phase entity.Phase) (*entity.Sector, error)
	Update(s *entity.Sector) error
	List(limit, offset int) ([]*entity.Sector, error)
}
