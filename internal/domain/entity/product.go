package entity

import "time"

// Product representa un producto terminado (cerveza u otra bebida) con sus
// plantillas de fase. Las cantidades de producción se manejan vía ProductPhase.
type Product struct {
	ID          string
	Name        string
	IsAlcoholic bool
	IsActive    bool
	Phases      []*ProductPhase // plantillas, ordenadas por fase del catálogo
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ApplicablePhases devuelve las fases del catálogo que aplican al producto.
// Dealcoholization solo aplica cuando el producto NO es alcohólico.
func (p *Product) ApplicablePhases() []Phase {
	out := make([]Phase, 0, len(phasesByOrder)-1)
	for _, phase := range AllPhases() {
		if phase == PhaseDealcoholization && p.IsAlcoholic {
			continue
		}
		out = append(out, phase)
	}
	return out
}

// ProcessingPhases fases de proceso usadas para planeación de capacidad.
// Excluye Packaging (empaque no consume capacidad de proceso).
func (p *Product) ProcessingPhases() []Phase {
	applicable := p.ApplicablePhases()
	out := make([]Phase, 0, len(applicable))
	for _, phase := range applicable {
		if phase == PhasePackaging {
			continue
		}
		out = append(out, phase)
	}
	return out
}

// PhaseTemplate devuelve la plantilla del producto para una fase, nil si no existe.
func (p *Product) PhaseTemplate(phase Phase) *ProductPhase {
	for _, tpl := range p.Phases {
		if tpl.Phase == phase {
			return tpl
		}
	}
	return nil
}
