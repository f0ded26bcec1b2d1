package entity

// Phase identifica una etapa fija del catálogo de producción cervecera.
// El catálogo es inmutable y totalmente ordenado (1..9, sin huecos).
type Phase string

const (
	PhaseMilling          Phase = "MILLING"
	PhaseMashing          Phase = "MASHING"
	PhaseFiltering        Phase = "FILTERING"
	PhaseBoiling          Phase = "BOILING"
	PhaseFermentation     Phase = "FERMENTATION"
	PhaseMaturation       Phase = "MATURATION"
	PhaseCarbonation      Phase = "CARBONATION"
	PhaseDealcoholization Phase = "DEALCOHOLIZATION"
	PhasePackaging        Phase = "PACKAGING"
)

// phaseInfo orden dentro del catálogo y si la etapa consume tiempo activo
// de proceso (trabajo de operarios) o es de espera (fermentación, maduración).
type phaseInfo struct {
	order      int
	timeActive bool
}

var phaseCatalog = map[Phase]phaseInfo{
	PhaseMilling:          {order: 1, timeActive: true},
	PhaseMashing:          {order: 2, timeActive: true},
	PhaseFiltering:        {order: 3, timeActive: true},
	PhaseBoiling:          {order: 4, timeActive: true},
	PhaseFermentation:     {order: 5, timeActive: false},
	PhaseMaturation:       {order: 6, timeActive: false},
	PhaseCarbonation:      {order: 7, timeActive: false},
	PhaseDealcoholization: {order: 8, timeActive: false},
	PhasePackaging:        {order: 9, timeActive: true},
}

// phasesByOrder índice orden -> fase (posición 0 sin usar).
var phasesByOrder = [...]Phase{
	"",
	PhaseMilling,
	PhaseMashing,
	PhaseFiltering,
	PhaseBoiling,
	PhaseFermentation,
	PhaseMaturation,
	PhaseCarbonation,
	PhaseDealcoholization,
	PhasePackaging,
}

// Order devuelve la posición de la fase en el catálogo (1..9); 0 si no existe.
func (p Phase) Order() int {
	return phaseCatalog[p].order
}

// IsTimeActive indica si la fase consume tiempo activo de proceso.
func (p Phase) IsTimeActive() bool {
	return phaseCatalog[p].timeActive
}

// IsValid indica si la fase pertenece al catálogo.
func (p Phase) IsValid() bool {
	_, ok := phaseCatalog[p]
	return ok
}

// Next devuelve la fase siguiente según el orden del catálogo.
// ok=false cuando p es la última fase o no pertenece al catálogo.
func (p Phase) Next() (Phase, bool) {
	info, ok := phaseCatalog[p]
	if !ok || info.order+1 >= len(phasesByOrder) {
		return "", false
	}
	return phasesByOrder[info.order+1], true
}

// ComesBefore indica si p va antes que other en el catálogo.
func (p Phase) ComesBefore(other Phase) bool {
	return p.Order() < other.Order()
}

// AllPhases devuelve el catálogo completo en orden.
func AllPhases() []Phase {
	out := make([]Phase, 0, len(phasesByOrder)-1)
	for i := 1; i < len(phasesByOrder); i++ {
		out = append(out, phasesByOrder[i])
	}
	return out
}
