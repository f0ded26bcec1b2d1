package production_test

import (
	"context"
	"sort"

	"github.com/tu-usuario/cerveceria-pro/internal/application/production"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/entity"
)

// store repositorios en memoria para ejercitar el motor sin base de datos.
// Los GetForUpdate devuelven el puntero vivo: dentro de un test no hay
// concurrencia, así que el bloqueo de fila es un no-op.
type store struct {
	orders         map[string]*entity.ProductionOrder
	batches        map[string]*entity.Batch
	phases         map[string]*entity.ProductionPhase
	phaseMaterials map[string][]*entity.ProductionMaterial // por instancia de fase
	materials      map[string]*entity.Material
	sectors        map[string]*entity.Sector
	products       map[string]*entity.Product
	templates      map[string]*entity.ProductPhase // plantillas por ID
	recipes        map[string][]*entity.Recipe     // por plantilla
	quality        map[string][]*entity.ProductionPhaseQuality
	params         map[string]*entity.QualityParameter
}

func newStore() *store {
	return &store{
		orders:         map[string]*entity.ProductionOrder{},
		batches:        map[string]*entity.Batch{},
		phases:         map[string]*entity.ProductionPhase{},
		phaseMaterials: map[string][]*entity.ProductionMaterial{},
		materials:      map[string]*entity.Material{},
		sectors:        map[string]*entity.Sector{},
		products:       map[string]*entity.Product{},
		templates:      map[string]*entity.ProductPhase{},
		recipes:        map[string][]*entity.Recipe{},
		quality:        map[string][]*entity.ProductionPhaseQuality{},
		params:         map[string]*entity.QualityParameter{},
	}
}

func (s *store) repos() production.Repos {
	return production.Repos{
		Orders:         (*fakeOrders)(s),
		Batches:        (*fakeBatches)(s),
		Phases:         (*fakePhases)(s),
		PhaseMaterials: (*fakePhaseMaterials)(s),
		Materials:      (*fakeMaterials)(s),
		Sectors:        (*fakeSectors)(s),
		Products:       (*fakeProducts)(s),
		ProductPhases:  (*fakeTemplates)(s),
		Quality:        (*fakeQuality)(s),
	}
}

// fakeTxRunner ejecuta el callback directamente sobre el store; un error del
// callback se propaga tal cual (no hay rollback que simular porque cada test
// valida el estado resultante de forma explícita).
type fakeTxRunner struct{ s *store }

func (f *fakeTxRunner) RunProduction(_ context.Context, fn func(r production.Repos) error) error {
	return fn(f.s.repos())
}

// ── Órdenes ──────────────────────────────────────────────────────────────────

type fakeOrders store

func (f *fakeOrders) Create(o *entity.ProductionOrder) error { f.orders[o.ID] = o; return nil }
func (f *fakeOrders) GetByID(id string) (*entity.ProductionOrder, error) {
	return f.orders[id], nil
}
func (f *fakeOrders) GetByBatchID(batchID string) (*entity.ProductionOrder, error) {
	for _, o := range f.orders {
		if o.BatchID == batchID {
			return o, nil
		}
	}
	return nil, nil
}
func (f *fakeOrders) GetForUpdate(id string) (*entity.ProductionOrder, error) {
	return f.orders[id], nil
}
func (f *fakeOrders) Update(o *entity.ProductionOrder) error { f.orders[o.ID] = o; return nil }
func (f *fakeOrders) List(status string, limit, offset int) ([]*entity.ProductionOrder, error) {
	var out []*entity.ProductionOrder
	for _, o := range f.orders {
		if status == "" || string(o.Status) == status {
			out = append(out, o)
		}
	}
	return out, nil
}

// ── Lotes ────────────────────────────────────────────────────────────────────

type fakeBatches store

func (f *fakeBatches) Create(b *entity.Batch) error                 { f.batches[b.ID] = b; return nil }
func (f *fakeBatches) GetByID(id string) (*entity.Batch, error)     { return f.batches[id], nil }
func (f *fakeBatches) GetForUpdate(id string) (*entity.Batch, error) { return f.batches[id], nil }
func (f *fakeBatches) Update(b *entity.Batch) error                 { f.batches[b.ID] = b; return nil }
func (f *fakeBatches) List(status string, limit, offset int) ([]*entity.Batch, error) {
	var out []*entity.Batch
	for _, b := range f.batches {
		if status == "" || string(b.Status) == status {
			out = append(out, b)
		}
	}
	return out, nil
}

// ── Instancias de fase ───────────────────────────────────────────────────────

type fakePhases store

func (f *fakePhases) Create(p *entity.ProductionPhase) error { f.phases[p.ID] = p; return nil }
func (f *fakePhases) GetByID(id string) (*entity.ProductionPhase, error) {
	return f.phases[id], nil
}
func (f *fakePhases) GetForUpdate(id string) (*entity.ProductionPhase, error) {
	return f.phases[id], nil
}
func (f *fakePhases) Update(p *entity.ProductionPhase) error { f.phases[p.ID] = p; return nil }
func (f *fakePhases) ListByBatch(batchID string) ([]*entity.ProductionPhase, error) {
	var out []*entity.ProductionPhase
	for _, p := range f.phases {
		if p.BatchID == batchID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Phase.ComesBefore(out[j].Phase) })
	return out, nil
}

// ── Reservas reales ──────────────────────────────────────────────────────────

type fakePhaseMaterials store

func (f *fakePhaseMaterials) Create(pm *entity.ProductionMaterial) error {
	f.phaseMaterials[pm.ProductionPhaseID] = append(f.phaseMaterials[pm.ProductionPhaseID], pm)
	return nil
}
func (f *fakePhaseMaterials) ListByPhase(id string) ([]*entity.ProductionMaterial, error) {
	return f.phaseMaterials[id], nil
}

// ── Materias primas ──────────────────────────────────────────────────────────

type fakeMaterials store

func (f *fakeMaterials) Create(m *entity.Material) error { f.materials[m.ID] = m; return nil }
func (f *fakeMaterials) GetByID(id string) (*entity.Material, error) {
	return f.materials[id], nil
}
func (f *fakeMaterials) GetByCode(code string) (*entity.Material, error) {
	for _, m := range f.materials {
		if m.Code == code {
			return m, nil
		}
	}
	return nil, nil
}
func (f *fakeMaterials) GetForUpdate(id string) (*entity.Material, error) {
	return f.materials[id], nil
}
func (f *fakeMaterials) Update(m *entity.Material) error { f.materials[m.ID] = m; return nil }
func (f *fakeMaterials) List(limit, offset int) ([]*entity.Material, error) {
	var out []*entity.Material
	for _, m := range f.materials {
		out = append(out, m)
	}
	return out, nil
}
func (f *fakeMaterials) ListBelowThreshold() ([]*entity.Material, error) {
	var out []*entity.Material
	for _, m := range f.materials {
		if m.IsBelowThreshold() {
			out = append(out, m)
		}
	}
	return out, nil
}

// ── Sectores ─────────────────────────────────────────────────────────────────

type fakeSectors store

func (f *fakeSectors) Create(s *entity.Sector) error                  { f.sectors[s.ID] = s; return nil }
func (f *fakeSectors) GetByID(id string) (*entity.Sector, error)      { return f.sectors[id], nil }
func (f *fakeSectors) GetForUpdate(id string) (*entity.Sector, error) { return f.sectors[id], nil }
func (f *fakeSectors) GetActiveByPhase(phase entity.Phase) (*entity.Sector, error) {
	var best *entity.Sector
	for _, s := range f.sectors {
		if !s.IsActive || s.Phase == nil || *s.Phase != phase {
			continue
		}
		if best == nil || s.ActualProduction.LessThan(best.ActualProduction) {
			best = s
		}
	}
	return best, nil
}
func (f *fakeSectors) Update(s *entity.Sector) error { f.sectors[s.ID] = s; return nil }
func (f *fakeSectors) List(limit, offset int) ([]*entity.Sector, error) {
	var out []*entity.Sector
	for _, s := range f.sectors {
		out = append(out, s)
	}
	return out, nil
}

// ── Productos y plantillas ───────────────────────────────────────────────────

type fakeProducts store

func (f *fakeProducts) Create(p *entity.Product) error             { f.products[p.ID] = p; return nil }
func (f *fakeProducts) GetByID(id string) (*entity.Product, error) { return f.products[id], nil }
func (f *fakeProducts) Update(p *entity.Product) error             { f.products[p.ID] = p; return nil }
func (f *fakeProducts) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

type fakeTemplates store

func (f *fakeTemplates) Create(tpl *entity.ProductPhase) error {
	f.templates[tpl.ID] = tpl
	return nil
}
func (f *fakeTemplates) GetByProductAndPhase(productID string, phase entity.Phase) (*entity.ProductPhase, error) {
	for _, tpl := range f.templates {
		if tpl.ProductID == productID && tpl.Phase == phase {
			return tpl, nil
		}
	}
	return nil, nil
}
func (f *fakeTemplates) ListByProduct(productID string) ([]*entity.ProductPhase, error) {
	var out []*entity.ProductPhase
	for _, tpl := range f.templates {
		if tpl.ProductID == productID {
			tpl.Recipes = f.recipes[tpl.ID]
			out = append(out, tpl)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Phase.ComesBefore(out[j].Phase) })
	return out, nil
}
func (f *fakeTemplates) AddRecipe(r *entity.Recipe) error {
	f.recipes[r.ProductPhaseID] = append(f.recipes[r.ProductPhaseID], r)
	return nil
}
func (f *fakeTemplates) ListRecipes(productPhaseID string) ([]*entity.Recipe, error) {
	return f.recipes[productPhaseID], nil
}

// ── Calidad ──────────────────────────────────────────────────────────────────

type fakeQuality store

func (f *fakeQuality) CreateParameter(p *entity.QualityParameter) error {
	f.params[p.ID] = p
	return nil
}
func (f *fakeQuality) GetParameterByID(id string) (*entity.QualityParameter, error) {
	return f.params[id], nil
}
func (f *fakeQuality) ListParametersByPhase(phase entity.Phase) ([]*entity.QualityParameter, error) {
	var out []*entity.QualityParameter
	for _, p := range f.params {
		if p.Phase == phase {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakeQuality) RecordValue(v *entity.ProductionPhaseQuality) error {
	f.quality[v.ProductionPhaseID] = append(f.quality[v.ProductionPhaseID], v)
	return nil
}
func (f *fakeQuality) GetValueByID(id string) (*entity.ProductionPhaseQuality, error) {
	for _, list := range f.quality {
		for _, v := range list {
			if v.ID == id {
				return v, nil
			}
		}
	}
	return nil, nil
}
func (f *fakeQuality) ApproveValue(id string) error {
	v, _ := f.GetValueByID(id)
	if v != nil {
		v.IsApproved = true
	}
	return nil
}
func (f *fakeQuality) ListValuesByPhaseInstance(id string) ([]*entity.ProductionPhaseQuality, error) {
	return f.quality[id], nil
}
func (f *fakeQuality) ListUnapprovedCritical(id string) ([]*entity.ProductionPhaseQuality, error) {
	var out []*entity.ProductionPhaseQuality
	for _, v := range f.quality[id] {
		p := f.params[v.QualityParameterID]
		if p != nil && p.IsCritical && !v.IsApproved {
			out = append(out, v)
		}
	}
	return out, nil
}
