package production_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cerveceria-pro/internal/application/production"
	"github.com/tu-usuario/cerveceria-pro/internal/domain"
	"github.com/tu-usuario/cerveceria-pro/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-pro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: una IPA con plantillas de molienda y maceración, sectores con
// afinidad por fase y materias primas en stock.
// ──────────────────────────────────────────────────────────────────────────────

const (
	productID     = "prod-ipa"
	maltID        = "mat-malt"
	hopsID        = "mat-hops"
	sectorMilling = "sector-milling"
	sectorMashing = "sector-mashing"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func phasePtr(p entity.Phase) *entity.Phase { return &p }

func newFixture() (*store, *production.Engine) {
	s := newStore()

	s.products[productID] = &entity.Product{
		ID: productID, Name: "IPA", IsAlcoholic: true, IsActive: true,
	}
	s.templates["tpl-milling"] = &entity.ProductPhase{
		ID: "tpl-milling", ProductID: productID, Phase: entity.PhaseMilling,
		StandardOutput: dec("2"), OutputUnit: "kg",
	}
	s.templates["tpl-mashing"] = &entity.ProductPhase{
		ID: "tpl-mashing", ProductID: productID, Phase: entity.PhaseMashing,
		StandardOutput: dec("1.8"), OutputUnit: "l",
	}
	s.recipes["tpl-milling"] = []*entity.Recipe{
		{ID: "rec-malt", ProductPhaseID: "tpl-milling", MaterialID: maltID, StandardQuantity: dec("2")},
	}
	s.recipes["tpl-mashing"] = []*entity.Recipe{
		{ID: "rec-hops", ProductPhaseID: "tpl-mashing", MaterialID: hopsID, StandardQuantity: dec("1")},
	}
	s.materials[maltID] = &entity.Material{
		ID: maltID, Code: "MALT-01", Name: "Malta pilsen", Unit: "kg",
		Stock: dec("100"), ReservedStock: decimal.Zero, IsActive: true,
	}
	s.materials[hopsID] = &entity.Material{
		ID: hopsID, Code: "HOPS-01", Name: "Lúpulo cascade", Unit: "kg",
		Stock: dec("50"), ReservedStock: decimal.Zero, IsActive: true,
	}
	cap30 := dec("30")
	s.sectors[sectorMilling] = &entity.Sector{
		ID: sectorMilling, Name: "Molienda", IsActive: true,
		Phase: phasePtr(entity.PhaseMilling), ProductionCapacity: &cap30,
		ActualProduction: decimal.Zero,
	}
	s.sectors[sectorMashing] = &entity.Sector{
		ID: sectorMashing, Name: "Maceración", IsActive: true,
		Phase: phasePtr(entity.PhaseMashing),
		ActualProduction: decimal.Zero,
	}

	log := logger.New(logger.Config{Env: "production", Level: "error"})
	repos := s.repos()
	engine := production.NewEngine(&fakeTxRunner{s: s}, repos.Orders, repos.Batches, repos.Phases, log)
	return s, engine
}

// createOrder crea una orden de 10 unidades y devuelve la orden y las
// instancias del lote en orden de catálogo.
func createOrder(t *testing.T, s *store, e *production.Engine) (string, []*entity.ProductionPhase) {
	t.Helper()
	order, err := e.CreateProductionOrder(context.Background(), production.CreateOrderInput{
		ProductID:   productID,
		Quantity:    dec("10"),
		Packaging:   "botella 330ml",
		PlannedDate: time.Now().Add(48 * time.Hour),
		CreatedBy:   "operador-1",
	})
	require.NoError(t, err)
	instances, err := s.repos().Phases.ListByBatch(order.BatchID)
	require.NoError(t, err)
	return order.ID, instances
}

// avanza la instancia hasta UNDER_REVIEW.
func startAndReview(t *testing.T, e *production.Engine, instance *entity.ProductionPhase) {
	t.Helper()
	_, err := e.StartPhase(context.Background(), instance.ID)
	require.NoError(t, err)
	_, err = e.SetUnderReview(context.Background(), instance.ID, dec("20"), dec("19"))
	require.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación de órdenes
// ──────────────────────────────────────────────────────────────────────────────

// TestCreateProductionOrder_EscalaFases la orden de 10 unidades crea lote
// PENDIENTE y una instancia por plantilla, con estándares escalados y la
// entrada encadenada a la salida de la fase anterior.
func TestCreateProductionOrder_EscalaFases(t *testing.T) {
	s, engine := newFixture()

	orderID, instances := createOrder(t, s, engine)

	order := s.orders[orderID]
	require.NotNil(t, order)
	assert.Equal(t, entity.OrderStatusPending, order.Status)

	batch := s.batches[order.BatchID]
	require.NotNil(t, batch)
	assert.Equal(t, entity.BatchStatusPendiente, batch.Status)
	assert.True(t, batch.Quantity.Equal(dec("10")))

	require.Len(t, instances, 2, "solo las fases con plantilla generan instancia")

	milling, mashing := instances[0], instances[1]
	assert.Equal(t, entity.PhaseMilling, milling.Phase)
	assert.Equal(t, entity.PhaseStatusPending, milling.Status)
	assert.True(t, milling.StandardOutput.Equal(dec("20")), "2 * 10 unidades")
	assert.True(t, milling.StandardInput.Equal(dec("20")), "la primera fase arranca con su propia salida")
	assert.Equal(t, sectorMilling, milling.SectorID)

	assert.Equal(t, entity.PhaseMashing, mashing.Phase)
	assert.True(t, mashing.StandardOutput.Equal(dec("18")), "1.8 * 10 unidades")
	assert.True(t, mashing.StandardInput.Equal(dec("20")), "entrada = salida de molienda")
	assert.Equal(t, sectorMashing, mashing.SectorID)
}

func TestCreateProductionOrder_CantidadInvalida(t *testing.T) {
	_, engine := newFixture()

	_, err := engine.CreateProductionOrder(context.Background(), production.CreateOrderInput{
		ProductID: productID,
		Quantity:  decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestCreateProductionOrder_ProductoInexistente(t *testing.T) {
	_, engine := newFixture()

	_, err := engine.CreateProductionOrder(context.Background(), production.CreateOrderInput{
		ProductID: "no-existe",
		Quantity:  dec("1"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateProductionOrder_ProductoInactivo(t *testing.T) {
	s, engine := newFixture()
	s.products[productID].IsActive = false

	_, err := engine.CreateProductionOrder(context.Background(), production.CreateOrderInput{
		ProductID: productID,
		Quantity:  dec("1"),
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// TestCreateProductionOrder_SinSectorParaFase sin sector activo con afinidad a
// una fase con plantilla, la orden no se puede planear.
func TestCreateProductionOrder_SinSectorParaFase(t *testing.T) {
	s, engine := newFixture()
	s.sectors[sectorMashing].IsActive = false

	_, err := engine.CreateProductionOrder(context.Background(), production.CreateOrderInput{
		ProductID:   productID,
		Quantity:    dec("10"),
		PlannedDate: time.Now().Add(time.Hour),
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// ──────────────────────────────────────────────────────────────────────────────
// Aprobación y devolución de órdenes
// ──────────────────────────────────────────────────────────────────────────────

func TestApproveOrder(t *testing.T) {
	s, engine := newFixture()
	orderID, _ := createOrder(t, s, engine)

	out, err := engine.ApproveOrder(context.Background(), orderID, "supervisor-1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusApproved, out.Status)
	assert.Equal(t, "supervisor-1", out.ApprovedBy)
	assert.NotNil(t, out.ValidationDate)

	// Una orden ya aprobada no admite segunda aprobación.
	_, err = engine.ApproveOrder(context.Background(), orderID, "supervisor-2")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// TestReturnOrder_LiberaReservas devolver la orden cancela el lote, suspende
// las instancias y devuelve al stock las reservas de la fase iniciada.
func TestReturnOrder_LiberaReservas(t *testing.T) {
	s, engine := newFixture()
	orderID, instances := createOrder(t, s, engine)

	_, err := engine.StartPhase(context.Background(), instances[0].ID)
	require.NoError(t, err)
	require.True(t, s.materials[maltID].ReservedStock.Equal(dec("20")))

	out, err := engine.ReturnOrder(context.Background(), orderID, "materia prima fuera de especificación")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusReturned, out.Status)
	assert.Equal(t, "materia prima fuera de especificación", out.ReturnReason)

	batch := s.batches[out.BatchID]
	assert.Equal(t, entity.BatchStatusCancelado, batch.Status)

	for _, instance := range instances {
		assert.Equal(t, entity.PhaseStatusCancelled, s.phases[instance.ID].Status)
	}
	malt := s.materials[maltID]
	assert.True(t, malt.Stock.Equal(dec("100")), "la reserva vuelve al stock libre")
	assert.True(t, malt.ReservedStock.Equal(decimal.Zero))
	assert.True(t, s.sectors[sectorMilling].ActualProduction.Equal(decimal.Zero), "la carga del sector se libera")
}

func TestReturnOrder_SoloPendientes(t *testing.T) {
	s, engine := newFixture()
	orderID, _ := createOrder(t, s, engine)

	_, err := engine.ApproveOrder(context.Background(), orderID, "supervisor-1")
	require.NoError(t, err)

	_, err = engine.ReturnOrder(context.Background(), orderID, "tarde")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// ──────────────────────────────────────────────────────────────────────────────
// Inicio de fases
// ──────────────────────────────────────────────────────────────────────────────

// TestStartPhase_ReservaYCarga iniciar molienda reserva la receta escalada y
// sube la carga del sector por la salida estándar.
func TestStartPhase_ReservaYCarga(t *testing.T) {
	s, engine := newFixture()
	_, instances := createOrder(t, s, engine)

	out, err := engine.StartPhase(context.Background(), instances[0].ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PhaseStatusInProgress, out.Status)
	assert.NotNil(t, out.StartDate)

	malt := s.materials[maltID]
	assert.True(t, malt.Stock.Equal(dec("80")), "100 - 2*10")
	assert.True(t, malt.ReservedStock.Equal(dec("20")))

	rows := s.phaseMaterials[instances[0].ID]
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Quantity.Equal(dec("20")))

	assert.True(t, s.sectors[sectorMilling].ActualProduction.Equal(dec("20")))
}

// TestStartPhase_FueraDeOrden la maceración no puede iniciar mientras la
// molienda no esté aprobada.
func TestStartPhase_FueraDeOrden(t *testing.T) {
	s, engine := newFixture()
	_, instances := createOrder(t, s, engine)

	_, err := engine.StartPhase(context.Background(), instances[1].ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// TestStartPhase_LoteCancelado un lote cancelado corta cualquier inicio,
// incluso con la fase aún en PENDING.
func TestStartPhase_LoteCancelado(t *testing.T) {
	s, engine := newFixture()
	_, instances := createOrder(t, s, engine)

	batchID := instances[0].BatchID
	_, err := engine.CancelBatch(context.Background(), batchID)
	require.NoError(t, err)

	_, err = engine.StartPhase(context.Background(), instances[0].ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// TestStartPhase_ReservaParcialSeDeshace si una línea de la receta no alcanza,
// las reservas ya hechas en la misma llamada se devuelven (todo o nada).
func TestStartPhase_ReservaParcialSeDeshace(t *testing.T) {
	s, engine := newFixture()
	// Segunda línea imposible: 100 por unidad sobre un stock de 50.
	s.recipes["tpl-milling"] = append(s.recipes["tpl-milling"], &entity.Recipe{
		ID: "rec-hops-extra", ProductPhaseID: "tpl-milling", MaterialID: hopsID,
		StandardQuantity: dec("100"),
	})
	_, instances := createOrder(t, s, engine)

	_, err := engine.StartPhase(context.Background(), instances[0].ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	malt := s.materials[maltID]
	assert.True(t, malt.Stock.Equal(dec("100")), "la reserva parcial de malta se devolvió")
	assert.True(t, malt.ReservedStock.Equal(decimal.Zero))
	hops := s.materials[hopsID]
	assert.True(t, hops.Stock.Equal(dec("50")))
	assert.Equal(t, entity.PhaseStatusPending, s.phases[instances[0].ID].Status, "la fase no inició")
}

// ──────────────────────────────────────────────────────────────────────────────
// Revisión, calidad y aprobación
// ──────────────────────────────────────────────────────────────────────────────

func TestSetUnderReview(t *testing.T) {
	s, engine := newFixture()
	_, instances := createOrder(t, s, engine)

	_, err := engine.StartPhase(context.Background(), instances[0].ID)
	require.NoError(t, err)

	out, err := engine.SetUnderReview(context.Background(), instances[0].ID, dec("20"), dec("19.5"))
	require.NoError(t, err)
	assert.Equal(t, entity.PhaseStatusUnderReview, out.Status)
	require.NotNil(t, out.Input)
	assert.True(t, out.Input.Equal(dec("20")))
	assert.True(t, out.Output.Equal(dec("19.5")))
}

func TestSetUnderReview_CantidadesNegativas(t *testing.T) {
	s, engine := newFixture()
	_, instances := createOrder(t, s, engine)

	_, err := engine.SetUnderReview(context.Background(), instances[0].ID, dec("-1"), dec("5"))
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

// TestApprovePhase_PuertaDeCalidad un valor crítico sin aprobar bloquea la
// aprobación; una vez aprobado el valor, la fase pasa y el lote arranca.
func TestApprovePhase_PuertaDeCalidad(t *testing.T) {
	s, engine := newFixture()
	_, instances := createOrder(t, s, engine)
	milling := instances[0]

	s.params["param-ph"] = &entity.QualityParameter{
		ID: "param-ph", Phase: entity.PhaseMilling, Name: "pH", IsCritical: true, IsActive: true,
	}
	s.quality[milling.ID] = []*entity.ProductionPhaseQuality{
		{ID: "val-1", ProductionPhaseID: milling.ID, QualityParameterID: "param-ph", Value: dec("5.4")},
	}

	startAndReview(t, engine, milling)

	_, err := engine.ApprovePhase(context.Background(), milling.ID)
	assert.ErrorIs(t, err, domain.ErrQualityGateBlocked)
	assert.Equal(t, entity.PhaseStatusUnderReview, s.phases[milling.ID].Status)

	s.quality[milling.ID][0].IsApproved = true

	out, err := engine.ApprovePhase(context.Background(), milling.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PhaseStatusApproved, out.Status)
	assert.NotNil(t, out.EndDate)

	batch := s.batches[milling.BatchID]
	assert.Equal(t, entity.BatchStatusEnProceso, batch.Status, "la primera aprobación arranca el lote")
	assert.NotNil(t, batch.StartDate)
}

// TestApprovePhase_UltimaFaseCompletaLote aprobar la instancia de mayor orden
// deja el lote en COMPLETADO con fecha de término.
func TestApprovePhase_UltimaFaseCompletaLote(t *testing.T) {
	s, engine := newFixture()
	_, instances := createOrder(t, s, engine)
	milling, mashing := instances[0], instances[1]

	startAndReview(t, engine, milling)
	_, err := engine.ApprovePhase(context.Background(), milling.ID)
	require.NoError(t, err)

	startAndReview(t, engine, mashing)
	out, err := engine.ApprovePhase(context.Background(), mashing.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PhaseStatusApproved, out.Status)

	batch := s.batches[mashing.BatchID]
	assert.Equal(t, entity.BatchStatusCompletado, batch.Status)
	assert.NotNil(t, batch.CompletedDate)
}

func TestApprovePhase_RequiereRevision(t *testing.T) {
	s, engine := newFixture()
	_, instances := createOrder(t, s, engine)

	_, err := engine.ApprovePhase(context.Background(), instances[0].ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// TestRejectPhase_DevuelveReservas el rechazo devuelve las reservas al stock y
// libera la carga del sector.
func TestRejectPhase_DevuelveReservas(t *testing.T) {
	s, engine := newFixture()
	_, instances := createOrder(t, s, engine)
	milling := instances[0]

	startAndReview(t, engine, milling)

	out, err := engine.RejectPhase(context.Background(), milling.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PhaseStatusRejected, out.Status)

	malt := s.materials[maltID]
	assert.True(t, malt.Stock.Equal(dec("100")))
	assert.True(t, malt.ReservedStock.Equal(decimal.Zero))
	assert.True(t, s.sectors[sectorMilling].ActualProduction.Equal(decimal.Zero))
}

// ──────────────────────────────────────────────────────────────────────────────
// Cancelación de lotes
// ──────────────────────────────────────────────────────────────────────────────

// TestCancelBatch_Idempotente cancelar dos veces no duplica devoluciones de
// stock: las instancias ya CANCELLED se saltan.
func TestCancelBatch_Idempotente(t *testing.T) {
	s, engine := newFixture()
	_, instances := createOrder(t, s, engine)
	batchID := instances[0].BatchID

	_, err := engine.StartPhase(context.Background(), instances[0].ID)
	require.NoError(t, err)

	_, err = engine.CancelBatch(context.Background(), batchID)
	require.NoError(t, err)
	require.True(t, s.materials[maltID].Stock.Equal(dec("100")))

	_, err = engine.CancelBatch(context.Background(), batchID)
	require.NoError(t, err)
	assert.True(t, s.materials[maltID].Stock.Equal(dec("100")), "sin doble devolución")
	assert.True(t, s.materials[maltID].ReservedStock.Equal(decimal.Zero))
}

// TestCancelBatch_CompletadoFalla un lote completado no se puede cancelar.
func TestCancelBatch_CompletadoFalla(t *testing.T) {
	s, engine := newFixture()
	_, instances := createOrder(t, s, engine)
	batchID := instances[0].BatchID
	s.batches[batchID].Status = entity.BatchStatusCompletado

	_, err := engine.CancelBatch(context.Background(), batchID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}
