package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cerveceria-pro/internal/application/dto"
	"github.com/tu-usuario/cerveceria-pro/internal/application/production"
	"github.com/tu-usuario/cerveceria-pro/internal/application/reports"
)

// ProductionHandler maneja las peticiones HTTP del flujo de producción:
// órdenes, lotes e instancias de fase.
type ProductionHandler struct {
	engine *production.Engine
	report *reports.OrderReportUseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(engine *production.Engine, report *reports.OrderReportUseCase) *ProductionHandler {
	return &ProductionHandler{engine: engine, report: report}
}

// CreateOrder godoc
// @Summary      Crear orden de producción
// @Description  Crea la orden en estado PENDING con su lote PENDIENTE y una
//
//	instancia de fase por cada fase aplicable del producto con plantilla.
//
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "product_id, quantity > 0, packaging, planned_date (no pasada)"
// @Success      201   {object}  dto.ProductionOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/production/orders [post]
func (h *ProductionHandler) CreateOrder(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.PlannedDate.Before(time.Now().Truncate(24 * time.Hour)) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "planned_date no puede estar en el pasado",
		})
	}
	out, err := h.engine.CreateProductionOrder(c.Context(), production.CreateOrderInput{
		ProductID:   in.ProductID,
		Quantity:    in.Quantity,
		Packaging:   in.Packaging,
		PlannedDate: in.PlannedDate,
		CreatedBy:   userID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetOrder godoc
// @Summary      Obtener orden de producción
// @Tags         production
// @Produce      json
// @Param        id   path      string  true  "ID de la orden"
// @Success      200  {object}  dto.ProductionOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production/orders/{id} [get]
func (h *ProductionHandler) GetOrder(c *fiber.Ctx) error {
	out, err := h.engine.GetOrder(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListOrders godoc
// @Summary      Listar órdenes de producción
// @Tags         production
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado (PENDING, APPROVED, RETURNED)"
// @Param        limit   query  int     false  "Máximo de filas (default 20)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/production/orders [get]
func (h *ProductionHandler) ListOrders(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	out, err := h.engine.ListOrders(c.Context(), c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ApproveOrder godoc
// @Summary      Aprobar orden de producción
// @Tags         production
// @Produce      json
// @Param        id   path      string  true  "ID de la orden"
// @Success      200  {object}  dto.ProductionOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/production/orders/{id}/approve [post]
func (h *ProductionHandler) ApproveOrder(c *fiber.Ctx) error {
	out, err := h.engine.ApproveOrder(c.Context(), c.Params("id"), userID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ReturnOrder godoc
// @Summary      Devolver orden de producción
// @Description  Devuelve la orden con motivo, cancela el lote y suspende las
//
//	fases restantes liberando reservas y carga de sector.
//
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la orden"
// @Param        body  body  dto.ReturnOrderRequest  true  "reason"
// @Success      200   {object}  dto.ProductionOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/production/orders/{id}/return [post]
func (h *ProductionHandler) ReturnOrder(c *fiber.Ctx) error {
	var in dto.ReturnOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.engine.ReturnOrder(c.Context(), c.Params("id"), in.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// OrderReport godoc
// @Summary      Ficha PDF de una orden de producción
// @Tags         production
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production/orders/{id}/report [get]
func (h *ProductionHandler) OrderReport(c *fiber.Ctx) error {
	pdf, err := h.report.GeneratePDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdf)
}

// GetBatch godoc
// @Summary      Obtener lote con sus instancias de fase en orden de catálogo
// @Tags         production
// @Produce      json
// @Param        id   path      string  true  "ID del lote"
// @Success      200  {object}  dto.BatchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production/batches/{id} [get]
func (h *ProductionHandler) GetBatch(c *fiber.Ctx) error {
	out, err := h.engine.GetBatch(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListBatches godoc
// @Summary      Listar lotes
// @Tags         production
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado (PENDIENTE, EN_PROCESO, COMPLETADO, CANCELADO)"
// @Param        limit   query  int     false  "Máximo de filas (default 20)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.BatchListResponse
// @Router       /api/production/batches [get]
func (h *ProductionHandler) ListBatches(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	out, err := h.engine.ListBatches(c.Context(), c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CancelBatch godoc
// @Summary      Cancelar lote
// @Description  Suspende las fases no terminales y libera reservas. Idempotente
//
//	sobre lotes ya cancelados; falla sobre lotes completados.
//
// @Tags         production
// @Produce      json
// @Param        id   path      string  true  "ID del lote"
// @Success      200  {object}  dto.BatchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/production/batches/{id}/cancel [post]
func (h *ProductionHandler) CancelBatch(c *fiber.Ctx) error {
	out, err := h.engine.CancelBatch(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetPhase godoc
// @Summary      Obtener instancia de fase
// @Tags         production
// @Produce      json
// @Param        id   path      string  true  "ID de la instancia de fase"
// @Success      200  {object}  dto.ProductionPhaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production/phases/{id} [get]
func (h *ProductionHandler) GetPhase(c *fiber.Ctx) error {
	out, err := h.engine.GetPhase(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StartPhase godoc
// @Summary      Iniciar instancia de fase
// @Description  Reserva los materiales de la receta de forma todo-o-nada y
//
//	registra la carga en el sector asignado. Requiere que todas las
//	fases anteriores del lote estén aprobadas.
//
// @Tags         production
// @Produce      json
// @Param        id   path      string  true  "ID de la instancia de fase"
// @Success      200  {object}  dto.ProductionPhaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/production/phases/{id}/start [post]
func (h *ProductionHandler) StartPhase(c *fiber.Ctx) error {
	out, err := h.engine.StartPhase(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetUnderReview godoc
// @Summary      Enviar fase a revisión con cantidades reales
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la instancia de fase"
// @Param        body  body  dto.SetUnderReviewRequest  true  "input y output reales (no negativos)"
// @Success      200   {object}  dto.ProductionPhaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/production/phases/{id}/under-review [post]
func (h *ProductionHandler) SetUnderReview(c *fiber.Ctx) error {
	var in dto.SetUnderReviewRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.engine.SetUnderReview(c.Context(), c.Params("id"), in.Input, in.Output)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ApprovePhase godoc
// @Summary      Aprobar instancia de fase
// @Description  Bloqueada mientras existan parámetros críticos sin aprobar.
//
//	Aprobar la última fase completa el lote.
//
// @Tags         production
// @Produce      json
// @Param        id   path      string  true  "ID de la instancia de fase"
// @Success      200  {object}  dto.ProductionPhaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/production/phases/{id}/approve [post]
func (h *ProductionHandler) ApprovePhase(c *fiber.Ctx) error {
	out, err := h.engine.ApprovePhase(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RejectPhase godoc
// @Summary      Rechazar instancia de fase
// @Description  Devuelve las reservas de material y libera la carga del sector.
// @Tags         production
// @Produce      json
// @Param        id   path      string  true  "ID de la instancia de fase"
// @Success      200  {object}  dto.ProductionPhaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/production/phases/{id}/reject [post]
func (h *ProductionHandler) RejectPhase(c *fiber.Ctx) error {
	out, err := h.engine.RejectPhase(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
