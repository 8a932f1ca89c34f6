package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/reports"
)

// ReportHandler maneja las vistas de lectura: tablero, snapshot de stock y
// requerimientos, más sus descargas. Las tres reproyectan el mismo libro.
type ReportHandler struct {
	dashboard   *reports.DashboardUseCase
	snapshot    *reports.StockSnapshotUseCase
	requirement *reports.RequirementUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(
	dashboard *reports.DashboardUseCase,
	snapshot *reports.StockSnapshotUseCase,
	requirement *reports.RequirementUseCase,
) *ReportHandler {
	return &ReportHandler{dashboard: dashboard, snapshot: snapshot, requirement: requirement}
}

// Dashboard godoc
// @Summary      Tablero: catálogo filtrado + stock completo + movimientos
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        categoria  query  string  false  "Filtro por categoría (insensible a mayúsculas; 'todas' = sin filtro)"
// @Param        buscar     query  string  false  "Subcadena del nombre de producto"
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	resp, err := h.dashboard.GetDashboard(c.Query("categoria"), c.Query("buscar"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// StockSnapshot godoc
// @Summary      Stock actual (solo > 0, ordenado por producto)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockRowDTO
// @Router       /api/reports/stock [get]
func (h *ReportHandler) StockSnapshot(c *fiber.Ctx) error {
	rows, err := h.snapshot.Snapshot()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rows)
}

// StockSnapshotFile godoc
// @Summary      Descargar archivo de stock actual
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/stock/file [get]
func (h *ReportHandler) StockSnapshotFile(c *fiber.Ctx) error {
	content, err := h.snapshot.ExportFile(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock_actual.pdf"`)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(content)
}

// MovementLogFile godoc
// @Summary      Descargar archivo con el libro de movimientos
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/movements/file [get]
func (h *ReportHandler) MovementLogFile(c *fiber.Ctx) error {
	content, err := h.snapshot.ExportMovementLog(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos.pdf"`)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(content)
}

// RequirementProducts godoc
// @Summary      Catálogo con stock proyectado para el formulario de requerimientos
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RequirementProductDTO
// @Router       /api/reports/requirements [get]
func (h *ReportHandler) RequirementProducts(c *fiber.Ctx) error {
	rows, err := h.requirement.ListProducts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rows)
}

// RequirementPlanFile godoc
// @Summary      Generar y descargar un requerimiento
// @Description  Deriva cantidad a solicitar = max(0, requerida - stock proyectado) por producto con requerida > 0.
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.RequirementPlanRequest  true  "requester y requests (producto → cantidad requerida)"
// @Success      200  {file}  binary
// @Router       /api/reports/requirements/file [post]
func (h *ReportHandler) RequirementPlanFile(c *fiber.Ctx) error {
	var in dto.RequirementPlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	filename, content, err := h.requirement.ExportFile(c.Context(), in.Requester, in.Requests)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(content)
}
