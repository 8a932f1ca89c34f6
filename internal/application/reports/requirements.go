package reports

import (
	"context"
	"time"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain/inventory"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// RequirementUseCase arma el plan de requerimientos: catálogo con stock
// proyectado + derivación de cuánto solicitar por producto, y su exportación
// como archivo con encabezado (N° de requerimiento, solicitante, fecha).
type RequirementUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
	generator   ReportFileGenerator
	now         func() time.Time
}

// NewRequirementUseCase construye el caso de uso. now puede ser nil (time.Now).
func NewRequirementUseCase(
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
	generator ReportFileGenerator,
	now func() time.Time,
) *RequirementUseCase {
	if now == nil {
		now = time.Now
	}
	return &RequirementUseCase{
		productRepo: productRepo,
		movRepo:     movRepo,
		generator:   generator,
		now:         now,
	}
}

// ListProducts devuelve el catálogo completo con el stock proyectado de cada
// producto (0 si no tiene movimientos), en orden de catálogo. Es la base del
// formulario de requerimientos.
func (uc *RequirementUseCase) ListProducts() ([]dto.RequirementProductDTO, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movRepo.List()
	if err != nil {
		return nil, err
	}
	stock, err := inventory.Project(movements)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RequirementProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, dto.RequirementProductDTO{
			Product:  p.Name,
			Category: p.Category,
			Unit:     p.Unit,
			Stock:    stock[p.Name], // clave ausente = 0
		})
	}
	return out, nil
}

// BuildPlan reproyecta el libro y deriva las filas del plan para los
// productos con cantidad requerida > 0, en orden de catálogo.
func (uc *RequirementUseCase) BuildPlan(requests map[string]int64) ([]dto.PlanRowDTO, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movRepo.List()
	if err != nil {
		return nil, err
	}
	stock, err := inventory.Project(movements)
	if err != nil {
		return nil, err
	}
	rows := inventory.Plan(products, stock, requests)
	out := make([]dto.PlanRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.PlanRowDTO{
			Product:   r.Product,
			Category:  r.Category,
			Unit:      r.Unit,
			Stock:     r.Stock,
			Requested: r.Requested,
			ToAcquire: r.ToAcquire,
		})
	}
	return out, nil
}

// ExportFile genera el archivo del requerimiento. El número es la fecha de
// generación en formato yyyymmddhhmmss, igual que el sistema original.
func (uc *RequirementUseCase) ExportFile(ctx context.Context, requester string, requests map[string]int64) (filename string, content []byte, err error) {
	rows, err := uc.BuildPlan(requests)
	if err != nil {
		return "", nil, err
	}
	date := uc.now()
	number := date.Format("20060102150405")
	content, err = uc.generator.GenerateRequirementPlan(ctx, number, requester, date, rows)
	if err != nil {
		return "", nil, err
	}
	return "requerimiento_" + number + ".pdf", content, nil
}
