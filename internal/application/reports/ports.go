package reports

import (
	"context"
	"time"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
)

// ReportFileGenerator genera los archivos descargables de reportes.
// El formato del documento es un detalle del adaptador (infrastructure/pdf);
// los casos de uso solo producen filas ya proyectadas.
type ReportFileGenerator interface {
	// GenerateMovementLog exporta el libro completo de movimientos.
	GenerateMovementLog(ctx context.Context, movements []dto.MovementResponse) ([]byte, error)

	// GenerateStockSnapshot exporta el stock actual (solo > 0, ordenado).
	GenerateStockSnapshot(ctx context.Context, rows []dto.StockRowDTO) ([]byte, error)

	// GenerateRequirementPlan exporta el plan con encabezado: número de
	// requerimiento, solicitante y fecha.
	GenerateRequirementPlan(ctx context.Context, number, requester string, date time.Time, rows []dto.PlanRowDTO) ([]byte, error)
}
