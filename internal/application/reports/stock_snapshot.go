package reports

import (
	"context"
	"sort"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain/inventory"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// StockSnapshotUseCase produce el snapshot de stock actual: la proyección del
// libro restringida a productos con stock > 0, ordenada por nombre.
type StockSnapshotUseCase struct {
	movRepo   repository.MovementRepository
	generator ReportFileGenerator
}

// NewStockSnapshotUseCase construye el caso de uso.
func NewStockSnapshotUseCase(movRepo repository.MovementRepository, generator ReportFileGenerator) *StockSnapshotUseCase {
	return &StockSnapshotUseCase{movRepo: movRepo, generator: generator}
}

// Snapshot reproyecta el libro y devuelve las filas con stock > 0 ordenadas
// por producto ascendente. Misma proyección que tablero y plan: para un mismo
// estado del libro los tres reportan exactamente el mismo número.
func (uc *StockSnapshotUseCase) Snapshot() ([]dto.StockRowDTO, error) {
	movements, err := uc.movRepo.List()
	if err != nil {
		return nil, err
	}
	stock, err := inventory.Project(movements)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.StockRowDTO, 0, len(stock))
	for product, qty := range stock {
		if qty <= 0 {
			continue
		}
		rows = append(rows, dto.StockRowDTO{Product: product, Stock: qty})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Product < rows[j].Product })
	return rows, nil
}

// ExportFile genera el archivo descargable del snapshot.
func (uc *StockSnapshotUseCase) ExportFile(ctx context.Context) ([]byte, error) {
	rows, err := uc.Snapshot()
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateStockSnapshot(ctx, rows)
}

// ExportMovementLog genera el archivo descargable con el libro completo.
func (uc *StockSnapshotUseCase) ExportMovementLog(ctx context.Context) ([]byte, error) {
	movements, err := uc.movRepo.List()
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateMovementLog(ctx, toMovementResponses(movements))
}
