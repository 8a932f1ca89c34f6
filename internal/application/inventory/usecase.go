package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	domaininv "github.com/tu-usuario/almacen-api/internal/domain/inventory"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// LedgerUseCase registra y administra los movimientos del libro de inventario
// de forma transaccional (alta, borrado por ID, reset total) y expone su
// lectura en orden de inserción.
type LedgerUseCase struct {
	txRunner    TxRunner
	movRepo     repository.MovementRepository
	productRepo repository.ProductRepository
	now         func() time.Time
}

// NewLedgerUseCase construye el caso de uso. now puede ser nil (usa time.Now);
// se inyecta para fijar fechas en tests.
func NewLedgerUseCase(
	txRunner TxRunner,
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	now func() time.Time,
) *LedgerUseCase {
	if now == nil {
		now = time.Now
	}
	return &LedgerUseCase{
		txRunner:    txRunner,
		movRepo:     movRepo,
		productRepo: productRepo,
		now:         now,
	}
}

// Append valida y persiste un movimiento nuevo al final del libro.
//
// Category y Unit se copian del producto del catálogo EN ESTE MOMENTO
// (desnormalización al crear): cambios posteriores del catálogo no tocan el
// histórico. Si el producto no existe en el catálogo, el movimiento se
// registra igual con categoría y unidad vacías (referencia blanda).
//
// En la misma transacción se reescribe la fila materializada de stock con el
// mismo recorte por paso del proyector; esa fila es solo caché, ninguna
// lectura depende de ella.
func (uc *LedgerUseCase) Append(ctx context.Context, productName string, quantity int64, kind string) (*entity.Movement, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if kind != entity.KindEntry && kind != entity.KindExit {
		return nil, domain.ErrInvalidInput
	}
	name := strings.ToUpper(strings.TrimSpace(productName))
	if name == "" {
		return nil, domain.ErrInvalidInput
	}

	var category, unit string
	product, err := uc.productRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if product != nil {
		category = product.Category
		unit = product.Unit
	}

	mov := &entity.Movement{
		Date:        uc.now(),
		ProductName: name,
		Category:    category,
		Unit:        unit,
		Quantity:    quantity,
		Kind:        kind,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error {
		// Bloquea la fila de la caché (SELECT FOR UPDATE) y la reescribe con
		// el mismo recorte en cero del proyector.
		stock, err := stockRepo.GetForUpdate(name)
		if err != nil {
			return err
		}
		newQty, err := domaininv.Apply(stock.Quantity, kind, quantity)
		if err != nil {
			return err
		}
		stock.Quantity = newQty
		stock.UpdatedAt = mov.Date
		if err := stockRepo.Upsert(stock); err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// GetLedger devuelve el libro completo en orden de inserción.
func (uc *LedgerUseCase) GetLedger() ([]*entity.Movement, error) {
	return uc.movRepo.List()
}

// DeleteMovement elimina un movimiento por ID. Si el ID no existe es un no-op
// silencioso (borrado idempotente, igual que el sistema original).
func (uc *LedgerUseCase) DeleteMovement(ctx context.Context, id int64) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		_ repository.StockRepository,
	) error {
		_, err := movRepo.Delete(id)
		return err
	})
}

// Reset vacía el libro completo y la caché de stock en una sola transacción.
// Sin filtro y sin vuelta atrás: tras el reset la proyección de cualquier
// catálogo es el mapa vacío.
func (uc *LedgerUseCase) Reset(ctx context.Context) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error {
		if err := movRepo.DeleteAll(); err != nil {
			return err
		}
		return stockRepo.DeleteAll()
	})
}
