package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// StockRepository define el puerto para la fila materializada de stock por
// producto. Es solo caché de escritura (invalidada/reescrita junto con cada
// movimiento); ninguna vista de lectura depende de ella.
type StockRepository interface {
	// GetForUpdate obtiene la fila y la bloquea (SELECT FOR UPDATE) dentro de
	// la transacción del movimiento. Si no existe devuelve cantidad 0.
	GetForUpdate(productName string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	Delete(productName string) error
	DeleteAll() error
}
