package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de la caché materializada de stock sobre
// PostgreSQL (usable con pool o tx). Solo escritura; ninguna vista la lee.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// GetForUpdate obtiene la fila y la bloquea (SELECT FOR UPDATE) dentro de la
// transacción del movimiento. Si no existe devuelve cantidad 0.
func (r *StockRepo) GetForUpdate(productName string) (*entity.Stock, error) {
	query := `
		SELECT producto, cantidad, updated_at
		FROM stock WHERE producto = $1 FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productName).Scan(
		&s.ProductName, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductName: productName, Quantity: 0}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad en stock (por producto).
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (producto, cantidad, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (producto)
		DO UPDATE SET cantidad = EXCLUDED.cantidad, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, stock.ProductName, stock.Quantity)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// Delete elimina la fila de un producto (al borrar el producto del catálogo).
func (r *StockRepo) Delete(productName string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM stock WHERE producto = $1`, productName); err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	return nil
}

// DeleteAll vacía la caché completa (reset del inventario).
func (r *StockRepo) DeleteAll() error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM stock`); err != nil {
		return fmt.Errorf("reset stock: %w", err)
	}
	return nil
}
