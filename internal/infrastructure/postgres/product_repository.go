package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del catálogo sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto. Nombre duplicado devuelve domain.ErrDuplicate
// (constraint único sobre nombre).
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO productos (id, categoria, nombre, unidad, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Category, product.Name, product.Unit, product.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// GetByName obtiene un producto por nombre (ya normalizado). nil si no existe.
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	query := `
		SELECT id, categoria, nombre, unidad, created_at
		FROM productos WHERE nombre = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, name).Scan(
		&p.ID, &p.Category, &p.Name, &p.Unit, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List devuelve el catálogo en orden de creación.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `
		SELECT id, categoria, nombre, unidad, created_at
		FROM productos ORDER BY created_at ASC, nombre ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Category, &p.Name, &p.Unit, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetLast devuelve el producto agregado más recientemente, o nil si no hay.
func (r *ProductRepo) GetLast() (*entity.Product, error) {
	query := `
		SELECT id, categoria, nombre, unidad, created_at
		FROM productos ORDER BY created_at DESC, nombre DESC LIMIT 1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query).Scan(
		&p.ID, &p.Category, &p.Name, &p.Unit, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get last product: %w", err)
	}
	return &p, nil
}

// Delete elimina un producto por ID. Los movimientos históricos que lo
// referencian no se tocan (referencia blanda).
func (r *ProductRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
