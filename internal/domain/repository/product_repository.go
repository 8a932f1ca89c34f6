package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// El catálogo se lista en orden de creación.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByName(name string) (*entity.Product, error)
	List() ([]*entity.Product, error)

	// GetLast devuelve el producto agregado más recientemente, o nil si el
	// catálogo está vacío.
	GetLast() (*entity.Product, error)
	Delete(id string) error
}
