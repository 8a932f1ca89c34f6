package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para el libro de
// movimientos (append-only; sin operación de update).
type MovementRepository interface {
	// Create persiste el movimiento y asigna su ID secuencial.
	Create(movement *entity.Movement) error

	// List devuelve el libro completo en orden de inserción (por ID
	// ascendente). Es el orden que consume inventory.Project.
	List() ([]*entity.Movement, error)

	// Delete elimina un movimiento por ID. Devuelve cuántas filas afectó
	// (0 si no existía); el caller decide si eso es un error.
	Delete(id int64) (int64, error)

	// DeleteAll vacía el libro sin filtro alguno. Irreversible.
	DeleteAll() error
}
