package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). La tabla usa un BIGSERIAL como ID, así que el orden
// de inserción del libro es ORDER BY id.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento y asigna el ID secuencial generado.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movimientos (fecha, producto, categoria, unidad, cantidad, tipo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		movement.Date, movement.ProductName, movement.Category,
		movement.Unit, movement.Quantity, movement.Kind,
	).Scan(&movement.ID)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// List devuelve el libro completo en orden de inserción (por ID ascendente).
func (r *MovementRepo) List() ([]*entity.Movement, error) {
	query := `
		SELECT id, fecha, producto, categoria, unidad, cantidad, tipo
		FROM movimientos ORDER BY id ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.Date, &m.ProductName, &m.Category,
			&m.Unit, &m.Quantity, &m.Kind); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete elimina un movimiento por ID y devuelve las filas afectadas.
func (r *MovementRepo) Delete(id int64) (int64, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM movimientos WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete movement: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteAll vacía el libro completo.
func (r *MovementRepo) DeleteAll() error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM movimientos`); err != nil {
		return fmt.Errorf("reset movements: %w", err)
	}
	return nil
}
