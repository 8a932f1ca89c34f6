package inventory

import (
	"fmt"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// Project proyecta el libro de movimientos al stock actual por producto
// (servicio de dominio, función pura).
//
// Algoritmo: se recorre el libro en su orden de inserción (el orden en que
// los movimientos fueron persistidos, NO por fecha: varios movimientos pueden
// compartir fecha y el almacén no garantiza orden por fecha). Por producto se
// acumula un total desde 0 donde cada entrada suma Quantity y cada salida la
// resta, y DESPUÉS DE CADA PASO el total se recorta a mínimo 0 antes de
// aplicar el siguiente movimiento.
//
// El recorte por paso (y no solo al final) es parte del contrato: una salida
// que dejaría el stock negativo se absorbe como "piso en cero" y no crea una
// deuda que una entrada posterior deba pagar primero. Ej: stock 5, salida 10
// → 0 (no -5); luego entrada 3 → 3 (no -2).
//
// Productos sin movimientos no aparecen en el resultado; el caller debe
// asumir 0 para claves ausentes.
//
// Asume movimientos ya validados y falla rápido si encuentra una cantidad
// no positiva o un tipo desconocido (eso es un bug del caller, no un estado
// representable).
func Project(movements []*entity.Movement) (map[string]int64, error) {
	stock := make(map[string]int64, len(movements))
	for _, m := range movements {
		if m.Quantity <= 0 {
			return nil, fmt.Errorf("%w: movimiento %d con cantidad %d", domain.ErrInvalidInput, m.ID, m.Quantity)
		}
		switch m.Kind {
		case entity.KindEntry, entity.KindExit:
		default:
			return nil, fmt.Errorf("%w: movimiento %d con tipo %q", domain.ErrInvalidInput, m.ID, m.Kind)
		}
		total := stock[m.ProductName] + m.Signed()
		if total < 0 {
			total = 0
		}
		stock[m.ProductName] = total
	}
	return stock, nil
}

// Apply aplica un único movimiento sobre un stock previo con el mismo recorte
// por paso de Project. Lo usa la caché materializada para mantener la fila de
// stock en la transacción de cada alta sin reproyectar todo el libro.
func Apply(current int64, kind string, quantity int64) (int64, error) {
	if quantity <= 0 {
		return 0, fmt.Errorf("%w: cantidad %d", domain.ErrInvalidInput, quantity)
	}
	var total int64
	switch kind {
	case entity.KindEntry:
		total = current + quantity
	case entity.KindExit:
		total = current - quantity
	default:
		return 0, fmt.Errorf("%w: tipo de movimiento %q", domain.ErrInvalidInput, kind)
	}
	if total < 0 {
		total = 0
	}
	return total, nil
}
