package inventory

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// PlanRow es una línea del plan de requerimientos: cuánto solicitar de un
// producto dado su stock proyectado y la cantidad pedida por el usuario.
type PlanRow struct {
	Product   string
	Category  string
	Unit      string
	Stock     int64
	Requested int64
	ToAcquire int64
}

// Plan deriva el plan de requerimientos (servicio de dominio, función pura).
//
// Para cada producto del catálogo con cantidad pedida estrictamente positiva:
// ToAcquire = max(0, Requested - stock proyectado). Productos con pedido cero
// o ausente se omiten del resultado (no van con ToAcquire=0). El orden de
// salida sigue el orden de entrada del catálogo, sin reordenar.
//
// stock es la proyección de Project; claves ausentes cuentan como 0, de modo
// que las tres vistas de lectura reportan exactamente el mismo número.
func Plan(products []*entity.Product, stock map[string]int64, requests map[string]int64) []PlanRow {
	rows := make([]PlanRow, 0, len(requests))
	for _, p := range products {
		requested := requests[p.Name]
		if requested <= 0 {
			continue
		}
		current := stock[p.Name]
		toAcquire := requested - current
		if toAcquire < 0 {
			toAcquire = 0
		}
		rows = append(rows, PlanRow{
			Product:   p.Name,
			Category:  p.Category,
			Unit:      p.Unit,
			Stock:     current,
			Requested: requested,
			ToAcquire: toAcquire,
		})
	}
	return rows
}
