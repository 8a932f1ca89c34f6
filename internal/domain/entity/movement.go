package entity

import "time"

// Tipos de movimiento del libro de inventario.
const (
	KindEntry = "entrada" // entrada: suma stock
	KindExit  = "salida"  // salida: resta stock
)

// Movement representa un movimiento de stock registrado en el libro (ledger).
// Inmutable una vez creado; solo puede eliminarse por ID.
//
// Category y Unit son copias desnormalizadas de los metadatos del producto
// AL MOMENTO de crear el movimiento (no un join en vivo): renombrar o
// recategorizar un producto no altera los movimientos históricos. Esto es una
// decisión de diseño, no un bug.
//
// ProductName es una referencia blanda: un movimiento puede apuntar a un
// producto ya eliminado y su aporte al stock sigue contando.
//
// El ID es un secuencial de la base de datos; el orden del libro es el orden
// de inserción (por ID), no el de Date, porque varios movimientos pueden
// compartir fecha.
type Movement struct {
	ID          int64
	Date        time.Time
	ProductName string
	Category    string
	Unit        string
	Quantity    int64 // siempre > 0; el signo lo da Kind
	Kind        string
}

// IsEntry indica si el movimiento suma stock.
func (m *Movement) IsEntry() bool { return m.Kind == KindEntry }

// Signed devuelve la cantidad con signo según el tipo.
func (m *Movement) Signed() int64 {
	if m.IsEntry() {
		return m.Quantity
	}
	return -m.Quantity
}
