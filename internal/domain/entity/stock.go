package entity

import "time"

// Stock representa la fila materializada de stock actual por producto.
//
// Es una caché NO autoritativa: se reescribe en la misma transacción de cada
// movimiento y se vacía con el reset, pero ninguna vista la lee. La fuente de
// verdad para toda lectura es la proyección del libro (inventory.Project).
type Stock struct {
	ProductName string
	Quantity    int64
	UpdatedAt   time.Time
}
