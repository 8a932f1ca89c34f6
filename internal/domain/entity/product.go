package entity

import "time"

// Product representa un ítem del catálogo de la organización.
// Name es único y se normaliza a mayúsculas al crear. Category y Unit son
// metadatos descriptivos; el stock NO vive aquí, se deriva del libro de
// movimientos (ver domain/inventory.Project).
// Un producto nunca se actualiza en sitio: se crea y, a lo sumo, se elimina.
type Product struct {
	ID        string
	Category  string
	Name      string // único en el catálogo, normalizado a mayúsculas
	Unit      string
	CreatedAt time.Time
}
