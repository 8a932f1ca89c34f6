package dto

import "time"

// RegisterMovementRequest body para POST /api/movements.
// Kind: "entrada" | "salida". Quantity debe ser > 0.
type RegisterMovementRequest struct {
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
	Kind        string `json:"kind"`
}

// MovementResponse representación HTTP de un movimiento del libro.
// Category y Unit son los valores desnormalizados al momento del alta.
type MovementResponse struct {
	ID          int64     `json:"id"`
	Date        time.Time `json:"date"`
	ProductName string    `json:"product_name"`
	Category    string    `json:"category"`
	Unit        string    `json:"unit"`
	Quantity    int64     `json:"quantity"`
	Kind        string    `json:"kind"`
}
