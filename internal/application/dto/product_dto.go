package dto

import "time"

// CreateProductRequest body para POST /api/products.
// Los tres campos se normalizan a mayúsculas (igual que el alta original).
type CreateProductRequest struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Unit     string `json:"unit"`
}

// ProductResponse representación HTTP de un producto del catálogo.
type ProductResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"created_at"`
}
