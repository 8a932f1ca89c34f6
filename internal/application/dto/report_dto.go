package dto

// DashboardResponse datos del tablero principal.
//
// Los filtros de categoría y búsqueda recortan SOLO la lista de productos
// (la selección del UI); Stock y Movements van siempre completos: el filtro
// nunca recorta el histórico ni los totales.
type DashboardResponse struct {
	Products       []ProductResponse  `json:"products"`
	Categories     []string           `json:"categories"`
	Stock          map[string]int64   `json:"stock"`
	Movements      []MovementResponse `json:"movements"`
	CategoryFilter string             `json:"category_filter"`
	Search         string             `json:"search"`
}

// StockRowDTO fila del snapshot de stock (solo productos con stock > 0,
// ordenadas por nombre de producto ascendente).
type StockRowDTO struct {
	Product string `json:"product"`
	Stock   int64  `json:"stock"`
}

// RequirementProductDTO producto del catálogo con su stock proyectado
// (0 si no tiene movimientos), para el formulario de requerimientos.
type RequirementProductDTO struct {
	Product  string `json:"product"`
	Category string `json:"category"`
	Unit     string `json:"unit"`
	Stock    int64  `json:"stock"`
}

// PlanRowDTO fila del plan de requerimientos exportado.
type PlanRowDTO struct {
	Product   string `json:"product"`
	Category  string `json:"category"`
	Unit      string `json:"unit"`
	Stock     int64  `json:"stock"`
	Requested int64  `json:"requested"`
	ToAcquire int64  `json:"to_acquire"`
}

// RequirementPlanRequest body para POST /api/reports/requirements/file.
// Requests mapea nombre de producto → cantidad requerida; entradas con 0 o
// ausentes quedan fuera del plan.
type RequirementPlanRequest struct {
	Requester string           `json:"requester"`
	Requests  map[string]int64 `json:"requests"`
}
