package reports

import (
	"sort"
	"strings"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/inventory"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// CategoryAll es el centinela de filtro que desactiva el filtro por categoría.
const CategoryAll = "todas"

// DashboardUseCase arma la vista del tablero: catálogo filtrado + proyección
// de stock completa + libro completo. Reproyecta desde el libro en cada
// lectura; no hay caché persistida autoritativa.
type DashboardUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(productRepo repository.ProductRepository, movRepo repository.MovementRepository) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo, movRepo: movRepo}
}

// GetDashboard devuelve el tablero. categoryFilter es insensible a mayúsculas
// y "todas" (o vacío) lo desactiva; search filtra por subcadena del nombre,
// también insensible a mayúsculas.
//
// Los filtros recortan únicamente la lista de productos: el mapa de stock y
// la lista de movimientos salen SIEMPRE completos, para que el tablero
// reporte los mismos números que el snapshot y el plan sobre el mismo libro.
func (uc *DashboardUseCase) GetDashboard(categoryFilter, search string) (*dto.DashboardResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movRepo.List()
	if err != nil {
		return nil, err
	}
	stock, err := inventory.Project(movements)
	if err != nil {
		return nil, err
	}

	catFilter := strings.ToLower(strings.TrimSpace(categoryFilter))
	if catFilter == "" {
		catFilter = CategoryAll
	}
	searchFilter := strings.ToLower(strings.TrimSpace(search))

	filtered := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if catFilter != CategoryAll && strings.ToLower(strings.TrimSpace(p.Category)) != catFilter {
			continue
		}
		if searchFilter != "" && !strings.Contains(strings.ToLower(p.Name), searchFilter) {
			continue
		}
		filtered = append(filtered, toProductResponse(p))
	}

	return &dto.DashboardResponse{
		Products:       filtered,
		Categories:     categories(products),
		Stock:          stock,
		Movements:      toMovementResponses(movements),
		CategoryFilter: catFilter,
		Search:         searchFilter,
	}, nil
}

// categories devuelve "Todas" + categorías distintas normalizadas y ordenadas.
func categories(products []*entity.Product) []string {
	seen := make(map[string]struct{}, len(products))
	list := make([]string, 0, len(products))
	for _, p := range products {
		c := strings.ToUpper(strings.TrimSpace(p.Category))
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		list = append(list, c)
	}
	sort.Strings(list)
	return append([]string{"Todas"}, list...)
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        p.ID,
		Category:  p.Category,
		Name:      p.Name,
		Unit:      p.Unit,
		CreatedAt: p.CreatedAt,
	}
}

func toMovementResponses(movements []*entity.Movement) []dto.MovementResponse {
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.MovementResponse{
			ID:          m.ID,
			Date:        m.Date,
			ProductName: m.ProductName,
			Category:    m.Category,
			Unit:        m.Unit,
			Quantity:    m.Quantity,
			Kind:        m.Kind,
		})
	}
	return out
}
