package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo. Los productos no se actualizan en
// sitio: alta, listado y borrado del último agregado. El stock no vive aquí.
type ProductUseCase struct {
	repo      repository.ProductRepository
	stockRepo repository.StockRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, stockRepo repository.StockRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, stockRepo: stockRepo}
}

// Create agrega un producto al catálogo. Categoría, nombre y unidad se
// normalizan a mayúsculas; el nombre debe ser único (ErrDuplicate si ya
// existe). Nombre vacío es entrada inválida.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.ToUpper(strings.TrimSpace(in.Name))
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	product := &entity.Product{
		ID:        uuid.New().String(),
		Category:  strings.ToUpper(strings.TrimSpace(in.Category)),
		Name:      name,
		Unit:      strings.ToUpper(strings.TrimSpace(in.Unit)),
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve el catálogo en orden de creación.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// DeleteLast elimina el producto agregado más recientemente y su fila en la
// caché de stock. Con catálogo vacío es un no-op silencioso (igual que el
// sistema original). Sus movimientos históricos NO se tocan: la referencia es
// blanda y su aporte al stock proyectado sigue contando.
func (uc *ProductUseCase) DeleteLast() error {
	last, err := uc.repo.GetLast()
	if err != nil {
		return err
	}
	if last == nil {
		return nil
	}
	if err := uc.repo.Delete(last.ID); err != nil {
		return err
	}
	return uc.stockRepo.Delete(last.Name)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Category:  p.Category,
		Name:      p.Name,
		Unit:      p.Unit,
		CreatedAt: p.CreatedAt,
	}
}
