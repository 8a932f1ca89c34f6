package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// ─── Fakes en memoria ────────────────────────────────────────────────────────

type memProductRepo struct {
	products []*entity.Product
}

func (r *memProductRepo) Create(p *entity.Product) error {
	r.products = append(r.products, p)
	return nil
}

func (r *memProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) List() ([]*entity.Product, error) { return r.products, nil }

func (r *memProductRepo) GetLast() (*entity.Product, error) {
	if len(r.products) == 0 {
		return nil, nil
	}
	return r.products[len(r.products)-1], nil
}

func (r *memProductRepo) Delete(id string) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return nil
}

type memStockRepo struct {
	deleted []string
}

func (r *memStockRepo) GetForUpdate(productName string) (*entity.Stock, error) {
	return &entity.Stock{ProductName: productName}, nil
}
func (r *memStockRepo) Upsert(*entity.Stock) error { return nil }
func (r *memStockRepo) Delete(productName string) error {
	r.deleted = append(r.deleted, productName)
	return nil
}
func (r *memStockRepo) DeleteAll() error { return nil }

// ─── Tests ──────────────────────────────────────────────────────────────────

func TestProductCreate_NormalizaAMayusculas(t *testing.T) {
	uc := usecase.NewProductUseCase(&memProductRepo{}, &memStockRepo{})

	resp, err := uc.Create(dto.CreateProductRequest{
		Category: " obra ",
		Name:     "cemento",
		Unit:     "saco",
	})
	require.NoError(t, err)
	assert.Equal(t, "OBRA", resp.Category)
	assert.Equal(t, "CEMENTO", resp.Name)
	assert.Equal(t, "SACO", resp.Unit)
	assert.NotEmpty(t, resp.ID)
}

func TestProductCreate_NombreVacio(t *testing.T) {
	uc := usecase.NewProductUseCase(&memProductRepo{}, &memStockRepo{})

	_, err := uc.Create(dto.CreateProductRequest{Category: "OBRA", Name: "   ", Unit: "SACO"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El nombre es único tras normalizar: "cemento" y "CEMENTO" chocan.
func TestProductCreate_Duplicado(t *testing.T) {
	uc := usecase.NewProductUseCase(&memProductRepo{}, &memStockRepo{})

	_, err := uc.Create(dto.CreateProductRequest{Category: "OBRA", Name: "CEMENTO", Unit: "SACO"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProductRequest{Category: "OBRA", Name: "cemento", Unit: "SACO"})
	require.ErrorIs(t, err, domain.ErrDuplicate)
}

// DeleteLast con catálogo vacío es un no-op silencioso.
func TestProductDeleteLast_CatalogoVacio(t *testing.T) {
	uc := usecase.NewProductUseCase(&memProductRepo{}, &memStockRepo{})
	require.NoError(t, uc.DeleteLast())
}

// DeleteLast quita el agregado más reciente y su fila en la caché de stock;
// el libro de movimientos no se toca desde aquí.
func TestProductDeleteLast_EliminaElUltimo(t *testing.T) {
	repo := &memProductRepo{}
	stock := &memStockRepo{}
	uc := usecase.NewProductUseCase(repo, stock)

	_, err := uc.Create(dto.CreateProductRequest{Category: "OBRA", Name: "CEMENTO", Unit: "SACO"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateProductRequest{Category: "OBRA", Name: "ARENA", Unit: "M3"})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteLast())

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "CEMENTO", list[0].Name)
	assert.Equal(t, []string{"ARENA"}, stock.deleted)
}
