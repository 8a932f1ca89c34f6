package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/reports"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// ─── Fakes en memoria ────────────────────────────────────────────────────────

type stubMovementRepo struct {
	movements []*entity.Movement
}

func (r *stubMovementRepo) Create(m *entity.Movement) error {
	m.ID = int64(len(r.movements) + 1)
	r.movements = append(r.movements, m)
	return nil
}
func (r *stubMovementRepo) List() ([]*entity.Movement, error) { return r.movements, nil }
func (r *stubMovementRepo) Delete(int64) (int64, error) { return 0, nil }
func (r *stubMovementRepo) DeleteAll() error { r.movements = nil; return nil }

type stubProductRepo struct {
	products []*entity.Product
}

func (r *stubProductRepo) Create(p *entity.Product) error { r.products = append(r.products, p); return nil }
func (r *stubProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}
func (r *stubProductRepo) List() ([]*entity.Product, error) { return r.products, nil }
func (r *stubProductRepo) GetLast() (*entity.Product, error) {
	if len(r.products) == 0 {
		return nil, nil
	}
	return r.products[len(r.products)-1], nil
}
func (r *stubProductRepo) Delete(string) error { return nil }

// stubGenerator captura los argumentos con los que se pidió el archivo.
type stubGenerator struct {
	number    string
	requester string
	date      time.Time
	planRows  []dto.PlanRowDTO
	stockRows []dto.StockRowDTO
	movements []dto.MovementResponse
}

func (g *stubGenerator) GenerateMovementLog(_ context.Context, movements []dto.MovementResponse) ([]byte, error) {
	g.movements = movements
	return []byte("log"), nil
}

func (g *stubGenerator) GenerateStockSnapshot(_ context.Context, rows []dto.StockRowDTO) ([]byte, error) {
	g.stockRows = rows
	return []byte("stock"), nil
}

func (g *stubGenerator) GenerateRequirementPlan(_ context.Context, number, requester string, date time.Time, rows []dto.PlanRowDTO) ([]byte, error) {
	g.number = number
	g.requester = requester
	g.date = date
	g.planRows = rows
	return []byte("plan"), nil
}

// ─── Fixture ────────────────────────────────────────────────────────────────

func newFixture() (*stubProductRepo, *stubMovementRepo) {
	products := &stubProductRepo{products: []*entity.Product{
		{ID: "1", Category: "OBRA", Name: "CEMENTO", Unit: "SACO"},
		{ID: "2", Category: "OBRA", Name: "ARENA", Unit: "M3"},
		{ID: "3", Category: "FERRETERIA", Name: "TORNILLO", Unit: "CAJA"},
	}}
	// Libro con trayectoria de recorte: CEMENTO pasa por 0 en el camino.
	movs := &stubMovementRepo{movements: []*entity.Movement{
		{ID: 1, ProductName: "CEMENTO", Category: "OBRA", Unit: "SACO", Quantity: 5, Kind: entity.KindEntry},
		{ID: 2, ProductName: "CEMENTO", Category: "OBRA", Unit: "SACO", Quantity: 10, Kind: entity.KindExit},
		{ID: 3, ProductName: "CEMENTO", Category: "OBRA", Unit: "SACO", Quantity: 3, Kind: entity.KindEntry},
		{ID: 4, ProductName: "ARENA", Category: "OBRA", Unit: "M3", Quantity: 7, Kind: entity.KindEntry},
		{ID: 5, ProductName: "ARENA", Category: "OBRA", Unit: "M3", Quantity: 7, Kind: entity.KindExit},
	}}
	return products, movs
}

// ─── Tests ──────────────────────────────────────────────────────────────────

// Las tres vistas (tablero, snapshot, requerimientos) reproyectan el mismo
// libro y reportan exactamente el mismo stock por producto.
func TestVistas_MismoStockParaElMismoLibro(t *testing.T) {
	products, movs := newFixture()

	dashboard := reports.NewDashboardUseCase(products, movs)
	snapshot := reports.NewStockSnapshotUseCase(movs, &stubGenerator{})
	requirement := reports.NewRequirementUseCase(products, movs, &stubGenerator{}, nil)

	dash, err := dashboard.GetDashboard("", "")
	require.NoError(t, err)
	// trayectoria con recorte: 5, luego 0 (no -5), luego 3; ARENA 7-7=0
	assert.Equal(t, int64(3), dash.Stock["CEMENTO"])
	assert.Equal(t, int64(0), dash.Stock["ARENA"])

	rows, err := snapshot.Snapshot()
	require.NoError(t, err)
	require.Len(t, rows, 1, "solo productos con stock > 0")
	assert.Equal(t, "CEMENTO", rows[0].Product)
	assert.Equal(t, dash.Stock["CEMENTO"], rows[0].Stock)

	reqProducts, err := requirement.ListProducts()
	require.NoError(t, err)
	require.Len(t, reqProducts, 3)
	for _, rp := range reqProducts {
		assert.Equal(t, dash.Stock[rp.Product], rp.Stock, "stock de %s difiere entre vistas", rp.Product)
	}

	plan, err := requirement.BuildPlan(map[string]int64{"CEMENTO": 10, "ARENA": 4})
	require.NoError(t, err)
	require.Len(t, plan, 2)
	for _, row := range plan {
		assert.Equal(t, dash.Stock[row.Product], row.Stock, "stock de %s difiere entre vistas", row.Product)
	}
}

// Los filtros del tablero recortan solo la lista de productos: stock y
// movimientos salen siempre completos.
func TestDashboard_FiltrosNoRecortanStockNiMovimientos(t *testing.T) {
	products, movs := newFixture()
	dashboard := reports.NewDashboardUseCase(products, movs)

	dash, err := dashboard.GetDashboard("ferreteria", "torn")
	require.NoError(t, err)

	require.Len(t, dash.Products, 1)
	assert.Equal(t, "TORNILLO", dash.Products[0].Name)

	assert.Len(t, dash.Movements, 5, "el libro va completo aunque haya filtro")
	assert.Contains(t, dash.Stock, "CEMENTO", "el stock proyectado va completo aunque haya filtro")
	assert.Contains(t, dash.Stock, "ARENA")
}

// "todas" (insensible a mayúsculas) y el filtro vacío desactivan el filtro.
func TestDashboard_CentinelaTodas(t *testing.T) {
	products, movs := newFixture()
	dashboard := reports.NewDashboardUseCase(products, movs)

	for _, filtro := range []string{"", "todas", "Todas", "TODAS"} {
		dash, err := dashboard.GetDashboard(filtro, "")
		require.NoError(t, err)
		assert.Len(t, dash.Products, 3, "filtro %q debe desactivar el filtro", filtro)
	}
}

func TestDashboard_Categorias(t *testing.T) {
	products, movs := newFixture()
	dashboard := reports.NewDashboardUseCase(products, movs)

	dash, err := dashboard.GetDashboard("", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Todas", "FERRETERIA", "OBRA"}, dash.Categories)
}

// El snapshot lista solo stock > 0, ordenado por producto.
func TestSnapshot_SoloPositivoYOrdenado(t *testing.T) {
	movs := &stubMovementRepo{movements: []*entity.Movement{
		{ID: 1, ProductName: "ZINC", Quantity: 2, Kind: entity.KindEntry},
		{ID: 2, ProductName: "ALAMBRE", Quantity: 4, Kind: entity.KindEntry},
		{ID: 3, ProductName: "MALLA", Quantity: 1, Kind: entity.KindEntry},
		{ID: 4, ProductName: "MALLA", Quantity: 1, Kind: entity.KindExit},
	}}
	snapshot := reports.NewStockSnapshotUseCase(movs, &stubGenerator{})

	rows, err := snapshot.Snapshot()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "ALAMBRE", rows[0].Product)
	assert.Equal(t, "ZINC", rows[1].Product)
}

// Tras vaciar el libro, todas las vistas vuelven a cero.
func TestVistas_LibroVacio(t *testing.T) {
	products, movs := newFixture()
	require.NoError(t, movs.DeleteAll())

	dashboard := reports.NewDashboardUseCase(products, movs)
	snapshot := reports.NewStockSnapshotUseCase(movs, &stubGenerator{})
	requirement := reports.NewRequirementUseCase(products, movs, &stubGenerator{}, nil)

	dash, err := dashboard.GetDashboard("", "")
	require.NoError(t, err)
	assert.Empty(t, dash.Stock)
	assert.Empty(t, dash.Movements)

	rows, err := snapshot.Snapshot()
	require.NoError(t, err)
	assert.Empty(t, rows)

	reqProducts, err := requirement.ListProducts()
	require.NoError(t, err)
	for _, rp := range reqProducts {
		assert.Equal(t, int64(0), rp.Stock)
	}
}

// El número de requerimiento es la fecha de generación yyyymmddhhmmss y el
// nombre del archivo lo incluye.
func TestRequirement_ExportFile(t *testing.T) {
	products, movs := newFixture()
	gen := &stubGenerator{}
	fixed := time.Date(2026, 8, 15, 14, 5, 9, 0, time.UTC)
	requirement := reports.NewRequirementUseCase(products, movs, gen, func() time.Time { return fixed })

	filename, content, err := requirement.ExportFile(context.Background(), "Juan Pérez", map[string]int64{"CEMENTO": 10})
	require.NoError(t, err)

	assert.Equal(t, "requerimiento_20260815140509.pdf", filename)
	assert.Equal(t, []byte("plan"), content)
	assert.Equal(t, "20260815140509", gen.number)
	assert.Equal(t, "Juan Pérez", gen.requester)
	assert.Equal(t, fixed, gen.date)
	require.Len(t, gen.planRows, 1)
	assert.Equal(t, "CEMENTO", gen.planRows[0].Product)
	assert.Equal(t, int64(7), gen.planRows[0].ToAcquire, "requerida 10 - stock 3")
}

// La exportación del libro de movimientos manda el libro completo al generador.
func TestSnapshot_ExportMovementLog(t *testing.T) {
	_, movs := newFixture()
	gen := &stubGenerator{}
	snapshot := reports.NewStockSnapshotUseCase(movs, gen)

	content, err := snapshot.ExportMovementLog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("log"), content)
	assert.Len(t, gen.movements, 5)
}
