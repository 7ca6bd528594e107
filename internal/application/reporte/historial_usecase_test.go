package reporte_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/specialwash/gestion-api/internal/application/dto"
	"github.com/specialwash/gestion-api/internal/application/reporte"
	"github.com/specialwash/gestion-api/internal/domain/entity"
)

// ── Fakes en memoria ──────────────────────────────────────────────────────────

type movRepoFake struct {
	entradas []*entity.Entrada
	salidas  []*entity.Salida
}

func (f *movRepoFake) CreateEntrada(e *entity.Entrada) error      { f.entradas = append(f.entradas, e); return nil }
func (f *movRepoFake) CreateSalida(s *entity.Salida) error        { f.salidas = append(f.salidas, s); return nil }
func (f *movRepoFake) ListEntradas() ([]*entity.Entrada, error)   { return f.entradas, nil }
func (f *movRepoFake) ListSalidas() ([]*entity.Salida, error)     { return f.salidas, nil }

type productoRepoFake struct{ productos []*entity.Producto }

func (f *productoRepoFake) Create(p *entity.Producto) error            { f.productos = append(f.productos, p); return nil }
func (f *productoRepoFake) GetByID(id string) (*entity.Producto, error) {
	for _, p := range f.productos {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (f *productoRepoFake) Update(*entity.Producto) error          { return nil }
func (f *productoRepoFake) AjustarStock(string, int) error         { return nil }
func (f *productoRepoFake) List() ([]*entity.Producto, error)      { return f.productos, nil }
func (f *productoRepoFake) Delete(string) error                    { return nil }

type proveedorRepoFake struct{ proveedores []*entity.Proveedor }

func (f *proveedorRepoFake) Create(p *entity.Proveedor) error             { return nil }
func (f *proveedorRepoFake) GetByID(string) (*entity.Proveedor, error)    { return nil, nil }
func (f *proveedorRepoFake) Update(*entity.Proveedor) error               { return nil }
func (f *proveedorRepoFake) List() ([]*entity.Proveedor, error)           { return f.proveedores, nil }
func (f *proveedorRepoFake) Delete(string) error                          { return nil }

type usuarioRepoFake struct{ usuarios []*entity.Usuario }

func (f *usuarioRepoFake) Create(*entity.Usuario) error                  { return nil }
func (f *usuarioRepoFake) GetByID(string) (*entity.Usuario, error)       { return nil, nil }
func (f *usuarioRepoFake) FindByEmail(string) (*entity.Usuario, error)   { return nil, nil }
func (f *usuarioRepoFake) List() ([]*entity.Usuario, error)              { return f.usuarios, nil }

// ── Tests ─────────────────────────────────────────────────────────────────────

func construirUseCase() *reporte.HistorialUseCase {
	mov := &movRepoFake{
		entradas: []*entity.Entrada{
			{ID: "e1", Fecha: fecha("2025-01-10"), ProductoID: "p1", Cantidad: 2, PrecioSinIVA: dec(16.53), ValorIVA: dec(3.47), PrecioConIVA: dec(20)},
			{ID: "e2", Fecha: fecha("2025-02-10"), ProductoID: "p2", Cantidad: 3, PrecioSinIVA: dec(24.79), ValorIVA: dec(5.21), PrecioConIVA: dec(30)},
		},
		salidas: []*entity.Salida{
			{ID: "s1", Fecha: fecha("2025-02-01"), ProductoID: "p1", UsuarioID: "u1", Cantidad: 4},
		},
	}
	prods := &productoRepoFake{productos: []*entity.Producto{
		{ID: "p1", Nombre: "Champú coche"},
		{ID: "p2", Nombre: "Cera"},
	}}
	provs := &proveedorRepoFake{}
	users := &usuarioRepoFake{usuarios: []*entity.Usuario{{ID: "u1", Nombre: "Laura"}}}
	return reporte.NewHistorialUseCase(mov, prods, provs, users)
}

func TestEntradas_FiltroDesdeYTotales(t *testing.T) {
	uc := construirUseCase()

	out, err := uc.Entradas(dto.ReporteRequest{Desde: "2025-02-01"})
	require.NoError(t, err)

	require.Len(t, out.Filas, 1)
	assert.Equal(t, "e2", out.Filas[0].ID)
	assert.Equal(t, 1, out.Totales.Registros)
	assert.Equal(t, 3, out.Totales.Cantidad)
	assert.Equal(t, "30.00", out.Totales.Bruto)
}

func TestEntradas_ReferenciaRotaUsaPlaceholder(t *testing.T) {
	uc := reporte.NewHistorialUseCase(
		&movRepoFake{entradas: []*entity.Entrada{
			{ID: "e1", Fecha: fecha("2025-01-10"), ProductoID: "fantasma", Cantidad: 1},
		}},
		&productoRepoFake{},
		&proveedorRepoFake{},
		&usuarioRepoFake{},
	)
	out, err := uc.Entradas(dto.ReporteRequest{})
	require.NoError(t, err)
	require.Len(t, out.Filas, 1)
	assert.Equal(t, "#fantasma", out.Filas[0].ProductoNombre)
	assert.Equal(t, "—", out.Filas[0].ProveedorNombre, "sin proveedor se muestra guion")
}

func TestEntradas_OrdenDescYBusquedaLibre(t *testing.T) {
	uc := construirUseCase()

	out, err := uc.Entradas(dto.ReporteRequest{})
	require.NoError(t, err)
	require.Len(t, out.Filas, 2)
	assert.Equal(t, "e2", out.Filas[0].ID, "la más reciente primero")

	out, err = uc.Entradas(dto.ReporteRequest{Texto: "champu"})
	require.NoError(t, err)
	require.Len(t, out.Filas, 1)
	assert.Equal(t, "e1", out.Filas[0].ID)
}

func TestSalidas_ResuelveUsuarioYTotalesSinImportes(t *testing.T) {
	uc := construirUseCase()

	out, err := uc.Salidas(dto.ReporteRequest{ProductoID: "p1"})
	require.NoError(t, err)
	require.Len(t, out.Filas, 1)
	assert.Equal(t, "Laura", out.Filas[0].UsuarioNombre)
	assert.Equal(t, 4, out.Totales.Cantidad)
	assert.Equal(t, "0.00", out.Totales.Bruto)
}

func TestParseHasta_LimiteInclusivoConHora(t *testing.T) {
	// Una entrada a las 10:00 del día "hasta" debe entrar en el informe.
	mov := &movRepoFake{entradas: []*entity.Entrada{
		{ID: "e1", Fecha: time.Date(2025, 3, 5, 10, 0, 0, 0, time.Local), ProductoID: "p1", Cantidad: 1},
	}}
	uc := reporte.NewHistorialUseCase(mov, &productoRepoFake{}, &proveedorRepoFake{}, &usuarioRepoFake{})

	out, err := uc.Entradas(dto.ReporteRequest{Hasta: "2025-03-05"})
	require.NoError(t, err)
	assert.Len(t, out.Filas, 1)
}
