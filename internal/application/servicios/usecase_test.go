package servicios_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/specialwash/gestion-api/internal/application/dto"
	"github.com/specialwash/gestion-api/internal/application/servicios"
	"github.com/specialwash/gestion-api/internal/domain/entity"
)

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

var ahora = func() time.Time { return time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local) }

// ── Fakes ─────────────────────────────────────────────────────────────────────

type realizadoRepoFake struct{ items []*entity.ServicioRealizado }

func (f *realizadoRepoFake) Create(sr *entity.ServicioRealizado) error {
	f.items = append(f.items, sr)
	return nil
}
func (f *realizadoRepoFake) GetByID(id string) (*entity.ServicioRealizado, error) {
	for _, sr := range f.items {
		if sr.ID == id {
			return sr, nil
		}
	}
	return nil, nil
}
func (f *realizadoRepoFake) MarcarFacturado(id string, facturado bool) error {
	for _, sr := range f.items {
		if sr.ID == id {
			sr.Facturado = facturado
		}
	}
	return nil
}
func (f *realizadoRepoFake) List() ([]*entity.ServicioRealizado, error) { return f.items, nil }

type servicioRepoFake struct{ items []*entity.Servicio }

func (f *servicioRepoFake) Create(*entity.Servicio) error { return nil }
func (f *servicioRepoFake) GetByID(id string) (*entity.Servicio, error) {
	for _, s := range f.items {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}
func (f *servicioRepoFake) Update(*entity.Servicio) error      { return nil }
func (f *servicioRepoFake) List() ([]*entity.Servicio, error)  { return f.items, nil }

type vehiculoRepoFake struct{ items []*entity.Vehiculo }

func (f *vehiculoRepoFake) Create(*entity.Vehiculo) error               { return nil }
func (f *vehiculoRepoFake) GetByID(string) (*entity.Vehiculo, error)    { return nil, nil }
func (f *vehiculoRepoFake) Update(*entity.Vehiculo) error               { return nil }
func (f *vehiculoRepoFake) List() ([]*entity.Vehiculo, error)           { return f.items, nil }
func (f *vehiculoRepoFake) Delete(string) error                         { return nil }

func construir() (*servicios.UseCase, *realizadoRepoFake) {
	realizados := &realizadoRepoFake{}
	catalogo := &servicioRepoFake{items: []*entity.Servicio{
		{ID: "lavado", Nombre: "Lavado exterior", PrecioBase: dec(15), PorcentajeIVA: dec(21)},
	}}
	vehiculos := &vehiculoRepoFake{items: []*entity.Vehiculo{
		{ID: "v1", Matricula: "1234-ABC"},
	}}
	return servicios.NewUseCase(realizados, catalogo, vehiculos, ahora), realizados
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestRegistrar_PrecargaPrecioDelCatalogo(t *testing.T) {
	uc, repo := construir()

	sr, err := uc.Registrar(dto.RegistrarServicioRequest{
		VehiculoID: "v1",
		ServicioID: "lavado",
		Cantidad:   0, // se eleva a 1
	})
	require.NoError(t, err)
	require.Len(t, repo.items, 1)

	assert.Equal(t, 1, sr.Cantidad)
	assert.True(t, sr.PrecioUnitario.Equal(dec(15)), "sin precio explícito se usa el del catálogo")
	assert.True(t, sr.PorcentajeIVA.Equal(dec(21)))
	assert.False(t, sr.Facturado)
}

func TestRegistrar_ServicioInexistente(t *testing.T) {
	uc, _ := construir()
	_, err := uc.Registrar(dto.RegistrarServicioRequest{VehiculoID: "v1", ServicioID: "nope"})
	assert.Error(t, err)
}

func TestListar_DerivaImportesYTotaliza(t *testing.T) {
	uc, repo := construir()
	repo.items = []*entity.ServicioRealizado{
		{ID: "s1", VehiculoID: "v1", ServicioID: "lavado", Fecha: ahora(),
			Cantidad: 1, PrecioUnitario: dec(100), PorcentajeIVA: dec(21), Descuento: dec(10)},
	}

	out, err := uc.Listar(dto.ServiciosRequest{})
	require.NoError(t, err)
	require.Len(t, out.Filas, 1)

	// 100 con 10% de descuento = 90; con 21% de IVA = 108.90
	assert.Equal(t, "90.00", out.Filas[0].TotalSinIVA)
	assert.Equal(t, "108.90", out.Filas[0].TotalConIVA)
	assert.Equal(t, "1234-ABC", out.Filas[0].Matricula)
	assert.Equal(t, "108.90", out.Totales.Bruto)
}

func TestListar_FiltroFacturado(t *testing.T) {
	uc, repo := construir()
	repo.items = []*entity.ServicioRealizado{
		{ID: "a", VehiculoID: "v1", ServicioID: "lavado", Fecha: ahora(), Cantidad: 1, PrecioUnitario: dec(10), Facturado: true},
		{ID: "b", VehiculoID: "v1", ServicioID: "lavado", Fecha: ahora(), Cantidad: 1, PrecioUnitario: dec(10), Facturado: false},
	}

	out, err := uc.Listar(dto.ServiciosRequest{Facturado: "true"})
	require.NoError(t, err)
	require.Len(t, out.Filas, 1)
	assert.Equal(t, "a", out.Filas[0].ID)

	out, err = uc.Listar(dto.ServiciosRequest{Facturado: "false"})
	require.NoError(t, err)
	require.Len(t, out.Filas, 1)
	assert.Equal(t, "b", out.Filas[0].ID)
}

func TestListar_FiltroPorVehiculoYTexto(t *testing.T) {
	uc, repo := construir()
	repo.items = []*entity.ServicioRealizado{
		{ID: "a", VehiculoID: "v1", ServicioID: "lavado", Fecha: ahora(), Cantidad: 1, PrecioUnitario: dec(10)},
		{ID: "b", VehiculoID: "v2", ServicioID: "lavado", Fecha: ahora(), Cantidad: 1, PrecioUnitario: dec(10)},
	}

	out, err := uc.Listar(dto.ServiciosRequest{VehiculoID: "v2"})
	require.NoError(t, err)
	require.Len(t, out.Filas, 1)
	assert.Equal(t, "b", out.Filas[0].ID)

	out, err = uc.Listar(dto.ServiciosRequest{Texto: "1234-abc"})
	require.NoError(t, err)
	require.Len(t, out.Filas, 1)
	assert.Equal(t, "a", out.Filas[0].ID, "la matrícula es campo de búsqueda libre")
}

func TestMarcarFacturado(t *testing.T) {
	uc, repo := construir()
	repo.items = []*entity.ServicioRealizado{
		{ID: "a", VehiculoID: "v1", ServicioID: "lavado", Fecha: ahora(), Cantidad: 1, PrecioUnitario: dec(10)},
	}

	require.NoError(t, uc.MarcarFacturado("a", true))
	assert.True(t, repo.items[0].Facturado)

	assert.Error(t, uc.MarcarFacturado("nope", true))
}
