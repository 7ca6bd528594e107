package inventario_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/specialwash/gestion-api/internal/application/inventario"
	"github.com/specialwash/gestion-api/internal/domain/entity"
)

type productoRepoFake struct{ productos []*entity.Producto }

func (f *productoRepoFake) Create(p *entity.Producto) error             { return nil }
func (f *productoRepoFake) GetByID(id string) (*entity.Producto, error) { return nil, nil }
func (f *productoRepoFake) Update(*entity.Producto) error               { return nil }
func (f *productoRepoFake) AjustarStock(string, int) error              { return nil }
func (f *productoRepoFake) List() ([]*entity.Producto, error)           { return f.productos, nil }
func (f *productoRepoFake) Delete(string) error                         { return nil }

func ptr(n int) *int { return &n }

func TestGenerar_SoloProductosBajoMinimo(t *testing.T) {
	repo := &productoRepoFake{productos: []*entity.Producto{
		{ID: "a", Nombre: "Cera", StockActual: 5, StockMinimo: ptr(10)},
		{ID: "b", Nombre: "Bayetas", StockActual: 10, StockMinimo: ptr(10)},
		{ID: "c", Nombre: "Champú", StockActual: 50, StockMinimo: ptr(10)},
		{ID: "d", Nombre: "Ambientador", StockActual: 0, StockMinimo: nil},
	}}
	uc := inventario.NewPedidoUseCase(repo)

	out, err := uc.Generar()
	require.NoError(t, err)

	require.Len(t, out.Filas, 2)
	assert.Equal(t, "Bayetas", out.Filas[0].Nombre, "ordenado por nombre")
	assert.Equal(t, 10, out.Filas[0].CantidadSugerida, "reponer al doble del mínimo")
	assert.Equal(t, "Cera", out.Filas[1].Nombre)
	assert.Equal(t, 15, out.Filas[1].CantidadSugerida)

	assert.Equal(t, 2, out.TotalProductos)
	assert.Equal(t, 25, out.TotalUnidades)
}

func TestGenerar_SinProductosBajos(t *testing.T) {
	uc := inventario.NewPedidoUseCase(&productoRepoFake{})
	out, err := uc.Generar()
	require.NoError(t, err)
	assert.Empty(t, out.Filas)
	assert.Equal(t, 0, out.TotalUnidades)
}
