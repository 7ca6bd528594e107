package alertas_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/specialwash/gestion-api/internal/application/alertas"
	"github.com/specialwash/gestion-api/internal/domain/entity"
	"github.com/specialwash/gestion-api/internal/domain/garantia"
)

var hoy = time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

func maquina(id string, diasRestantes *int) *entity.Maquinaria {
	m := &entity.Maquinaria{ID: id, Nombre: "Máquina " + id}
	if diasRestantes != nil {
		f := hoy.AddDate(0, 0, *diasRestantes)
		m.FechaGarantiaFin = &f
	}
	return m
}

func dias(n int) *int { return &n }

func TestConstruir_CuentaVencidasYProximas(t *testing.T) {
	// 2 vencidas, 1 próxima, 3 vigentes: total 3, preview 3.
	lista := []*entity.Maquinaria{
		maquina("a", dias(-10)),
		maquina("b", dias(-1)),
		maquina("c", dias(15)),
		maquina("d", dias(45)),
		maquina("e", dias(90)),
		maquina("f", dias(400)),
	}
	r := alertas.Construir(lista, hoy)

	assert.Equal(t, 3, r.Total)
	assert.Equal(t, 2, r.Vencidas)
	assert.Equal(t, 1, r.Proximas)
	assert.Len(t, r.Preview, 3)
}

func TestConstruir_PreviewMaximoCincoEnOrdenDeEntrada(t *testing.T) {
	var lista []*entity.Maquinaria
	for i := 0; i < 8; i++ {
		lista = append(lista, maquina(fmt.Sprintf("m%d", i), dias(-i-1)))
	}
	r := alertas.Construir(lista, hoy)

	assert.Equal(t, 8, r.Total)
	require.Len(t, r.Preview, 5)
	for i, f := range r.Preview {
		assert.Equal(t, fmt.Sprintf("m%d", i), f.ID, "la preview respeta el orden de entrada")
	}
}

func TestConstruir_IgnoraDesconocidasYVigentes(t *testing.T) {
	lista := []*entity.Maquinaria{
		maquina("sin-fecha", nil),
		maquina("vigente", dias(200)),
		nil,
	}
	r := alertas.Construir(lista, hoy)
	assert.Equal(t, 0, r.Total)
	assert.Empty(t, r.Preview)
}

func TestConstruir_ClasificacionEnLaFila(t *testing.T) {
	r := alertas.Construir([]*entity.Maquinaria{maquina("x", dias(0))}, hoy)
	require.Len(t, r.Preview, 1)
	assert.Equal(t, garantia.EstadoProxima, r.Preview[0].Clasificacion.Estado)
	assert.Equal(t, "Vence en 0 días", r.Preview[0].Clasificacion.Etiqueta)
}
