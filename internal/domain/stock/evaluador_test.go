package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/specialwash/gestion-api/internal/domain/stock"
)

func ptr(n int) *int { return &n }

func TestEsBajoStock(t *testing.T) {
	tests := []struct {
		nombre string
		actual int
		minimo *int
		quiere bool
	}{
		{"por debajo del mínimo", 5, ptr(10), true},
		{"exactamente en el mínimo", 10, ptr(10), true},
		{"por encima del mínimo", 11, ptr(10), false},
		{"sin mínimo configurado", 0, nil, false},
		{"mínimo cero y stock cero", 0, ptr(0), true},
		{"actual negativo se corrige a cero", -3, ptr(1), true},
	}
	for _, tc := range tests {
		t.Run(tc.nombre, func(t *testing.T) {
			assert.Equal(t, tc.quiere, stock.EsBajoStock(tc.actual, tc.minimo))
		})
	}
}

func TestCantidadSugerida(t *testing.T) {
	tests := []struct {
		nombre string
		actual int
		minimo *int
		quiere int
	}{
		{"reponer al doble del mínimo", 5, ptr(10), 15},
		{"stock sobrado no sugiere nada", 25, ptr(10), 0},
		{"justo en el doble", 20, ptr(10), 0},
		{"sin mínimo no hay sugerencia", 2, nil, 0},
		{"mínimo negativo se trata como cero", 0, ptr(-5), 0},
	}
	for _, tc := range tests {
		t.Run(tc.nombre, func(t *testing.T) {
			got := stock.CantidadSugerida(tc.actual, tc.minimo)
			assert.Equal(t, tc.quiere, got)
			assert.GreaterOrEqual(t, got, 0, "la sugerencia nunca es negativa")
		})
	}
}
