// Package precio calcula importes de servicios con descuento e IVA
// (servicio de dominio, funciones puras sobre decimal).
package precio

import (
	"math"

	"github.com/shopspring/decimal"
)

var cien = decimal.NewFromInt(100)

// Desglose resultado completo del cálculo de un importe.
// Los valores se acumulan con precisión completa; el redondeo a 2 decimales
// ocurre solo en los helpers de formato, nunca aquí.
type Desglose struct {
	Base         decimal.Decimal // precio unitario * cantidad
	ConDescuento decimal.Decimal // base tras aplicar el descuento
	ImporteIVA   decimal.Decimal // IVA sobre la base con descuento
	Total        decimal.Decimal // con descuento + IVA
}

// Calcular aplica el orden canónico de operaciones:
//
//  1. base = precioUnitario * cantidad
//  2. conDescuento = base * (1 - descuento/100)
//  3. total = conDescuento * (1 + iva/100)
//
// El descuento se aplica antes que el IVA; reordenar cambia el importe del
// IVA declarado aunque el total coincida. iva y descuento se recortan a
// [0,100], cantidad se eleva a mínimo 1, precioUnitario negativo se trata
// como 0.
func Calcular(precioUnitario decimal.Decimal, iva, descuento decimal.Decimal, cantidad int) Desglose {
	if precioUnitario.IsNegative() {
		precioUnitario = decimal.Zero
	}
	iva = clampPorcentaje(iva)
	descuento = clampPorcentaje(descuento)
	if cantidad < 1 {
		cantidad = 1
	}

	base := precioUnitario.Mul(decimal.NewFromInt(int64(cantidad)))
	conDescuento := base.Mul(decimal.NewFromInt(1).Sub(descuento.Div(cien)))
	importeIVA := conDescuento.Mul(iva.Div(cien))

	return Desglose{
		Base:         base,
		ConDescuento: conDescuento,
		ImporteIVA:   importeIVA,
		Total:        conDescuento.Add(importeIVA),
	}
}

// CalcularDesdeFloat acepta entradas float64 tal como llegan del backend.
// NaN y ±Inf degradan a 0 antes de convertir (decimal.NewFromFloat entra en
// pánico con valores no finitos, y un NaN nunca debe llegar a pantalla).
func CalcularDesdeFloat(precioUnitario, iva, descuento float64, cantidad int) Desglose {
	return Calcular(
		decimalSeguro(precioUnitario),
		decimalSeguro(iva),
		decimalSeguro(descuento),
		cantidad,
	)
}

// TotalSinIVA y TotalConIVA redondeados a 2 decimales para presentación.
func (d Desglose) TotalSinIVA() decimal.Decimal { return d.ConDescuento.Round(2) }
func (d Desglose) TotalConIVA() decimal.Decimal { return d.Total.Round(2) }

func clampPorcentaje(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}
	if p.GreaterThan(cien) {
		return cien
	}
	return p
}

func decimalSeguro(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}
