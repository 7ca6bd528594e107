// Package reporte filtra, ordena y totaliza colecciones de registros
// fechados para los informes del panel. Todas las operaciones son puras:
// reciben una foto de los datos y devuelven colecciones nuevas sin tocar
// la entrada.
package reporte

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Registro vista mínima que el agregador necesita de cualquier fila de
// informe (entrada, salida, servicio realizado). Los campos monetarios en
// cero cuentan como 0 en los totales; Textos son los campos visibles sobre
// los que busca el filtro de texto libre.
type Registro struct {
	ID       string
	Fecha    time.Time
	ClaveFK  string
	Textos   []string
	Cantidad int
	Neto     decimal.Decimal
	IVA      decimal.Decimal
	Bruto    decimal.Decimal
}

// Filtro criterios opcionales de un informe. Un campo en su valor cero
// deja ese criterio sin aplicar.
type Filtro struct {
	Desde *time.Time // inclusivo
	Hasta *time.Time // inclusivo
	FK    string     // igualdad exacta contra Registro.ClaveFK
	Texto string     // subcadena sin distinguir mayúsculas ni acentos
}

// Filtrar aplica los criterios y devuelve una colección nueva ordenada por
// fecha descendente. Registros sin fecha (zero time) quedan al final, como
// los más antiguos.
func Filtrar(registros []Registro, f Filtro) []Registro {
	out := make([]Registro, 0, len(registros))
	texto := NormalizarTexto(f.Texto)
	for _, r := range registros {
		if f.Desde != nil && r.Fecha.Before(*f.Desde) {
			continue
		}
		if f.Hasta != nil && r.Fecha.After(*f.Hasta) {
			continue
		}
		if f.FK != "" && r.ClaveFK != f.FK {
			continue
		}
		if texto != "" && !coincideTexto(texto, r.Textos) {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Fecha.After(out[j].Fecha)
	})
	return out
}

// Totales agregados de un conjunto de registros ya filtrado.
// Los importes conservan la precisión completa de la acumulación; el
// redondeo a 2 decimales se hace solo al formatear para la respuesta.
type Totales struct {
	Registros int
	Cantidad  int
	Neto      decimal.Decimal
	IVA       decimal.Decimal
	Bruto     decimal.Decimal
}

// Totalizar reduce la colección a sus totales.
func Totalizar(registros []Registro) Totales {
	t := Totales{}
	for _, r := range registros {
		t.Registros++
		t.Cantidad += r.Cantidad
		t.Neto = t.Neto.Add(r.Neto)
		t.IVA = t.IVA.Add(r.IVA)
		t.Bruto = t.Bruto.Add(r.Bruto)
	}
	return t
}

// NetoRedondeado, IVARedondeado y BrutoRedondeado importes a 2 decimales
// para la frontera de presentación.
func (t Totales) NetoRedondeado() decimal.Decimal  { return t.Neto.Round(2) }
func (t Totales) IVARedondeado() decimal.Decimal   { return t.IVA.Round(2) }
func (t Totales) BrutoRedondeado() decimal.Decimal { return t.Bruto.Round(2) }
