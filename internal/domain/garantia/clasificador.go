// Package garantia clasifica fechas de fin de garantía de maquinaria en
// estados mostrables (servicio de dominio, funciones puras).
package garantia

import (
	"fmt"
	"time"
)

// Estado de la garantía de un activo en la fecha de evaluación.
type Estado string

const (
	EstadoDesconocido Estado = "unknown"
	EstadoVencida     Estado = "expired"
	EstadoProxima     Estado = "soon"
	EstadoVigente     Estado = "ok"
)

// UmbralProximaDias días restantes a partir de los cuales una garantía
// deja de considerarse "próxima a vencer" (límite inclusivo).
const UmbralProximaDias = 30

// Clasificacion resultado de evaluar una fecha de fin de garantía.
// DiasRestantes solo tiene sentido cuando Estado != EstadoDesconocido.
type Clasificacion struct {
	Estado        Estado
	Etiqueta      string
	DiasRestantes int
}

// DiasHasta devuelve los días de calendario entre hoy y fin, ambos truncados
// a medianoche local. Se trunca por componentes de fecha (no dividiendo
// epochs) para que un cambio de horario de verano no produzca un día de más
// o de menos.
func DiasHasta(fin, hoy time.Time) int {
	f := time.Date(fin.Year(), fin.Month(), fin.Day(), 0, 0, 0, 0, fin.Location())
	h := time.Date(hoy.Year(), hoy.Month(), hoy.Day(), 0, 0, 0, 0, hoy.Location())
	return int(f.Sub(h).Round(24*time.Hour) / (24 * time.Hour))
}

// Clasificar evalúa una fecha de fin de garantía contra "hoy".
// fin en nil produce EstadoDesconocido. Límites: exactamente 0 días y
// exactamente UmbralProximaDias días cuentan como EstadoProxima.
// hoy se inyecta siempre desde fuera; este paquete nunca llama time.Now.
func Clasificar(fin *time.Time, hoy time.Time) Clasificacion {
	if fin == nil {
		return Clasificacion{Estado: EstadoDesconocido, Etiqueta: "—"}
	}
	dias := DiasHasta(*fin, hoy)
	switch {
	case dias < 0:
		return Clasificacion{Estado: EstadoVencida, Etiqueta: "Vencida", DiasRestantes: dias}
	case dias <= UmbralProximaDias:
		return Clasificacion{Estado: EstadoProxima, Etiqueta: fmt.Sprintf("Vence en %d días", dias), DiasRestantes: dias}
	default:
		return Clasificacion{Estado: EstadoVigente, Etiqueta: fmt.Sprintf("Quedan %d días", dias), DiasRestantes: dias}
	}
}

// ClasificarTexto parsea una fecha "YYYY-MM-DD" (o ISO con hora) y la
// clasifica. Cadenas vacías o no parseables degradan a EstadoDesconocido,
// nunca a error: el dato viene de un backend externo y la UI necesita
// siempre un valor mostrable.
func ClasificarTexto(fin string, hoy time.Time) Clasificacion {
	if fin == "" {
		return Clasificacion{Estado: EstadoDesconocido, Etiqueta: "—"}
	}
	for _, layout := range []string{"2006-01-02", "2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.ParseInLocation(layout, fin, hoy.Location()); err == nil {
			return Clasificar(&t, hoy)
		}
	}
	return Clasificacion{Estado: EstadoDesconocido, Etiqueta: "—"}
}
