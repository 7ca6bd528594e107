// Package alertas construye el resumen de garantías de maquinaria que
// encabeza el panel de administración.
package alertas

import (
	"time"

	"github.com/specialwash/gestion-api/internal/domain/entity"
	"github.com/specialwash/gestion-api/internal/domain/garantia"
)

// maxPreview filas que se muestran en el widget antes del "ver todas".
const maxPreview = 5

// Fila activo con garantía vencida o próxima a vencer.
type Fila struct {
	ID               string
	Nombre           string
	Marca            string
	Modelo           string
	Ubicacion        string
	FechaGarantiaFin *time.Time
	Clasificacion    garantia.Clasificacion
}

// Resumen agregado para el widget de alertas.
// Preview conserva el orden de la colección de entrada (estable).
type Resumen struct {
	Total    int
	Vencidas int
	Proximas int
	Preview  []Fila
}

// Construir clasifica cada activo con la fecha de evaluación indicada y
// retiene solo garantías vencidas o próximas. Funciona igual sobre el
// listado completo de maquinaria que sobre el feed de alertas del backend;
// no asume cuál de las dos fuentes recibió.
func Construir(maquinas []*entity.Maquinaria, hoy time.Time) Resumen {
	res := Resumen{Preview: []Fila{}}
	for _, m := range maquinas {
		if m == nil {
			continue
		}
		c := garantia.Clasificar(m.FechaGarantiaFin, hoy)
		switch c.Estado {
		case garantia.EstadoVencida:
			res.Vencidas++
		case garantia.EstadoProxima:
			res.Proximas++
		default:
			continue
		}
		res.Total++
		if len(res.Preview) < maxPreview {
			res.Preview = append(res.Preview, Fila{
				ID:               m.ID,
				Nombre:           m.Nombre,
				Marca:            m.Marca,
				Modelo:           m.Modelo,
				Ubicacion:        m.Ubicacion,
				FechaGarantiaFin: m.FechaGarantiaFin,
				Clasificacion:    c,
			})
		}
	}
	return res
}
