package garantia_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/specialwash/gestion-api/internal/domain/garantia"
)

// hoy fija la fecha de evaluación de todos los tests: 15 de junio de 2025,
// mediodía, hora de Madrid. La hora no debe influir (se trunca a medianoche).
func hoy(t *testing.T) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		loc = time.UTC
	}
	return time.Date(2025, 6, 15, 12, 30, 0, 0, loc)
}

func fecha(t *testing.T, dias int) *time.Time {
	t.Helper()
	f := hoy(t).AddDate(0, 0, dias)
	return &f
}

func TestClasificar_NilEsDesconocida(t *testing.T) {
	c := garantia.Clasificar(nil, hoy(t))
	assert.Equal(t, garantia.EstadoDesconocido, c.Estado)
	assert.Equal(t, "—", c.Etiqueta)
}

func TestClasificar_VencidaAyer(t *testing.T) {
	c := garantia.Clasificar(fecha(t, -1), hoy(t))
	assert.Equal(t, garantia.EstadoVencida, c.Estado)
	assert.Equal(t, -1, c.DiasRestantes)
	assert.Equal(t, "Vencida", c.Etiqueta)
}

func TestClasificar_HoyEsProxima(t *testing.T) {
	// Exactamente 0 días restantes: próxima, no vencida.
	c := garantia.Clasificar(fecha(t, 0), hoy(t))
	assert.Equal(t, garantia.EstadoProxima, c.Estado)
	assert.Equal(t, 0, c.DiasRestantes)
}

func TestClasificar_LimiteDe30DiasInclusivo(t *testing.T) {
	c30 := garantia.Clasificar(fecha(t, 30), hoy(t))
	assert.Equal(t, garantia.EstadoProxima, c30.Estado, "30 días exactos deben contar como próxima")
	assert.Equal(t, "Vence en 30 días", c30.Etiqueta)

	c31 := garantia.Clasificar(fecha(t, 31), hoy(t))
	assert.Equal(t, garantia.EstadoVigente, c31.Estado, "31 días ya es vigente")
}

func TestClasificar_LaHoraDelDiaNoImporta(t *testing.T) {
	// Fin a las 23:59 del mismo día: sigue siendo 0 días, no -1 ni 1.
	base := hoy(t)
	fin := time.Date(base.Year(), base.Month(), base.Day(), 23, 59, 0, 0, base.Location())
	c := garantia.Clasificar(&fin, base)
	assert.Equal(t, 0, c.DiasRestantes)
	assert.Equal(t, garantia.EstadoProxima, c.Estado)
}

func TestClasificar_CambioHorarioNoProvocaOffByOne(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		t.Skip("zona Europe/Madrid no disponible")
	}
	// El 30 de marzo de 2025 España adelanta el reloj: la semana del 25/03 al
	// 01/04 dura 7 días de calendario pero 167 horas.
	h := time.Date(2025, 3, 25, 10, 0, 0, 0, loc)
	fin := time.Date(2025, 4, 1, 0, 0, 0, 0, loc)
	assert.Equal(t, 7, garantia.DiasHasta(fin, h))
}

func TestClasificarTexto_FormatosYBasura(t *testing.T) {
	h := hoy(t)

	c := garantia.ClasificarTexto("2099-01-01", h)
	assert.Equal(t, garantia.EstadoVigente, c.Estado, "cualquier hoy anterior a 2098-12-02 debe dar vigente")

	assert.Equal(t, garantia.EstadoDesconocido, garantia.ClasificarTexto("", h).Estado)
	assert.Equal(t, garantia.EstadoDesconocido, garantia.ClasificarTexto("no-es-fecha", h).Estado)
	assert.Equal(t, garantia.EstadoDesconocido, garantia.ClasificarTexto("31/12/2025", h).Estado)
}

func TestClasificarTexto_ISOConHora(t *testing.T) {
	h := hoy(t)
	f := h.AddDate(0, 0, 10).Format("2006-01-02") + "T08:00:00"
	c := garantia.ClasificarTexto(f, h)
	assert.Equal(t, garantia.EstadoProxima, c.Estado)
	assert.Equal(t, 10, c.DiasRestantes)
}
