package reporte

import "time"

// ParseDesde convierte el parámetro "desde" (YYYY-MM-DD) al instante
// inicial de ese día. Cadenas vacías o mal formadas devuelven nil: el
// filtro queda sin límite inferior en lugar de fallar.
func ParseDesde(s string, loc *time.Location) *time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return nil
	}
	return &t
}

// ParseHasta convierte el parámetro "hasta" (YYYY-MM-DD) al último instante
// de ese día, de forma que el límite superior sea inclusivo para registros
// con hora.
func ParseHasta(s string, loc *time.Location) *time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return nil
	}
	fin := t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return &fin
}
