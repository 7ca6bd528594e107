package repository

import "github.com/specialwash/gestion-api/internal/domain/entity"

// MovimientoRepository puerto de persistencia para entradas y salidas.
// Los listados devuelven la foto completa ordenada por fecha; los filtros de
// los informes (rango de fechas, producto, texto libre) se aplican en la
// capa de aplicación.
type MovimientoRepository interface {
	CreateEntrada(e *entity.Entrada) error
	CreateSalida(s *entity.Salida) error
	ListEntradas() ([]*entity.Entrada, error)
	ListSalidas() ([]*entity.Salida, error)
}
