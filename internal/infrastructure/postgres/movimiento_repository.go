package postgres

import (
	"context"
	"fmt"

	"github.com/specialwash/gestion-api/internal/domain/entity"
	"github.com/specialwash/gestion-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación de MovimientoRepository sobre PostgreSQL.
// Entradas y salidas viven en tablas separadas; los importes NUMERIC escanean
// a decimal.Decimal gracias al codec registrado en el pool.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// CreateEntrada persiste una entrada de mercancía.
func (r *MovimientoRepo) CreateEntrada(e *entity.Entrada) error {
	query := `
		INSERT INTO entradas (id, fecha, producto_id, proveedor_id, cantidad, numero_albaran,
			precio_sin_iva, porcentaje_iva, valor_iva, precio_con_iva, observaciones, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Fecha, e.ProductoID, e.ProveedorID, e.Cantidad, e.NumeroAlbaran,
		e.PrecioSinIVA, e.PorcentajeIVA, e.ValorIVA, e.PrecioConIVA, e.Observaciones, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert entrada: %w", err)
	}
	return nil
}

// CreateSalida persiste una salida de producto.
func (r *MovimientoRepo) CreateSalida(s *entity.Salida) error {
	query := `
		INSERT INTO salidas (id, fecha, producto_id, usuario_id, cantidad, observaciones, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Fecha, s.ProductoID, s.UsuarioID, s.Cantidad, s.Observaciones, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert salida: %w", err)
	}
	return nil
}

// ListEntradas devuelve todas las entradas ordenadas por fecha descendente.
// Los filtros de los informes se aplican en la capa de aplicación.
func (r *MovimientoRepo) ListEntradas() ([]*entity.Entrada, error) {
	query := `
		SELECT id, fecha, producto_id, proveedor_id, cantidad, numero_albaran,
			precio_sin_iva, porcentaje_iva, valor_iva, precio_con_iva, observaciones, created_at
		FROM entradas ORDER BY fecha DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list entradas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Entrada
	for rows.Next() {
		var e entity.Entrada
		if err := rows.Scan(&e.ID, &e.Fecha, &e.ProductoID, &e.ProveedorID, &e.Cantidad, &e.NumeroAlbaran,
			&e.PrecioSinIVA, &e.PorcentajeIVA, &e.ValorIVA, &e.PrecioConIVA, &e.Observaciones, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan entrada: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// ListSalidas devuelve todas las salidas ordenadas por fecha descendente.
func (r *MovimientoRepo) ListSalidas() ([]*entity.Salida, error) {
	query := `
		SELECT id, fecha, producto_id, usuario_id, cantidad, observaciones, created_at
		FROM salidas ORDER BY fecha DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list salidas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Salida
	for rows.Next() {
		var s entity.Salida
		if err := rows.Scan(&s.ID, &s.Fecha, &s.ProductoID, &s.UsuarioID, &s.Cantidad, &s.Observaciones, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan salida: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
