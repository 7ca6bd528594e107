package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/specialwash/gestion-api/internal/domain"
	"github.com/specialwash/gestion-api/internal/domain/entity"
	"github.com/specialwash/gestion-api/internal/domain/repository"
)

var _ repository.ServicioRepository = (*ServicioRepo)(nil)
var _ repository.ServicioRealizadoRepository = (*ServicioRealizadoRepo)(nil)

// ServicioRepo implementación de ServicioRepository (catálogo) sobre PostgreSQL.
type ServicioRepo struct {
	q Querier
}

// NewServicioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServicioRepository(q Querier) *ServicioRepo {
	return &ServicioRepo{q: q}
}

// Create persiste un servicio del catálogo.
func (r *ServicioRepo) Create(s *entity.Servicio) error {
	query := `
		INSERT INTO servicios (id, nombre, descripcion, precio_base, porcentaje_iva, activo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Nombre, s.Descripcion, s.PrecioBase, s.PorcentajeIVA, s.Activo, s.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert servicio: %w", err)
	}
	return nil
}

// GetByID obtiene un servicio del catálogo por ID.
func (r *ServicioRepo) GetByID(id string) (*entity.Servicio, error) {
	query := `
		SELECT id, nombre, descripcion, precio_base, porcentaje_iva, activo, created_at
		FROM servicios WHERE id = $1`
	var s entity.Servicio
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Nombre, &s.Descripcion, &s.PrecioBase, &s.PorcentajeIVA, &s.Activo, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get servicio: %w", err)
	}
	return &s, nil
}

// Update actualiza un servicio del catálogo.
func (r *ServicioRepo) Update(s *entity.Servicio) error {
	query := `
		UPDATE servicios SET nombre = $2, descripcion = $3, precio_base = $4, porcentaje_iva = $5, activo = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Nombre, s.Descripcion, s.PrecioBase, s.PorcentajeIVA, s.Activo,
	)
	if err != nil {
		return fmt.Errorf("update servicio: %w", err)
	}
	return nil
}

// List devuelve el catálogo completo ordenado por nombre.
func (r *ServicioRepo) List() ([]*entity.Servicio, error) {
	query := `
		SELECT id, nombre, descripcion, precio_base, porcentaje_iva, activo, created_at
		FROM servicios ORDER BY nombre ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list servicios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Servicio
	for rows.Next() {
		var s entity.Servicio
		if err := rows.Scan(&s.ID, &s.Nombre, &s.Descripcion, &s.PrecioBase, &s.PorcentajeIVA, &s.Activo, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan servicio: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ServicioRealizadoRepo implementación de ServicioRealizadoRepository sobre PostgreSQL.
// Los totales no se persisten: siempre se derivan en la capa de aplicación.
type ServicioRealizadoRepo struct {
	q Querier
}

// NewServicioRealizadoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServicioRealizadoRepository(q Querier) *ServicioRealizadoRepo {
	return &ServicioRealizadoRepo{q: q}
}

const servicioRealizadoColumns = `id, vehiculo_id, servicio_id, fecha, cantidad, precio_unitario, porcentaje_iva, descuento, facturado, observaciones, created_at`

// Create persiste un servicio realizado.
func (r *ServicioRealizadoRepo) Create(sr *entity.ServicioRealizado) error {
	query := `
		INSERT INTO servicios_realizados (` + servicioRealizadoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		sr.ID, sr.VehiculoID, sr.ServicioID, sr.Fecha, sr.Cantidad,
		sr.PrecioUnitario, sr.PorcentajeIVA, sr.Descuento, sr.Facturado, sr.Observaciones, sr.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert servicio realizado: %w", err)
	}
	return nil
}

// GetByID obtiene un servicio realizado por ID.
func (r *ServicioRealizadoRepo) GetByID(id string) (*entity.ServicioRealizado, error) {
	query := `SELECT ` + servicioRealizadoColumns + ` FROM servicios_realizados WHERE id = $1`
	var sr entity.ServicioRealizado
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&sr.ID, &sr.VehiculoID, &sr.ServicioID, &sr.Fecha, &sr.Cantidad,
		&sr.PrecioUnitario, &sr.PorcentajeIVA, &sr.Descuento, &sr.Facturado, &sr.Observaciones, &sr.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get servicio realizado: %w", err)
	}
	return &sr, nil
}

// MarcarFacturado cambia el flag de facturación de un servicio realizado.
func (r *ServicioRealizadoRepo) MarcarFacturado(id string, facturado bool) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE servicios_realizados SET facturado = $2 WHERE id = $1`,
		id, facturado,
	)
	if err != nil {
		return fmt.Errorf("marcar facturado: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los servicios realizados ordenados por fecha descendente.
func (r *ServicioRealizadoRepo) List() ([]*entity.ServicioRealizado, error) {
	query := `SELECT ` + servicioRealizadoColumns + ` FROM servicios_realizados ORDER BY fecha DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list servicios realizados: %w", err)
	}
	defer rows.Close()
	var list []*entity.ServicioRealizado
	for rows.Next() {
		var sr entity.ServicioRealizado
		if err := rows.Scan(&sr.ID, &sr.VehiculoID, &sr.ServicioID, &sr.Fecha, &sr.Cantidad,
			&sr.PrecioUnitario, &sr.PorcentajeIVA, &sr.Descuento, &sr.Facturado, &sr.Observaciones, &sr.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan servicio realizado: %w", err)
		}
		list = append(list, &sr)
	}
	return list, rows.Err()
}
