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

var _ repository.MaquinariaRepository = (*MaquinariaRepo)(nil)

// MaquinariaRepo implementación de MaquinariaRepository sobre PostgreSQL.
type MaquinariaRepo struct {
	q Querier
}

// NewMaquinariaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMaquinariaRepository(q Querier) *MaquinariaRepo {
	return &MaquinariaRepo{q: q}
}

const maquinariaColumns = `id, nombre, tipo, marca, modelo, numero_serie, ubicacion, estado, fecha_compra, fecha_garantia_fin, notas, created_at`

// Create persiste una nueva máquina.
func (r *MaquinariaRepo) Create(m *entity.Maquinaria) error {
	query := `
		INSERT INTO maquinaria (` + maquinariaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Nombre, m.Tipo, m.Marca, m.Modelo, m.NumeroSerie,
		m.Ubicacion, m.Estado, m.FechaCompra, m.FechaGarantiaFin, m.Notas, m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert maquinaria: %w", err)
	}
	return nil
}

// GetByID obtiene una máquina por ID.
func (r *MaquinariaRepo) GetByID(id string) (*entity.Maquinaria, error) {
	query := `SELECT ` + maquinariaColumns + ` FROM maquinaria WHERE id = $1`
	var m entity.Maquinaria
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Nombre, &m.Tipo, &m.Marca, &m.Modelo, &m.NumeroSerie,
		&m.Ubicacion, &m.Estado, &m.FechaCompra, &m.FechaGarantiaFin, &m.Notas, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get maquinaria: %w", err)
	}
	return &m, nil
}

// Update actualiza una máquina.
func (r *MaquinariaRepo) Update(m *entity.Maquinaria) error {
	query := `
		UPDATE maquinaria
		SET nombre = $2, tipo = $3, marca = $4, modelo = $5, numero_serie = $6,
		    ubicacion = $7, estado = $8, fecha_compra = $9, fecha_garantia_fin = $10, notas = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Nombre, m.Tipo, m.Marca, m.Modelo, m.NumeroSerie,
		m.Ubicacion, m.Estado, m.FechaCompra, m.FechaGarantiaFin, m.Notas,
	)
	if err != nil {
		return fmt.Errorf("update maquinaria: %w", err)
	}
	return nil
}

// List devuelve todas las máquinas ordenadas por nombre.
func (r *MaquinariaRepo) List() ([]*entity.Maquinaria, error) {
	query := `SELECT ` + maquinariaColumns + ` FROM maquinaria ORDER BY nombre ASC`
	return r.list(query)
}

// ListConGarantia devuelve solo las máquinas con fecha de fin de garantía
// registrada: es el feed del resumen de alertas.
func (r *MaquinariaRepo) ListConGarantia() ([]*entity.Maquinaria, error) {
	query := `
		SELECT ` + maquinariaColumns + `
		FROM maquinaria
		WHERE fecha_garantia_fin IS NOT NULL
		ORDER BY fecha_garantia_fin ASC`
	return r.list(query)
}

func (r *MaquinariaRepo) list(query string) ([]*entity.Maquinaria, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list maquinaria: %w", err)
	}
	defer rows.Close()
	var list []*entity.Maquinaria
	for rows.Next() {
		var m entity.Maquinaria
		if err := rows.Scan(&m.ID, &m.Nombre, &m.Tipo, &m.Marca, &m.Modelo, &m.NumeroSerie,
			&m.Ubicacion, &m.Estado, &m.FechaCompra, &m.FechaGarantiaFin, &m.Notas, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan maquinaria: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete elimina una máquina por ID.
func (r *MaquinariaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM maquinaria WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete maquinaria: %w", err)
	}
	return nil
}
