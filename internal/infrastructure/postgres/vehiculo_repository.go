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

var _ repository.VehiculoRepository = (*VehiculoRepo)(nil)
var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// VehiculoRepo implementación de VehiculoRepository sobre PostgreSQL.
type VehiculoRepo struct {
	q Querier
}

// NewVehiculoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVehiculoRepository(q Querier) *VehiculoRepo {
	return &VehiculoRepo{q: q}
}

// Create persiste un vehículo. La matrícula es única.
func (r *VehiculoRepo) Create(v *entity.Vehiculo) error {
	query := `
		INSERT INTO vehiculos (id, matricula, marca, modelo, cliente_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.Matricula, v.Marca, v.Modelo, v.ClienteID, v.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vehiculo: %w", err)
	}
	return nil
}

// GetByID obtiene un vehículo por ID.
func (r *VehiculoRepo) GetByID(id string) (*entity.Vehiculo, error) {
	query := `
		SELECT id, matricula, marca, modelo, cliente_id, created_at
		FROM vehiculos WHERE id = $1`
	var v entity.Vehiculo
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.Matricula, &v.Marca, &v.Modelo, &v.ClienteID, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehiculo: %w", err)
	}
	return &v, nil
}

// Update actualiza un vehículo.
func (r *VehiculoRepo) Update(v *entity.Vehiculo) error {
	query := `
		UPDATE vehiculos SET matricula = $2, marca = $3, modelo = $4, cliente_id = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.Matricula, v.Marca, v.Modelo, v.ClienteID,
	)
	if err != nil {
		return fmt.Errorf("update vehiculo: %w", err)
	}
	return nil
}

// List devuelve todos los vehículos ordenados por matrícula.
func (r *VehiculoRepo) List() ([]*entity.Vehiculo, error) {
	query := `
		SELECT id, matricula, marca, modelo, cliente_id, created_at
		FROM vehiculos ORDER BY matricula ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list vehiculos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vehiculo
	for rows.Next() {
		var v entity.Vehiculo
		if err := rows.Scan(&v.ID, &v.Matricula, &v.Marca, &v.Modelo, &v.ClienteID, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vehiculo: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Delete elimina un vehículo por ID.
func (r *VehiculoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM vehiculos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vehiculo: %w", err)
	}
	return nil
}

// ClienteRepo implementación de ClienteRepository sobre PostgreSQL.
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste un cliente.
func (r *ClienteRepo) Create(c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (id, nombre, telefono, email, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nombre, c.Telefono, c.Email, c.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	query := `
		SELECT id, nombre, telefono, email, created_at
		FROM clientes WHERE id = $1`
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Nombre, &c.Telefono, &c.Email, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// List devuelve todos los clientes ordenados por nombre.
func (r *ClienteRepo) List() ([]*entity.Cliente, error) {
	query := `
		SELECT id, nombre, telefono, email, created_at
		FROM clientes ORDER BY nombre ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Telefono, &c.Email, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
