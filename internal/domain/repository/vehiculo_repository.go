package repository

import "github.com/specialwash/gestion-api/internal/domain/entity"

// VehiculoRepository puerto de persistencia para Vehiculo.
type VehiculoRepository interface {
	Create(v *entity.Vehiculo) error
	GetByID(id string) (*entity.Vehiculo, error)
	Update(v *entity.Vehiculo) error
	List() ([]*entity.Vehiculo, error)
	Delete(id string) error
}

// ClienteRepository puerto de persistencia para Cliente.
type ClienteRepository interface {
	Create(c *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	List() ([]*entity.Cliente, error)
}
