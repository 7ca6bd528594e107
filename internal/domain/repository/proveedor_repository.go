package repository

import "github.com/specialwash/gestion-api/internal/domain/entity"

// ProveedorRepository puerto de persistencia para Proveedor.
type ProveedorRepository interface {
	Create(p *entity.Proveedor) error
	GetByID(id string) (*entity.Proveedor, error)
	Update(p *entity.Proveedor) error
	List() ([]*entity.Proveedor, error)
	Delete(id string) error
}
