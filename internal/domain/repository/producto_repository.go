package repository

import "github.com/specialwash/gestion-api/internal/domain/entity"

// ProductoRepository puerto de persistencia para Producto (DIP).
// List devuelve la foto completa del almacén: el filtrado y las alertas se
// calculan en la capa de aplicación con los servicios de dominio.
type ProductoRepository interface {
	Create(p *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	Update(p *entity.Producto) error
	AjustarStock(productoID string, delta int) error
	List() ([]*entity.Producto, error)
	Delete(id string) error
}
