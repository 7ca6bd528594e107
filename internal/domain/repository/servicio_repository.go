package repository

import "github.com/specialwash/gestion-api/internal/domain/entity"

// ServicioRepository puerto de persistencia para el catálogo de servicios.
type ServicioRepository interface {
	Create(s *entity.Servicio) error
	GetByID(id string) (*entity.Servicio, error)
	Update(s *entity.Servicio) error
	List() ([]*entity.Servicio, error)
}

// ServicioRealizadoRepository puerto de persistencia para servicios prestados.
type ServicioRealizadoRepository interface {
	Create(sr *entity.ServicioRealizado) error
	GetByID(id string) (*entity.ServicioRealizado, error)
	MarcarFacturado(id string, facturado bool) error
	List() ([]*entity.ServicioRealizado, error)
}
