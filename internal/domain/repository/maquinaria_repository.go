package repository

import "github.com/specialwash/gestion-api/internal/domain/entity"

// MaquinariaRepository puerto de persistencia para Maquinaria.
// ListConGarantia es el "feed de alertas": solo activos con fecha de fin de
// garantía registrada. El constructor de resúmenes acepta cualquiera de las
// dos fuentes y aplica las mismas reglas.
type MaquinariaRepository interface {
	Create(m *entity.Maquinaria) error
	GetByID(id string) (*entity.Maquinaria, error)
	Update(m *entity.Maquinaria) error
	List() ([]*entity.Maquinaria, error)
	ListConGarantia() ([]*entity.Maquinaria, error)
	Delete(id string) error
}
