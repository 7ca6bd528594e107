package repository

import "github.com/specialwash/gestion-api/internal/domain/entity"

// UsuarioRepository puerto de persistencia para Usuario.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	FindByEmail(email string) (*entity.Usuario, error)
	List() ([]*entity.Usuario, error)
}
