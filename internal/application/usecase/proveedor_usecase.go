package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/specialwash/gestion-api/internal/application/dto"
	"github.com/specialwash/gestion-api/internal/domain"
	"github.com/specialwash/gestion-api/internal/domain/entity"
	"github.com/specialwash/gestion-api/internal/domain/repository"
)

// ProveedorUseCase CRUD de proveedores.
type ProveedorUseCase struct {
	repo repository.ProveedorRepository
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(repo repository.ProveedorRepository) *ProveedorUseCase {
	return &ProveedorUseCase{repo: repo}
}

// Create da de alta un proveedor.
func (uc *ProveedorUseCase) Create(in dto.CreateProveedorRequest) (*dto.ProveedorResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	p := &entity.Proveedor{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Telefono:  in.Telefono,
		Email:     in.Email,
		Direccion: in.Direccion,
		Contacto:  in.Contacto,
		Notas:     in.Notas,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, fmt.Errorf("crear proveedor: %w", err)
	}
	return toProveedorResponse(p), nil
}

// List devuelve todos los proveedores.
func (uc *ProveedorUseCase) List() ([]dto.ProveedorResponse, error) {
	proveedores, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("listar proveedores: %w", err)
	}
	out := make([]dto.ProveedorResponse, 0, len(proveedores))
	for _, p := range proveedores {
		out = append(out, *toProveedorResponse(p))
	}
	return out, nil
}

// Delete elimina un proveedor.
func (uc *ProveedorUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProveedorResponse(p *entity.Proveedor) *dto.ProveedorResponse {
	return &dto.ProveedorResponse{
		ID:        p.ID,
		Nombre:    p.Nombre,
		Telefono:  p.Telefono,
		Email:     p.Email,
		Direccion: p.Direccion,
		Contacto:  p.Contacto,
		Notas:     p.Notas,
	}
}
