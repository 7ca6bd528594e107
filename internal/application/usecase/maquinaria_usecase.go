package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/specialwash/gestion-api/internal/application/dto"
	"github.com/specialwash/gestion-api/internal/domain"
	"github.com/specialwash/gestion-api/internal/domain/entity"
	"github.com/specialwash/gestion-api/internal/domain/garantia"
	"github.com/specialwash/gestion-api/internal/domain/repository"
)

// MaquinariaUseCase CRUD de maquinaria. Cada respuesta incluye la
// clasificación de garantía derivada con el reloj inyectado.
type MaquinariaUseCase struct {
	repo  repository.MaquinariaRepository
	ahora func() time.Time
}

// NewMaquinariaUseCase construye el caso de uso; ahora se inyecta para tests.
func NewMaquinariaUseCase(repo repository.MaquinariaRepository, ahora func() time.Time) *MaquinariaUseCase {
	return &MaquinariaUseCase{repo: repo, ahora: ahora}
}

// Create da de alta un activo. Fechas vacías o mal formadas quedan en nil
// (garantía desconocida), nunca en error.
func (uc *MaquinariaUseCase) Create(in dto.CreateMaquinariaRequest) (*dto.MaquinariaResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	m := &entity.Maquinaria{
		ID:               uuid.New().String(),
		Nombre:           in.Nombre,
		Tipo:             in.Tipo,
		Marca:            in.Marca,
		Modelo:           in.Modelo,
		NumeroSerie:      in.NumeroSerie,
		Ubicacion:        in.Ubicacion,
		Estado:           in.Estado,
		FechaCompra:      parseFechaOpcional(in.FechaCompra),
		FechaGarantiaFin: parseFechaOpcional(in.FechaGarantiaFin),
		Notas:            in.Notas,
		CreatedAt:        uc.ahora(),
	}
	if err := uc.repo.Create(m); err != nil {
		return nil, fmt.Errorf("crear maquinaria: %w", err)
	}
	return uc.toResponse(m), nil
}

// GetByID devuelve un activo o nil si no existe.
func (uc *MaquinariaUseCase) GetByID(id string) (*dto.MaquinariaResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil || m == nil {
		return nil, err
	}
	return uc.toResponse(m), nil
}

// List devuelve todos los activos con su garantía clasificada.
func (uc *MaquinariaUseCase) List() ([]dto.MaquinariaResponse, error) {
	maquinas, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("listar maquinaria: %w", err)
	}
	out := make([]dto.MaquinariaResponse, 0, len(maquinas))
	for _, m := range maquinas {
		out = append(out, *uc.toResponse(m))
	}
	return out, nil
}

// Update sobrescribe el activo con los datos de la petición.
func (uc *MaquinariaUseCase) Update(id string, in dto.CreateMaquinariaRequest) (*dto.MaquinariaResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	m.Nombre = in.Nombre
	m.Tipo = in.Tipo
	m.Marca = in.Marca
	m.Modelo = in.Modelo
	m.NumeroSerie = in.NumeroSerie
	m.Ubicacion = in.Ubicacion
	m.Estado = in.Estado
	m.FechaCompra = parseFechaOpcional(in.FechaCompra)
	m.FechaGarantiaFin = parseFechaOpcional(in.FechaGarantiaFin)
	m.Notas = in.Notas
	if err := uc.repo.Update(m); err != nil {
		return nil, fmt.Errorf("actualizar maquinaria: %w", err)
	}
	return uc.toResponse(m), nil
}

// Delete elimina un activo.
func (uc *MaquinariaUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func (uc *MaquinariaUseCase) toResponse(m *entity.Maquinaria) *dto.MaquinariaResponse {
	c := garantia.Clasificar(m.FechaGarantiaFin, uc.ahora())
	out := &dto.MaquinariaResponse{
		ID:               m.ID,
		Nombre:           m.Nombre,
		Tipo:             m.Tipo,
		Marca:            m.Marca,
		Modelo:           m.Modelo,
		NumeroSerie:      m.NumeroSerie,
		Ubicacion:        m.Ubicacion,
		Estado:           m.Estado,
		Garantia:         string(c.Estado),
		GarantiaEtiqueta: c.Etiqueta,
	}
	if m.FechaCompra != nil {
		out.FechaCompra = m.FechaCompra.Format("2006-01-02")
	}
	if m.FechaGarantiaFin != nil {
		out.FechaGarantiaFin = m.FechaGarantiaFin.Format("2006-01-02")
	}
	return out
}

func parseFechaOpcional(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil
	}
	return &t
}
