package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/specialwash/gestion-api/internal/application/dto"
	"github.com/specialwash/gestion-api/internal/application/reporte"
	"github.com/specialwash/gestion-api/internal/domain"
	"github.com/specialwash/gestion-api/internal/domain/entity"
	"github.com/specialwash/gestion-api/internal/domain/repository"
)

// VehiculoUseCase CRUD de vehículos con el nombre de cliente resuelto.
type VehiculoUseCase struct {
	vehiculoRepo repository.VehiculoRepository
	clienteRepo  repository.ClienteRepository
}

// NewVehiculoUseCase construye el caso de uso.
func NewVehiculoUseCase(vehiculoRepo repository.VehiculoRepository, clienteRepo repository.ClienteRepository) *VehiculoUseCase {
	return &VehiculoUseCase{vehiculoRepo: vehiculoRepo, clienteRepo: clienteRepo}
}

// Create da de alta un vehículo.
func (uc *VehiculoUseCase) Create(in dto.CreateVehiculoRequest) (*dto.VehiculoResponse, error) {
	if in.Matricula == "" {
		return nil, domain.ErrInvalidInput
	}
	var clienteID *string
	if in.ClienteID != "" {
		clienteID = &in.ClienteID
	}
	v := &entity.Vehiculo{
		ID:        uuid.New().String(),
		Matricula: in.Matricula,
		Marca:     in.Marca,
		Modelo:    in.Modelo,
		ClienteID: clienteID,
		CreatedAt: time.Now(),
	}
	if err := uc.vehiculoRepo.Create(v); err != nil {
		return nil, fmt.Errorf("crear vehículo: %w", err)
	}
	return uc.toResponse(v, nil), nil
}

// List devuelve los vehículos, opcionalmente filtrados por texto libre
// sobre matrícula, marca, modelo y nombre del cliente.
func (uc *VehiculoUseCase) List(filtro string) ([]dto.VehiculoResponse, error) {
	vehiculos, err := uc.vehiculoRepo.List()
	if err != nil {
		return nil, fmt.Errorf("listar vehículos: %w", err)
	}
	clientes, err := uc.clienteRepo.List()
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	nombres := make(map[string]string, len(clientes))
	for _, c := range clientes {
		nombres[c.ID] = c.Nombre
	}

	consulta := reporte.NormalizarTexto(filtro)
	out := make([]dto.VehiculoResponse, 0, len(vehiculos))
	for _, v := range vehiculos {
		cliente := ""
		if v.ClienteID != nil {
			cliente = nombres[*v.ClienteID]
		}
		if consulta != "" && !coincide(consulta, v.Matricula, v.Marca, v.Modelo, cliente) {
			continue
		}
		out = append(out, *uc.toResponse(v, nombres))
	}
	return out, nil
}

// Delete elimina un vehículo.
func (uc *VehiculoUseCase) Delete(id string) error {
	return uc.vehiculoRepo.Delete(id)
}

func (uc *VehiculoUseCase) toResponse(v *entity.Vehiculo, nombres map[string]string) *dto.VehiculoResponse {
	out := &dto.VehiculoResponse{
		ID:        v.ID,
		Matricula: v.Matricula,
		Marca:     v.Marca,
		Modelo:    v.Modelo,
	}
	if v.ClienteID != nil {
		if n, ok := nombres[*v.ClienteID]; ok && n != "" {
			out.ClienteNombre = n
		} else {
			out.ClienteNombre = "#" + *v.ClienteID
		}
	} else {
		out.ClienteNombre = "—"
	}
	return out
}
