package alertas

import (
	"fmt"
	"time"

	"github.com/specialwash/gestion-api/internal/application/dto"
	"github.com/specialwash/gestion-api/internal/domain/repository"
)

// UseCase expone el resumen de alertas de garantía para el widget del panel.
// Prefiere el feed de alertas del repositorio (solo activos con fecha de
// garantía); si viene vacío o falla cae al listado completo. Las reglas de
// clasificación son las mismas con cualquiera de las dos fuentes.
type UseCase struct {
	maquinariaRepo repository.MaquinariaRepository
	ahora          func() time.Time
}

// NewUseCase construye el caso de uso; ahora se inyecta para tests.
func NewUseCase(maquinariaRepo repository.MaquinariaRepository, ahora func() time.Time) *UseCase {
	return &UseCase{maquinariaRepo: maquinariaRepo, ahora: ahora}
}

// Resumen devuelve el agregado de alertas listo para la respuesta HTTP.
func (uc *UseCase) Resumen() (*dto.ResumenAlertasDTO, error) {
	maquinas, err := uc.maquinariaRepo.ListConGarantia()
	if err != nil || len(maquinas) == 0 {
		maquinas, err = uc.maquinariaRepo.List()
		if err != nil {
			return nil, fmt.Errorf("listar maquinaria: %w", err)
		}
	}

	r := Construir(maquinas, uc.ahora())

	preview := make([]dto.AlertaFilaDTO, 0, len(r.Preview))
	for _, f := range r.Preview {
		fila := dto.AlertaFilaDTO{
			ID:            f.ID,
			Nombre:        f.Nombre,
			Marca:         f.Marca,
			Modelo:        f.Modelo,
			Ubicacion:     f.Ubicacion,
			Estado:        string(f.Clasificacion.Estado),
			Etiqueta:      f.Clasificacion.Etiqueta,
			DiasRestantes: f.Clasificacion.DiasRestantes,
		}
		if f.FechaGarantiaFin != nil {
			fila.FechaGarantiaFin = f.FechaGarantiaFin.Format("2006-01-02")
		}
		preview = append(preview, fila)
	}

	return &dto.ResumenAlertasDTO{
		Total:    r.Total,
		Vencidas: r.Vencidas,
		Proximas: r.Proximas,
		Preview:  preview,
	}, nil
}
