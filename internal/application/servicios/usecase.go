// Package servicios contiene los casos de uso de SpecialWash: registro y
// listado de servicios prestados sobre vehículos, con los importes derivados
// del calculador de precios.
package servicios

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/specialwash/gestion-api/internal/application/dto"
	"github.com/specialwash/gestion-api/internal/application/reporte"
	"github.com/specialwash/gestion-api/internal/domain"
	"github.com/specialwash/gestion-api/internal/domain/entity"
	"github.com/specialwash/gestion-api/internal/domain/precio"
	"github.com/specialwash/gestion-api/internal/domain/repository"
)

// UseCase casos de uso de servicios realizados.
type UseCase struct {
	realizadoRepo repository.ServicioRealizadoRepository
	servicioRepo  repository.ServicioRepository
	vehiculoRepo  repository.VehiculoRepository
	ahora         func() time.Time
}

// NewUseCase construye el caso de uso; ahora se inyecta para tests.
func NewUseCase(
	realizadoRepo repository.ServicioRealizadoRepository,
	servicioRepo repository.ServicioRepository,
	vehiculoRepo repository.VehiculoRepository,
	ahora func() time.Time,
) *UseCase {
	return &UseCase{
		realizadoRepo: realizadoRepo,
		servicioRepo:  servicioRepo,
		vehiculoRepo:  vehiculoRepo,
		ahora:         ahora,
	}
}

// Registrar da de alta un servicio realizado. Si no llegan precio o IVA se
// precargan del catálogo; los totales no se persisten, se derivan siempre.
func (uc *UseCase) Registrar(in dto.RegistrarServicioRequest) (*entity.ServicioRealizado, error) {
	if in.VehiculoID == "" || in.ServicioID == "" {
		return nil, domain.ErrInvalidInput
	}
	srv, err := uc.servicioRepo.GetByID(in.ServicioID)
	if err != nil {
		return nil, err
	}
	if srv == nil {
		return nil, domain.ErrNotFound
	}

	cantidad := in.Cantidad
	if cantidad < 1 {
		cantidad = 1
	}
	// CalcularDesdeFloat degrada NaN/Inf a 0 y recorta el precio negativo;
	// con cantidad 1 su Base es el precio unitario ya saneado.
	precioUnitario := precio.CalcularDesdeFloat(in.PrecioUnitario, 0, 0, 1).Base

	sr := &entity.ServicioRealizado{
		ID:             uuid.New().String(),
		VehiculoID:     in.VehiculoID,
		ServicioID:     in.ServicioID,
		Fecha:          parseFechaODefecto(in.Fecha, uc.ahora),
		Cantidad:       cantidad,
		PrecioUnitario: precioUnitario,
		PorcentajeIVA:  saneado(in.PorcentajeIVA),
		Descuento:      saneado(in.Descuento),
		Facturado:      false,
		Observaciones:  in.Observaciones,
		CreatedAt:      uc.ahora(),
	}
	if sr.PrecioUnitario.IsZero() {
		sr.PrecioUnitario = srv.PrecioBase
		sr.PorcentajeIVA = srv.PorcentajeIVA
	}

	if err := uc.realizadoRepo.Create(sr); err != nil {
		return nil, fmt.Errorf("crear servicio realizado: %w", err)
	}
	return sr, nil
}

// MarcarFacturado cambia el estado de facturación de un servicio.
func (uc *UseCase) MarcarFacturado(id string, facturado bool) error {
	sr, err := uc.realizadoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if sr == nil {
		return domain.ErrNotFound
	}
	return uc.realizadoRepo.MarcarFacturado(id, facturado)
}

// Listar devuelve el informe de servicios realizados: filtra con el
// agregador, deriva los importes de cada fila y totaliza el conjunto.
func (uc *UseCase) Listar(in dto.ServiciosRequest) (*dto.ReporteServiciosDTO, error) {
	realizados, err := uc.realizadoRepo.List()
	if err != nil {
		return nil, fmt.Errorf("listar servicios realizados: %w", err)
	}
	nombres, err := uc.nombresServicios()
	if err != nil {
		return nil, err
	}
	matriculas, err := uc.matriculas()
	if err != nil {
		return nil, err
	}

	porID := make(map[string]*entity.ServicioRealizado, len(realizados))
	registros := make([]reporte.Registro, 0, len(realizados))
	for _, sr := range realizados {
		if in.Facturado == "true" && !sr.Facturado {
			continue
		}
		if in.Facturado == "false" && sr.Facturado {
			continue
		}
		porID[sr.ID] = sr
		d := precio.Calcular(sr.PrecioUnitario, sr.PorcentajeIVA, sr.Descuento, sr.Cantidad)
		registros = append(registros, reporte.Registro{
			ID:       sr.ID,
			Fecha:    sr.Fecha,
			ClaveFK:  sr.VehiculoID,
			Textos:   []string{nombres[sr.ServicioID], matriculas[sr.VehiculoID], sr.Observaciones},
			Cantidad: sr.Cantidad,
			Neto:     d.ConDescuento,
			IVA:      d.ImporteIVA,
			Bruto:    d.Total,
		})
	}

	filtrados := reporte.Filtrar(registros, reporte.Filtro{
		Desde: reporte.ParseDesde(in.Desde, time.Local),
		Hasta: reporte.ParseHasta(in.Hasta, time.Local),
		FK:    in.VehiculoID,
		Texto: in.Texto,
	})

	filas := make([]dto.ServicioFilaDTO, 0, len(filtrados))
	for _, r := range filtrados {
		sr := porID[r.ID]
		d := precio.Calcular(sr.PrecioUnitario, sr.PorcentajeIVA, sr.Descuento, sr.Cantidad)
		filas = append(filas, dto.ServicioFilaDTO{
			ID:             sr.ID,
			Fecha:          sr.Fecha.Format("2006-01-02 15:04"),
			VehiculoID:     sr.VehiculoID,
			Matricula:      matriculaOPlaceholder(matriculas, sr.VehiculoID),
			ServicioNombre: nombreOPlaceholder(nombres, sr.ServicioID),
			Cantidad:       sr.Cantidad,
			PrecioUnitario: sr.PrecioUnitario.Round(2).StringFixed(2),
			PorcentajeIVA:  sr.PorcentajeIVA.StringFixed(2),
			Descuento:      sr.Descuento.StringFixed(2),
			TotalSinIVA:    d.TotalSinIVA().StringFixed(2),
			TotalConIVA:    d.TotalConIVA().StringFixed(2),
			Facturado:      sr.Facturado,
		})
	}

	t := reporte.Totalizar(filtrados)
	return &dto.ReporteServiciosDTO{
		Filas: filas,
		Totales: dto.TotalesReporteDTO{
			Registros: t.Registros,
			Cantidad:  t.Cantidad,
			Neto:      t.NetoRedondeado().StringFixed(2),
			IVA:       t.IVARedondeado().StringFixed(2),
			Bruto:     t.BrutoRedondeado().StringFixed(2),
		},
	}, nil
}

func (uc *UseCase) nombresServicios() (map[string]string, error) {
	servicios, err := uc.servicioRepo.List()
	if err != nil {
		return nil, fmt.Errorf("listar catálogo de servicios: %w", err)
	}
	m := make(map[string]string, len(servicios))
	for _, s := range servicios {
		m[s.ID] = s.Nombre
	}
	return m, nil
}

func (uc *UseCase) matriculas() (map[string]string, error) {
	vehiculos, err := uc.vehiculoRepo.List()
	if err != nil {
		return nil, fmt.Errorf("listar vehículos: %w", err)
	}
	m := make(map[string]string, len(vehiculos))
	for _, v := range vehiculos {
		m[v.ID] = v.Matricula
	}
	return m, nil
}

func nombreOPlaceholder(nombres map[string]string, id string) string {
	if n, ok := nombres[id]; ok && n != "" {
		return n
	}
	return "#" + id
}

func matriculaOPlaceholder(matriculas map[string]string, id string) string {
	if m, ok := matriculas[id]; ok && m != "" {
		return m
	}
	return "#" + id
}

// saneado recorta un porcentaje a [0,100]; NaN/Inf degradan a 0.
func saneado(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return decimal.Zero
	}
	if f > 100 {
		return decimal.NewFromInt(100)
	}
	return decimal.NewFromFloat(f)
}

func parseFechaODefecto(s string, ahora func() time.Time) time.Time {
	if s == "" {
		return ahora()
	}
	for _, layout := range []string{"2006-01-02", "2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return ahora()
}
