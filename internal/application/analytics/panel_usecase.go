// Package analytics contiene el caso de uso del panel de administración.
package analytics

import (
	"fmt"
	"time"

	"github.com/specialwash/gestion-api/internal/application/alertas"
	"github.com/specialwash/gestion-api/internal/application/dto"
	"github.com/specialwash/gestion-api/internal/application/reporte"
	"github.com/specialwash/gestion-api/internal/domain/repository"
	"github.com/specialwash/gestion-api/internal/domain/stock"
)

// PanelUseCase combina en una sola respuesta los tres widgets del panel:
// alertas de garantía, productos bajo mínimo y totales de entradas del mes.
type PanelUseCase struct {
	alertasUC    *alertas.UseCase
	historialUC  *reporte.HistorialUseCase
	productoRepo repository.ProductoRepository
	ahora        func() time.Time
}

// NewPanelUseCase construye el caso de uso; ahora se inyecta para tests.
func NewPanelUseCase(
	alertasUC *alertas.UseCase,
	historialUC *reporte.HistorialUseCase,
	productoRepo repository.ProductoRepository,
	ahora func() time.Time,
) *PanelUseCase {
	return &PanelUseCase{
		alertasUC:    alertasUC,
		historialUC:  historialUC,
		productoRepo: productoRepo,
		ahora:        ahora,
	}
}

// Resumen ejecuta las tres consultas en paralelo y arma el PanelDTO.
func (uc *PanelUseCase) Resumen() (*dto.PanelDTO, error) {
	now := uc.ahora()
	inicioMes := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type alertasResult struct {
		res *dto.ResumenAlertasDTO
		err error
	}
	type entradasResult struct {
		res *dto.ReporteEntradasDTO
		err error
	}
	type bajosResult struct {
		n   int
		err error
	}

	alertasCh := make(chan alertasResult, 1)
	entradasCh := make(chan entradasResult, 1)
	bajosCh := make(chan bajosResult, 1)

	go func() {
		res, err := uc.alertasUC.Resumen()
		alertasCh <- alertasResult{res, err}
	}()
	go func() {
		res, err := uc.historialUC.Entradas(dto.ReporteRequest{
			Desde: inicioMes.Format("2006-01-02"),
			Hasta: now.Format("2006-01-02"),
		})
		entradasCh <- entradasResult{res, err}
	}()
	go func() {
		productos, err := uc.productoRepo.List()
		if err != nil {
			bajosCh <- bajosResult{0, err}
			return
		}
		n := 0
		for _, p := range productos {
			if stock.EsBajoStock(p.StockActual, p.StockMinimo) {
				n++
			}
		}
		bajosCh <- bajosResult{n, nil}
	}()

	a := <-alertasCh
	e := <-entradasCh
	b := <-bajosCh

	if a.err != nil {
		return nil, fmt.Errorf("panel: alertas de garantía: %w", a.err)
	}
	if e.err != nil {
		return nil, fmt.Errorf("panel: entradas del mes: %w", e.err)
	}
	if b.err != nil {
		return nil, fmt.Errorf("panel: productos bajo stock: %w", b.err)
	}

	return &dto.PanelDTO{
		Alertas:        *a.res,
		ProductosBajos: b.n,
		EntradasMes:    e.res.Totales,
		MesEtiqueta:    etiquetaMes(now),
	}, nil
}

// etiquetaMes devuelve una etiqueta legible del mes, ej: "Junio 2025".
func etiquetaMes(t time.Time) string {
	meses := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", meses[t.Month()-1], t.Year())
}
