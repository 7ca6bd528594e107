package reporte

import (
	"fmt"
	"time"

	"github.com/specialwash/gestion-api/internal/application/dto"
	"github.com/specialwash/gestion-api/internal/domain/entity"
	"github.com/specialwash/gestion-api/internal/domain/repository"
)

// HistorialUseCase genera los informes de entradas y salidas del almacén:
// toma la foto de movimientos del repositorio, la filtra y ordena con el
// agregador puro y resuelve los nombres de producto, proveedor y usuario.
type HistorialUseCase struct {
	movRepo       repository.MovimientoRepository
	productoRepo  repository.ProductoRepository
	proveedorRepo repository.ProveedorRepository
	usuarioRepo   repository.UsuarioRepository
}

// NewHistorialUseCase construye el caso de uso.
func NewHistorialUseCase(
	movRepo repository.MovimientoRepository,
	productoRepo repository.ProductoRepository,
	proveedorRepo repository.ProveedorRepository,
	usuarioRepo repository.UsuarioRepository,
) *HistorialUseCase {
	return &HistorialUseCase{
		movRepo:       movRepo,
		productoRepo:  productoRepo,
		proveedorRepo: proveedorRepo,
		usuarioRepo:   usuarioRepo,
	}
}

// Entradas devuelve el informe de entradas filtrado y totalizado.
func (uc *HistorialUseCase) Entradas(in dto.ReporteRequest) (*dto.ReporteEntradasDTO, error) {
	entradas, err := uc.movRepo.ListEntradas()
	if err != nil {
		return nil, fmt.Errorf("listar entradas: %w", err)
	}
	productos, err := uc.nombresProductos()
	if err != nil {
		return nil, err
	}
	proveedores, err := uc.nombresProveedores()
	if err != nil {
		return nil, err
	}

	porID := make(map[string]*entity.Entrada, len(entradas))
	registros := make([]Registro, 0, len(entradas))
	for _, e := range entradas {
		porID[e.ID] = e
		registros = append(registros, Registro{
			ID:      e.ID,
			Fecha:   e.Fecha,
			ClaveFK: e.ProductoID,
			Textos: []string{
				productos[e.ProductoID],
				nombreProveedor(proveedores, e.ProveedorID),
				e.NumeroAlbaran,
			},
			Cantidad: e.Cantidad,
			Neto:     e.PrecioSinIVA,
			IVA:      e.ValorIVA,
			Bruto:    e.PrecioConIVA,
		})
	}

	filtrados := Filtrar(registros, filtroDesdeRequest(in))

	filas := make([]dto.EntradaFilaDTO, 0, len(filtrados))
	for _, r := range filtrados {
		e := porID[r.ID]
		filas = append(filas, dto.EntradaFilaDTO{
			ID:              e.ID,
			Fecha:           formatearFecha(e.Fecha),
			ProductoID:      e.ProductoID,
			ProductoNombre:  nombreOPlaceholder(productos, e.ProductoID),
			ProveedorNombre: nombreProveedor(proveedores, e.ProveedorID),
			NumeroAlbaran:   e.NumeroAlbaran,
			Cantidad:        e.Cantidad,
			PrecioSinIVA:    e.PrecioSinIVA.Round(2).StringFixed(2),
			PorcentajeIVA:   e.PorcentajeIVA.StringFixed(2),
			ValorIVA:        e.ValorIVA.Round(2).StringFixed(2),
			PrecioConIVA:    e.PrecioConIVA.Round(2).StringFixed(2),
		})
	}

	return &dto.ReporteEntradasDTO{
		Filas:   filas,
		Totales: formatearTotales(Totalizar(filtrados)),
	}, nil
}

// Salidas devuelve el informe de salidas filtrado y totalizado.
// Las salidas no llevan importes: los totales monetarios quedan a cero.
func (uc *HistorialUseCase) Salidas(in dto.ReporteRequest) (*dto.ReporteSalidasDTO, error) {
	salidas, err := uc.movRepo.ListSalidas()
	if err != nil {
		return nil, fmt.Errorf("listar salidas: %w", err)
	}
	productos, err := uc.nombresProductos()
	if err != nil {
		return nil, err
	}
	usuarios, err := uc.nombresUsuarios()
	if err != nil {
		return nil, err
	}

	porID := make(map[string]*entity.Salida, len(salidas))
	registros := make([]Registro, 0, len(salidas))
	for _, s := range salidas {
		porID[s.ID] = s
		registros = append(registros, Registro{
			ID:       s.ID,
			Fecha:    s.Fecha,
			ClaveFK:  s.ProductoID,
			Textos:   []string{productos[s.ProductoID], usuarios[s.UsuarioID], s.Observaciones},
			Cantidad: s.Cantidad,
		})
	}

	filtrados := Filtrar(registros, filtroDesdeRequest(in))

	filas := make([]dto.SalidaFilaDTO, 0, len(filtrados))
	for _, r := range filtrados {
		s := porID[r.ID]
		filas = append(filas, dto.SalidaFilaDTO{
			ID:             s.ID,
			Fecha:          formatearFecha(s.Fecha),
			ProductoID:     s.ProductoID,
			ProductoNombre: nombreOPlaceholder(productos, s.ProductoID),
			UsuarioNombre:  nombreOPlaceholder(usuarios, s.UsuarioID),
			Cantidad:       s.Cantidad,
			Observaciones:  s.Observaciones,
		})
	}

	return &dto.ReporteSalidasDTO{
		Filas:   filas,
		Totales: formatearTotales(Totalizar(filtrados)),
	}, nil
}

func (uc *HistorialUseCase) nombresProductos() (map[string]string, error) {
	productos, err := uc.productoRepo.List()
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	m := make(map[string]string, len(productos))
	for _, p := range productos {
		m[p.ID] = p.Nombre
	}
	return m, nil
}

func (uc *HistorialUseCase) nombresProveedores() (map[string]string, error) {
	proveedores, err := uc.proveedorRepo.List()
	if err != nil {
		return nil, fmt.Errorf("listar proveedores: %w", err)
	}
	m := make(map[string]string, len(proveedores))
	for _, p := range proveedores {
		m[p.ID] = p.Nombre
	}
	return m, nil
}

func (uc *HistorialUseCase) nombresUsuarios() (map[string]string, error) {
	usuarios, err := uc.usuarioRepo.List()
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	m := make(map[string]string, len(usuarios))
	for _, u := range usuarios {
		m[u.ID] = u.Nombre
	}
	return m, nil
}

func filtroDesdeRequest(in dto.ReporteRequest) Filtro {
	return Filtro{
		Desde: ParseDesde(in.Desde, time.Local),
		Hasta: ParseHasta(in.Hasta, time.Local),
		FK:    in.ProductoID,
		Texto: in.Texto,
	}
}

func formatearFecha(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

func formatearTotales(t Totales) dto.TotalesReporteDTO {
	return dto.TotalesReporteDTO{
		Registros: t.Registros,
		Cantidad:  t.Cantidad,
		Neto:      t.NetoRedondeado().StringFixed(2),
		IVA:       t.IVARedondeado().StringFixed(2),
		Bruto:     t.BrutoRedondeado().StringFixed(2),
	}
}

// nombreOPlaceholder resuelve una referencia en el mapa de nombres;
// si la FK apunta a un registro borrado devuelve "#<id>" para que la
// fila siga siendo mostrable.
func nombreOPlaceholder(nombres map[string]string, id string) string {
	if n, ok := nombres[id]; ok && n != "" {
		return n
	}
	if id == "" {
		return "—"
	}
	return "#" + id
}

func nombreProveedor(nombres map[string]string, id *string) string {
	if id == nil {
		return "—"
	}
	return nombreOPlaceholder(nombres, *id)
}
