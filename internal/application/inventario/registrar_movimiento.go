package inventario

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/specialwash/gestion-api/internal/application/dto"
	"github.com/specialwash/gestion-api/internal/domain"
	"github.com/specialwash/gestion-api/internal/domain/entity"
	"github.com/specialwash/gestion-api/internal/domain/precio"
	"github.com/specialwash/gestion-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos atados a una misma transacción:
// el insert del movimiento y el ajuste de stock deben confirmar juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimientoRepository,
		productoRepo repository.ProductoRepository,
	) error) error
}

// RegistrarMovimientoUseCase registra entradas y salidas del almacén
// ajustando el stock del producto en la misma transacción.
type RegistrarMovimientoUseCase struct {
	tx           TxRunner
	productoRepo repository.ProductoRepository
	ahora        func() time.Time
}

// NewRegistrarMovimientoUseCase construye el caso de uso. ahora se inyecta
// para poder fijar la fecha en tests.
func NewRegistrarMovimientoUseCase(tx TxRunner, productoRepo repository.ProductoRepository, ahora func() time.Time) *RegistrarMovimientoUseCase {
	return &RegistrarMovimientoUseCase{tx: tx, productoRepo: productoRepo, ahora: ahora}
}

// RegistrarEntrada valida, completa los importes derivados y persiste la
// entrada incrementando el stock del producto.
func (uc *RegistrarMovimientoUseCase) RegistrarEntrada(ctx context.Context, in dto.RegistrarEntradaRequest) (*entity.Entrada, error) {
	if in.ProductoID == "" || in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.productoRepo.GetByID(in.ProductoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	// El albarán trae neto unitario e IVA en %; el desglose sale del
	// calculador de dominio (precisión completa, sin redondear aquí).
	desglose := precio.CalcularDesdeFloat(in.PrecioSinIVA, in.PorcentajeIVA, 0, in.Cantidad)

	var provID *string
	if in.ProveedorID != "" {
		provID = &in.ProveedorID
	}
	e := &entity.Entrada{
		ID:            uuid.New().String(),
		Fecha:         uc.parseFechaODefecto(in.Fecha),
		ProductoID:    in.ProductoID,
		ProveedorID:   provID,
		Cantidad:      in.Cantidad,
		NumeroAlbaran: in.NumeroAlbaran,
		PrecioSinIVA:  desglose.Base,
		PorcentajeIVA: porcentajeSeguro(in.PorcentajeIVA),
		ValorIVA:      desglose.ImporteIVA,
		PrecioConIVA:  desglose.Total,
		Observaciones: in.Observaciones,
		CreatedAt:     uc.ahora(),
	}

	err = uc.tx.Run(ctx, func(movRepo repository.MovimientoRepository, productoRepo repository.ProductoRepository) error {
		if err := movRepo.CreateEntrada(e); err != nil {
			return err
		}
		return productoRepo.AjustarStock(e.ProductoID, e.Cantidad)
	})
	if err != nil {
		return nil, fmt.Errorf("registrar entrada: %w", err)
	}
	return e, nil
}

// RegistrarSalida persiste la salida descontando stock. Rechaza salidas que
// dejarían el stock en negativo.
func (uc *RegistrarMovimientoUseCase) RegistrarSalida(ctx context.Context, usuarioID string, in dto.RegistrarSalidaRequest) (*entity.Salida, error) {
	if in.ProductoID == "" || in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.productoRepo.GetByID(in.ProductoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.StockActual < in.Cantidad {
		return nil, domain.ErrInsufficientStock
	}

	s := &entity.Salida{
		ID:            uuid.New().String(),
		Fecha:         uc.parseFechaODefecto(in.Fecha),
		ProductoID:    in.ProductoID,
		UsuarioID:     usuarioID,
		Cantidad:      in.Cantidad,
		Observaciones: in.Observaciones,
		CreatedAt:     uc.ahora(),
	}

	err = uc.tx.Run(ctx, func(movRepo repository.MovimientoRepository, productoRepo repository.ProductoRepository) error {
		if err := movRepo.CreateSalida(s); err != nil {
			return err
		}
		return productoRepo.AjustarStock(s.ProductoID, -s.Cantidad)
	})
	if err != nil {
		return nil, fmt.Errorf("registrar salida: %w", err)
	}
	return s, nil
}

// parseFechaODefecto admite YYYY-MM-DD o ISO con hora; vacío o inválido usa
// el reloj inyectado.
func (uc *RegistrarMovimientoUseCase) parseFechaODefecto(s string) time.Time {
	if s == "" {
		return uc.ahora()
	}
	for _, layout := range []string{"2006-01-02", "2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return uc.ahora()
}

// porcentajeSeguro recorta el porcentaje de IVA a [0,100]; NaN degrada a 0.
func porcentajeSeguro(f float64) decimal.Decimal {
	if math.IsNaN(f) || f < 0 {
		return decimal.Zero
	}
	if f > 100 {
		return decimal.NewFromInt(100)
	}
	return decimal.NewFromFloat(f)
}
