// Package inventario contiene los casos de uso de stock: la hoja de pedido
// de bajo stock y el registro transaccional de entradas y salidas.
package inventario

import (
	"fmt"
	"sort"

	"github.com/specialwash/gestion-api/internal/application/dto"
	"github.com/specialwash/gestion-api/internal/domain/repository"
	"github.com/specialwash/gestion-api/internal/domain/stock"
)

// PedidoUseCase genera la hoja de pedido con los productos en o por debajo
// de su mínimo y la cantidad sugerida para reponer al doble del mínimo.
type PedidoUseCase struct {
	productoRepo repository.ProductoRepository
}

// NewPedidoUseCase construye el caso de uso.
func NewPedidoUseCase(productoRepo repository.ProductoRepository) *PedidoUseCase {
	return &PedidoUseCase{productoRepo: productoRepo}
}

// Generar devuelve la hoja de pedido ordenada por nombre de producto.
func (uc *PedidoUseCase) Generar() (*dto.PedidoDTO, error) {
	productos, err := uc.productoRepo.List()
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}

	filas := make([]dto.PedidoFilaDTO, 0)
	totalUnidades := 0
	for _, p := range productos {
		if !stock.EsBajoStock(p.StockActual, p.StockMinimo) {
			continue
		}
		sugerida := stock.CantidadSugerida(p.StockActual, p.StockMinimo)
		filas = append(filas, dto.PedidoFilaDTO{
			ProductoID:       p.ID,
			Nombre:           p.Nombre,
			Categoria:        p.Categoria,
			StockActual:      p.StockActual,
			StockMinimo:      *p.StockMinimo,
			CantidadSugerida: sugerida,
		})
		totalUnidades += sugerida
	}

	sort.SliceStable(filas, func(i, j int) bool {
		return filas[i].Nombre < filas[j].Nombre
	})

	return &dto.PedidoDTO{
		Filas:          filas,
		TotalProductos: len(filas),
		TotalUnidades:  totalUnidades,
	}, nil
}
