package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/specialwash/gestion-api/internal/application/dto"
	"github.com/specialwash/gestion-api/internal/application/reporte"
	"github.com/specialwash/gestion-api/internal/domain"
	"github.com/specialwash/gestion-api/internal/domain/entity"
	"github.com/specialwash/gestion-api/internal/domain/repository"
	"github.com/specialwash/gestion-api/internal/domain/stock"
)

// ProductoUseCase CRUD de productos con los derivados de stock calculados
// en cada respuesta (nunca persistidos).
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Create da de alta un producto. Stocks negativos degradan a 0.
func (uc *ProductoUseCase) Create(in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.StockActual < 0 {
		in.StockActual = 0
	}
	if in.StockMinimo != nil && *in.StockMinimo < 0 {
		cero := 0
		in.StockMinimo = &cero
	}
	now := time.Now()
	p := &entity.Producto{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Categoria:   in.Categoria,
		StockActual: in.StockActual,
		StockMinimo: in.StockMinimo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, fmt.Errorf("crear producto: %w", err)
	}
	return toProductoResponse(p), nil
}

// GetByID devuelve un producto o nil si no existe.
func (uc *ProductoUseCase) GetByID(id string) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil || p == nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// List devuelve el almacén completo, opcionalmente filtrado por texto libre
// sobre nombre y categoría (sin distinguir mayúsculas ni acentos).
func (uc *ProductoUseCase) List(filtro string) ([]dto.ProductoResponse, error) {
	productos, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	consulta := reporte.NormalizarTexto(filtro)
	out := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		if consulta != "" && !coincide(consulta, p.Nombre, p.Categoria) {
			continue
		}
		out = append(out, *toProductoResponse(p))
	}
	return out, nil
}

// Update modifica los campos presentes en la petición.
func (uc *ProductoUseCase) Update(id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		p.Nombre = *in.Nombre
	}
	if in.Categoria != nil {
		p.Categoria = *in.Categoria
	}
	if in.StockActual != nil && *in.StockActual >= 0 {
		p.StockActual = *in.StockActual
	}
	if in.StockMinimo != nil {
		p.StockMinimo = in.StockMinimo
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, fmt.Errorf("actualizar producto: %w", err)
	}
	return toProductoResponse(p), nil
}

// Delete elimina un producto.
func (uc *ProductoUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:               p.ID,
		Nombre:           p.Nombre,
		Categoria:        p.Categoria,
		StockActual:      p.StockActual,
		StockMinimo:      p.StockMinimo,
		BajoStock:        stock.EsBajoStock(p.StockActual, p.StockMinimo),
		CantidadSugerida: stock.CantidadSugerida(p.StockActual, p.StockMinimo),
	}
}

func coincide(consulta string, campos ...string) bool {
	for _, c := range campos {
		if strings.Contains(reporte.NormalizarTexto(c), consulta) {
			return true
		}
	}
	return false
}
