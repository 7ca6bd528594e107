package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialwash/gestion-api/internal/application/dto"
	"github.com/specialwash/gestion-api/internal/domain/entity"
)

type maquinariaRepoFake struct {
	porID map[string]*entity.Maquinaria
	orden []string
}

func newMaquinariaRepoFake() *maquinariaRepoFake {
	return &maquinariaRepoFake{porID: map[string]*entity.Maquinaria{}}
}

func (f *maquinariaRepoFake) Create(m *entity.Maquinaria) error {
	f.porID[m.ID] = m
	f.orden = append(f.orden, m.ID)
	return nil
}
func (f *maquinariaRepoFake) GetByID(id string) (*entity.Maquinaria, error) { return f.porID[id], nil }
func (f *maquinariaRepoFake) Update(m *entity.Maquinaria) error             { f.porID[m.ID] = m; return nil }
func (f *maquinariaRepoFake) List() ([]*entity.Maquinaria, error) {
	out := make([]*entity.Maquinaria, 0, len(f.orden))
	for _, id := range f.orden {
		out = append(out, f.porID[id])
	}
	return out, nil
}
func (f *maquinariaRepoFake) ListConGarantia() ([]*entity.Maquinaria, error) {
	var out []*entity.Maquinaria
	for _, id := range f.orden {
		if f.porID[id].FechaGarantiaFin != nil {
			out = append(out, f.porID[id])
		}
	}
	return out, nil
}
func (f *maquinariaRepoFake) Delete(id string) error { delete(f.porID, id); return nil }

func hoyFijo() time.Time {
	loc, _ := time.LoadLocation("Europe/Madrid")
	return time.Date(2025, 6, 15, 12, 0, 0, 0, loc)
}

func TestMaquinariaCreate_ClasificaGarantia(t *testing.T) {
	uc := NewMaquinariaUseCase(newMaquinariaRepoFake(), hoyFijo)

	out, err := uc.Create(dto.CreateMaquinariaRequest{
		Nombre:           "Hidrolimpiadora",
		FechaGarantiaFin: "2025-06-25",
	})
	require.NoError(t, err)

	assert.Equal(t, "soon", out.Garantia, "quedan 10 días, dentro del umbral de 30")
	assert.Equal(t, "Vence en 10 días", out.GarantiaEtiqueta)
	assert.Equal(t, "2025-06-25", out.FechaGarantiaFin)
}

func TestMaquinariaCreate_FechaMalFormadaQuedaDesconocida(t *testing.T) {
	uc := NewMaquinariaUseCase(newMaquinariaRepoFake(), hoyFijo)

	out, err := uc.Create(dto.CreateMaquinariaRequest{
		Nombre:           "Caldera",
		FechaGarantiaFin: "25/06/2025",
	})
	require.NoError(t, err, "una fecha ilegible nunca es error de alta")

	assert.Equal(t, "unknown", out.Garantia)
	assert.Empty(t, out.FechaGarantiaFin)
}

func TestMaquinariaUpdate_ReclasificaConNuevaFecha(t *testing.T) {
	repo := newMaquinariaRepoFake()
	uc := NewMaquinariaUseCase(repo, hoyFijo)

	creado, err := uc.Create(dto.CreateMaquinariaRequest{
		Nombre:           "Lavadora industrial",
		FechaGarantiaFin: "2025-06-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "expired", creado.Garantia)

	out, err := uc.Update(creado.ID, dto.CreateMaquinariaRequest{
		Nombre:           "Lavadora industrial",
		FechaGarantiaFin: "2026-06-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", out.Garantia, "garantía extendida debe salir vigente")
}

func TestMaquinariaList_IncluyeClasificacion(t *testing.T) {
	repo := newMaquinariaRepoFake()
	uc := NewMaquinariaUseCase(repo, hoyFijo)

	_, err := uc.Create(dto.CreateMaquinariaRequest{Nombre: "Aspiradora"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateMaquinariaRequest{Nombre: "Ascensor", FechaGarantiaFin: "2025-05-01"})
	require.NoError(t, err)

	out, err := uc.List()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "unknown", out[0].Garantia)
	assert.Equal(t, "expired", out[1].Garantia)
}
