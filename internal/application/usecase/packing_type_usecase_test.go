package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestion-almacenes/almacenes-api/internal/application/dto"
	"github.com/gestion-almacenes/almacenes-api/internal/application/usecase"
	"github.com/gestion-almacenes/almacenes-api/internal/domain"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/entity"
)

// fakePackingRepo repo en memoria para los tests del CRUD.
type fakePackingRepo struct {
	byID map[string]entity.PackingType
}

func newFakePackingRepo() *fakePackingRepo {
	return &fakePackingRepo{byID: map[string]entity.PackingType{}}
}

func (r *fakePackingRepo) Create(p *entity.PackingType) error { r.byID[p.ID] = *p; return nil }
func (r *fakePackingRepo) Update(p *entity.PackingType) error { r.byID[p.ID] = *p; return nil }

func (r *fakePackingRepo) GetByID(id string) (*entity.PackingType, error) {
	if p, ok := r.byID[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *fakePackingRepo) GetByCode(code string) (*entity.PackingType, error) {
	for _, p := range r.byID {
		if p.Code == code && p.Active {
			c := p
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakePackingRepo) ExistsByCode(code string) (bool, error) {
	p, _ := r.GetByCode(code)
	return p != nil, nil
}

func (r *fakePackingRepo) List(limit, offset int) ([]*entity.PackingType, error) {
	var out []*entity.PackingType
	for _, p := range r.byID {
		if p.Active {
			c := p
			out = append(out, &c)
		}
	}
	return out, nil
}

func seedNA(repo *fakePackingRepo) string {
	na := entity.PackingType{
		ID: "pack-na", Code: entity.PackingCodeNA, Name: "Sin Asignar", Active: true,
	}
	repo.byID[na.ID] = na
	return na.ID
}

func TestPackingType_CreateYDuplicado(t *testing.T) {
	uc := usecase.NewPackingTypeUseCase(newFakePackingRepo())

	created, err := uc.Create(dto.PackingTypeRequest{
		Code: "CAJ-10", Name: "Caja x10", Capacity: decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	assert.Equal(t, "CAJ-10", created.Code)
	assert.True(t, created.Capacity.Equal(decimal.NewFromInt(10)))

	_, err = uc.Create(dto.PackingTypeRequest{Code: "CAJ-10", Name: "Otra caja"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestPackingType_CapacidadNegativa(t *testing.T) {
	uc := usecase.NewPackingTypeUseCase(newFakePackingRepo())

	_, err := uc.Create(dto.PackingTypeRequest{
		Code: "SAC", Name: "Saco", Capacity: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPackingType_EmpaqueReservadoProtegido(t *testing.T) {
	repo := newFakePackingRepo()
	naID := seedNA(repo)
	uc := usecase.NewPackingTypeUseCase(repo)

	// El empaque "n/a" sostiene la política de lote por defecto: ni se
	// modifica ni se elimina.
	_, err := uc.Update(naID, dto.PackingTypeRequest{Code: "XX", Name: "Otro"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = uc.Delete(naID)
	assert.ErrorIs(t, err, domain.ErrValidation)

	got, err := uc.GetByID(naID)
	require.NoError(t, err)
	assert.Equal(t, entity.PackingCodeNA, got.Code)
}

func TestPackingType_DobleBorrado(t *testing.T) {
	uc := usecase.NewPackingTypeUseCase(newFakePackingRepo())

	created, err := uc.Create(dto.PackingTypeRequest{Code: "PAL", Name: "Pallet"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	err = uc.Delete(created.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyDeleted)

	_, err = uc.GetByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
