package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantnet/marketplace-api/internal/application/dto"
	"github.com/plantnet/marketplace-api/internal/application/usecase"
	"github.com/plantnet/marketplace-api/internal/domain"
	"github.com/plantnet/marketplace-api/internal/domain/entity"
)

// plantRepoFake in-memory PlantRepository. AdjustQuantity is unclamped, like
// the postgres adapter.
type plantRepoFake struct {
	plants map[string]*entity.Plant
}

func newPlantRepoFake() *plantRepoFake {
	return &plantRepoFake{plants: map[string]*entity.Plant{}}
}

func (f *plantRepoFake) Create(_ context.Context, plant *entity.Plant) error {
	cp := *plant
	f.plants[plant.ID] = &cp
	return nil
}

func (f *plantRepoFake) GetByID(_ context.Context, id string) (*entity.Plant, error) {
	p, ok := f.plants[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *plantRepoFake) GetForUpdate(ctx context.Context, id string) (*entity.Plant, error) {
	return f.GetByID(ctx, id)
}

func (f *plantRepoFake) List(_ context.Context) ([]*entity.Plant, error) {
	var out []*entity.Plant
	for _, p := range f.plants {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *plantRepoFake) AdjustQuantity(_ context.Context, id string, delta int) (int, error) {
	p, ok := f.plants[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	p.Quantity += delta
	return p.Quantity, nil
}

func (f *plantRepoFake) seed(quantity int) string {
	id := uuid.New().String()
	f.plants[id] = &entity.Plant{
		ID: id, Name: "Monstera", Price: decimal.NewFromInt(15), Quantity: quantity,
		SellerEmail: "shop@plantnet.io",
	}
	return id
}

func TestPlantCreate_OwnedByCredentialEmail(t *testing.T) {
	repo := newPlantRepoFake()
	uc := usecase.NewPlantUseCase(repo)

	out, err := uc.Create(context.Background(), "shop@plantnet.io", dto.CreatePlantRequest{
		Name:     "Ficus",
		Price:    decimal.NewFromFloat(12.50),
		Quantity: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "shop@plantnet.io", out.SellerEmail)
	assert.Equal(t, 3, out.Quantity)
	assert.NotEmpty(t, out.ID)
}

func TestPlantCreate_Validation(t *testing.T) {
	uc := usecase.NewPlantUseCase(newPlantRepoFake())
	ctx := context.Background()

	_, err := uc.Create(ctx, "shop@plantnet.io", dto.CreatePlantRequest{Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "name is required")

	_, err = uc.Create(ctx, "shop@plantnet.io", dto.CreatePlantRequest{Name: "x", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "negative price rejected")
}

// Given quantity Q: increase of D yields Q+D, decrease of D yields Q-D,
// D=0 is a no-op, and a decrease below zero is NOT clamped.
func TestUpdateQuantity_SignedDelta(t *testing.T) {
	repo := newPlantRepoFake()
	uc := usecase.NewPlantUseCase(repo)
	ctx := context.Background()
	id := repo.seed(10)

	out, err := uc.UpdateQuantity(ctx, id, dto.UpdateQuantityRequest{Quantity: 4, Status: dto.QuantityIncrease})
	require.NoError(t, err)
	assert.Equal(t, 14, out.Quantity)

	out, err = uc.UpdateQuantity(ctx, id, dto.UpdateQuantityRequest{Quantity: 6, Status: dto.QuantityDecrease})
	require.NoError(t, err)
	assert.Equal(t, 8, out.Quantity)

	out, err = uc.UpdateQuantity(ctx, id, dto.UpdateQuantityRequest{Quantity: 0, Status: dto.QuantityIncrease})
	require.NoError(t, err)
	assert.Equal(t, 8, out.Quantity, "a zero delta is a no-op")

	out, err = uc.UpdateQuantity(ctx, id, dto.UpdateQuantityRequest{Quantity: 20, Status: dto.QuantityDecrease})
	require.NoError(t, err)
	assert.Equal(t, -12, out.Quantity, "the counter is not clamped at zero")
}

func TestUpdateQuantity_InvalidTag(t *testing.T) {
	repo := newPlantRepoFake()
	uc := usecase.NewPlantUseCase(repo)
	id := repo.seed(10)

	_, err := uc.UpdateQuantity(context.Background(), id, dto.UpdateQuantityRequest{Quantity: 1, Status: "reset"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 10, repo.plants[id].Quantity, "an invalid tag must not mutate the counter")
}

func TestUpdateQuantity_UnknownPlant(t *testing.T) {
	uc := usecase.NewPlantUseCase(newPlantRepoFake())

	_, err := uc.UpdateQuantity(context.Background(), uuid.New().String(),
		dto.UpdateQuantityRequest{Quantity: 1, Status: dto.QuantityIncrease})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlantGetByID_NilWhenAbsent(t *testing.T) {
	uc := usecase.NewPlantUseCase(newPlantRepoFake())

	out, err := uc.GetByID(context.Background(), uuid.New().String())
	require.NoError(t, err)
	assert.Nil(t, out)
}
