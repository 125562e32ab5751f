package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gramin-udyami-api/internal/application/dto"
	"github.com/jhoicas/gramin-udyami-api/internal/application/usecase"
	"github.com/jhoicas/gramin-udyami-api/internal/domain"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/entity"
	"github.com/jhoicas/gramin-udyami-api/internal/infrastructure/memory"
)

func newBusinessUC(t *testing.T) (*usecase.BusinessUseCase, *memory.Store, *fakeExporter) {
	t.Helper()
	store := memory.NewStore()
	exp := &fakeExporter{}
	return usecase.NewBusinessUseCase(store.Businesses(), store.Profiles(), tagStripper{}, exp), store, exp
}

func createReq(name string) dto.CreateBusinessRequest {
	return dto.CreateBusinessRequest{
		BusinessName: name,
		Category:     entity.CategoryDairy,
		Description:  "Leche fresca",
		Location:     dto.LocationDTO{Village: "Wai", District: "Satara", State: "Maharashtra"},
		Investment:   dto.InvestmentDTO{Required: decimal.NewFromInt(50000)},
		Products:     []dto.BusinessProductDTO{{Name: "Milk", Price: decimal.RequireFromString("55.50"), Unit: "litre"}},
	}
}

func TestBusiness_CreateDefaultsYOwner(t *testing.T) {
	ctx := context.Background()
	uc, store, _ := newBusinessUC(t)
	require.NoError(t, store.Profiles().Upsert(ctx, &entity.Profile{UserID: "asha", Name: "Asha", District: "Satara"}))

	out, err := uc.Create(ctx, "asha", createReq("<b>Asha Dairy</b>"))
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Asha Dairy", out.BusinessName)
	assert.Equal(t, entity.BusinessStatusPlanning, out.Status)
	assert.Equal(t, 1, out.Employees)
	assert.Equal(t, dto.OwnerSummary{UserID: "asha", Name: "Asha", District: "Satara"}, out.Owner)
	assert.True(t, decimal.RequireFromString("55.5").Equal(out.Products[0].Price))
	assert.Equal(t, []string{}, out.Images)
}

func TestBusiness_CreateCategoriaInvalida(t *testing.T) {
	uc, _, _ := newBusinessUC(t)
	in := createReq("X")
	in.Category = "Mining"
	_, err := uc.Create(context.Background(), "asha", in)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "category")
}

func TestBusiness_UpdateReglasDePropiedad(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newBusinessUC(t)
	created, err := uc.Create(ctx, "asha", createReq("Asha Dairy"))
	require.NoError(t, err)

	name := "Otro"
	_, err = uc.Update(ctx, "ravi", entity.RoleUser, created.ID, dto.UpdateBusinessRequest{BusinessName: &name})
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	_, err = uc.Update(ctx, "asha", entity.RoleUser, "no-existe", dto.UpdateBusinessRequest{BusinessName: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	status := entity.BusinessStatusActive
	out, err := uc.Update(ctx, "asha", entity.RoleUser, created.ID, dto.UpdateBusinessRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, entity.BusinessStatusActive, out.Status)
	assert.Equal(t, "Asha Dairy", out.BusinessName)
	assert.False(t, out.UpdatedAt.Before(created.UpdatedAt))

	out, err = uc.Update(ctx, "root", entity.RoleAdmin, created.ID, dto.UpdateBusinessRequest{BusinessName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Otro", out.BusinessName)
}

func TestBusiness_Delete(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newBusinessUC(t)
	created, err := uc.Create(ctx, "asha", createReq("Asha Dairy"))
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Delete(ctx, "ravi", entity.RoleUser, created.ID), domain.ErrNotOwner)
	require.NoError(t, uc.Delete(ctx, "asha", entity.RoleUser, created.ID))
	assert.ErrorIs(t, uc.Delete(ctx, "asha", entity.RoleUser, created.ID), domain.ErrNotFound)

	got, err := uc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBusiness_ListFiltrosYMine(t *testing.T) {
	ctx := context.Background()
	uc, _, exp := newBusinessUC(t)
	_, err := uc.Create(ctx, "asha", createReq("Uno"))
	require.NoError(t, err)
	other := createReq("Dos")
	other.Category = entity.CategoryHandicrafts
	_, err = uc.Create(ctx, "ravi", other)
	require.NoError(t, err)

	all, err := uc.List(ctx, dto.BusinessFilterRequest{})
	require.NoError(t, err)
	assert.True(t, all.Success)
	assert.Equal(t, 2, all.Count)
	assert.Equal(t, 20, all.Page.Limit)

	dairy, err := uc.List(ctx, dto.BusinessFilterRequest{Category: entity.CategoryDairy})
	require.NoError(t, err)
	require.Equal(t, 1, dairy.Count)
	assert.Equal(t, "Uno", dairy.Data[0].BusinessName)

	mine, err := uc.ListMine(ctx, "ravi")
	require.NoError(t, err)
	require.Equal(t, 1, mine.Count)
	assert.Equal(t, "Dos", mine.Data[0].BusinessName)

	data, err := uc.Export(ctx, dto.BusinessFilterRequest{})
	require.NoError(t, err)
	assert.Equal(t, []byte("PK"), data)
	assert.Equal(t, 2, exp.rows)
}

func TestBusiness_MontosFueraDeRango(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newBusinessUC(t)

	cases := map[string]func(*dto.CreateBusinessRequest){
		"tres decimales": func(in *dto.CreateBusinessRequest) { in.Investment.Required = decimal.RequireFromString("100.005") },
		"billón":         func(in *dto.CreateBusinessRequest) { in.Investment.Raised = decimal.New(1, 12) },
		"precio":         func(in *dto.CreateBusinessRequest) { in.Products[0].Price = decimal.RequireFromString("0.001") },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := createReq("Asha Dairy")
			mutate(&in)
			_, err := uc.Create(ctx, "asha", in)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Len(t, verr.Fields, 1)
		})
	}

	in := createReq("Tope")
	in.Investment.Required = decimal.RequireFromString("999999999999.99")
	in.Investment.Raised = decimal.RequireFromString("10.500")
	out, err := uc.Create(ctx, "asha", in)
	require.NoError(t, err)
	assert.True(t, out.Investment.Required.Equal(decimal.RequireFromString("999999999999.99")))
}

func TestBusiness_Stats(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newBusinessUC(t)

	empty, err := uc.Stats(ctx, dto.BusinessFilterRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Total)
	assert.Equal(t, []dto.GroupCountDTO{}, empty.ByCategory)
	assert.True(t, empty.Investment.FundedPercent.IsZero())

	a := createReq("Asha Dairy")
	a.Investment = dto.InvestmentDTO{Required: decimal.NewFromInt(50000), Raised: decimal.NewFromInt(10000)}
	_, err = uc.Create(ctx, "asha", a)
	require.NoError(t, err)
	b := createReq("Ravi Textiles")
	b.Category = entity.CategoryTextile
	b.Location.District = "Pune"
	b.Investment = dto.InvestmentDTO{Required: decimal.NewFromInt(30000), Raised: decimal.NewFromInt(10000)}
	_, err = uc.Create(ctx, "ravi", b)
	require.NoError(t, err)
	c := createReq("Meera Dairy")
	c.Status = entity.BusinessStatusActive
	c.Investment = dto.InvestmentDTO{}
	_, err = uc.Create(ctx, "meera", c)
	require.NoError(t, err)

	out, err := uc.Stats(ctx, dto.BusinessFilterRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Total)
	assert.Equal(t, 3, out.Employees)
	assert.Equal(t, []dto.GroupCountDTO{{Key: entity.CategoryDairy, Count: 2}, {Key: entity.CategoryTextile, Count: 1}}, out.ByCategory)
	assert.Equal(t, []dto.GroupCountDTO{{Key: entity.BusinessStatusPlanning, Count: 2}, {Key: entity.BusinessStatusActive, Count: 1}}, out.ByStatus)
	assert.Equal(t, []dto.GroupCountDTO{{Key: "Satara", Count: 2}, {Key: "Pune", Count: 1}}, out.ByDistrict)
	assert.True(t, out.Investment.Required.Equal(decimal.NewFromInt(80000)), out.Investment.Required.String())
	assert.True(t, out.Investment.Raised.Equal(decimal.NewFromInt(20000)))
	assert.True(t, out.Investment.FundedPercent.Equal(decimal.NewFromInt(25)), out.Investment.FundedPercent.String())

	dairy, err := uc.Stats(ctx, dto.BusinessFilterRequest{Category: entity.CategoryDairy})
	require.NoError(t, err)
	assert.Equal(t, 2, dairy.Total)
	assert.Equal(t, []dto.GroupCountDTO{{Key: "Satara", Count: 2}}, dairy.ByDistrict)
}
