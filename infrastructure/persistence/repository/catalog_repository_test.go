package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Pratham-mehta/pha-inspection-system/domain/model"
	"github.com/Pratham-mehta/pha-inspection-system/infrastructure/persistence/table"
)

func TestCatalogRepository_AreasAndItems(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepository(table.NewMemoryStore(), zap.NewNop())

	kitchen := &model.InspectionArea{EntityType: "InspectionArea", AreaName: "Kitchen", SortOrder: 2, IsActive: true}
	bathroom := &model.InspectionArea{EntityType: "InspectionArea", AreaName: "Bathroom", SortOrder: 3, IsActive: true}
	require.NoError(t, repo.SaveArea(ctx, kitchen))
	require.NoError(t, repo.SaveArea(ctx, bathroom))

	require.NoError(t, repo.SaveItem(ctx, &model.InspectionItem{
		EntityType: "InspectionItem", ItemID: "K002", AreaName: "Kitchen",
		Description: "Check faucet", SortOrder: 2, IsActive: true,
	}))
	require.NoError(t, repo.SaveItem(ctx, &model.InspectionItem{
		EntityType: "InspectionItem", ItemID: "K001", AreaName: "Kitchen",
		Description: "Check sink", SortOrder: 1, IsActive: true,
	}))
	require.NoError(t, repo.SaveItem(ctx, &model.InspectionItem{
		EntityType: "InspectionItem", ItemID: "B001", AreaName: "Bathroom",
		Description: "Check toilet", SortOrder: 1, IsActive: true,
	}))

	areas, err := repo.FindAllAreas(ctx)
	require.NoError(t, err)
	require.Len(t, areas, 2)
	assert.Equal(t, "Kitchen", areas[0].AreaName)
	assert.Equal(t, "Bathroom", areas[1].AreaName)

	items, err := repo.FindItemsByArea(ctx, "Kitchen")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "K001", items[0].ItemID)
	assert.Equal(t, "K002", items[1].ItemID)

	area, err := repo.FindArea(ctx, "Kitchen")
	require.NoError(t, err)
	require.NotNil(t, area)
	assert.Equal(t, 2, area.SortOrder)

	absent, err := repo.FindArea(ctx, "Garage")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestCatalogRepository_PMICategoriesAndItems(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepository(table.NewMemoryStore(), zap.NewNop())

	require.NoError(t, repo.SavePMICategory(ctx, &model.PMICategory{
		EntityType: "PMICategory", CategoryID: "CAT002", Name: "Plumbing", SortOrder: 2, IsActive: true,
	}))
	require.NoError(t, repo.SavePMICategory(ctx, &model.PMICategory{
		EntityType: "PMICategory", CategoryID: "CAT001", Name: "HVAC", SortOrder: 1, IsActive: true,
	}))
	require.NoError(t, repo.SavePMIItem(ctx, &model.PMIItem{
		EntityType: "PMIItem", ItemID: "PMI001", CategoryID: "CAT001",
		Description: "Replace filter", SortOrder: 1, IsActive: true,
	}))

	cats, err := repo.FindAllPMICategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "CAT001", cats[0].CategoryID)
	assert.Equal(t, "CAT002", cats[1].CategoryID)

	items, err := repo.FindPMIItemsByCategory(ctx, "CAT001")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "PMI001", items[0].ItemID)

	cat, err := repo.FindPMICategory(ctx, "CAT001")
	require.NoError(t, err)
	require.NotNil(t, cat)
	assert.Equal(t, "HVAC", cat.Name)
}
