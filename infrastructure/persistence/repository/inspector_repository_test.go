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

func TestInspectorRepository_SaveAndFindByID(t *testing.T) {
	ctx := context.Background()
	repo := NewInspectorRepository(table.NewMemoryStore(), zap.NewNop())

	ins := model.NewInspector("INS001")
	ins.Name = "Maria Santos"
	ins.VehicleTagID = "VT-42"
	ins.Password = "$2a$10$abcdefghijklmnopqrstuv"
	require.NoError(t, repo.Save(ctx, ins))

	got, err := repo.FindByID(ctx, "INS001")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Maria Santos", got.Name)
	assert.Equal(t, "VT-42", got.VehicleTagID)
	assert.True(t, got.Active)
	assert.Equal(t, "$2a$10$abcdefghijklmnopqrstuv", got.Password)
}

func TestInspectorRepository_FindByID_AbsentReturnsNil(t *testing.T) {
	ctx := context.Background()
	repo := NewInspectorRepository(table.NewMemoryStore(), zap.NewNop())

	got, err := repo.FindByID(ctx, "INS999")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInspectorRepository_FindAll_SortedByID(t *testing.T) {
	ctx := context.Background()
	store := table.NewMemoryStore()
	repo := NewInspectorRepository(store, zap.NewNop())

	for _, id := range []string{"INS003", "INS001", "INS002"} {
		ins := model.NewInspector(id)
		ins.Name = "Inspector " + id
		require.NoError(t, repo.Save(ctx, ins))
	}

	// Inspections share the GSI1 index but not the INSPECTORS partition.
	inspRepo := NewInspectionRepository(store, zap.NewNop())
	require.NoError(t, inspRepo.Save(ctx, newTestInspection("3184948", "901-A12", model.StatusNew, "2025-05-02")))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "INS001", all[0].InspectorID)
	assert.Equal(t, "INS002", all[1].InspectorID)
	assert.Equal(t, "INS003", all[2].InspectorID)
}

func TestInspectorRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewInspectorRepository(table.NewMemoryStore(), zap.NewNop())

	require.NoError(t, repo.Save(ctx, model.NewInspector("INS001")))
	require.NoError(t, repo.Delete(ctx, "INS001"))

	got, err := repo.FindByID(ctx, "INS001")
	require.NoError(t, err)
	assert.Nil(t, got)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
