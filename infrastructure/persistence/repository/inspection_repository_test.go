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

func newTestInspection(soNumber, unitNumber, status, startDate string) *model.Inspection {
	insp := model.NewInspection(soNumber)
	insp.UnitNumber = unitNumber
	insp.SiteCode = "901"
	insp.Status = status
	insp.StartDate = startDate
	insp.InspectorID = "INS001"
	insp.DeriveKeys()
	return insp
}

func TestInspectionRepository_SaveAndFindBySONumber(t *testing.T) {
	ctx := context.Background()
	repo := NewInspectionRepository(table.NewMemoryStore(), zap.NewNop())

	insp := newTestInspection("3184948", "901-A12", model.StatusNew, "2025-05-02")
	insp.TenantName = "J. Rivera"
	insp.BRSize = 2
	require.NoError(t, repo.Save(ctx, insp))

	got, err := repo.FindBySONumber(ctx, "3184948")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "3184948", got.SONumber)
	assert.Equal(t, "901-A12", got.UnitNumber)
	assert.Equal(t, "J. Rivera", got.TenantName)
	assert.Equal(t, 2, got.BRSize)
	assert.Equal(t, model.StatusNew, got.Status)
}

func TestInspectionRepository_FindBySONumber_AbsentReturnsNil(t *testing.T) {
	ctx := context.Background()
	repo := NewInspectionRepository(table.NewMemoryStore(), zap.NewNop())

	got, err := repo.FindBySONumber(ctx, "9999999")
	require.NoError(t, err)
	assert.Nil(t, got)
}

// A status change must move the inspection between index partitions; the
// old status query cannot keep returning it.
func TestInspectionRepository_FindByStatus_TracksStatusChange(t *testing.T) {
	ctx := context.Background()
	repo := NewInspectionRepository(table.NewMemoryStore(), zap.NewNop())

	insp := newTestInspection("3184948", "901-A12", model.StatusNew, "2025-05-02")
	require.NoError(t, repo.Save(ctx, insp))

	fresh, err := repo.FindByStatus(ctx, model.StatusNew)
	require.NoError(t, err)
	require.Len(t, fresh, 1)

	insp.Status = model.StatusClosed
	require.NoError(t, repo.Save(ctx, insp))

	stale, err := repo.FindByStatus(ctx, model.StatusNew)
	require.NoError(t, err)
	assert.Empty(t, stale)

	closed, err := repo.FindByStatus(ctx, model.StatusClosed)
	require.NoError(t, err)
	require.Len(t, closed, 1)
	assert.Equal(t, "3184948", closed[0].SONumber)
}

func TestInspectionRepository_FindByUnit(t *testing.T) {
	ctx := context.Background()
	repo := NewInspectionRepository(table.NewMemoryStore(), zap.NewNop())

	require.NoError(t, repo.Save(ctx, newTestInspection("3184948", "901-A12", model.StatusClosed, "2024-11-01")))
	require.NoError(t, repo.Save(ctx, newTestInspection("3184949", "901-A12", model.StatusNew, "2025-05-02")))
	require.NoError(t, repo.Save(ctx, newTestInspection("3184950", "801-B03", model.StatusNew, "2025-05-02")))

	history, err := repo.FindByUnit(ctx, "901-A12")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "3184948", history[0].SONumber)
	assert.Equal(t, "3184949", history[1].SONumber)
}

func TestInspectionRepository_FindByInspectorID(t *testing.T) {
	ctx := context.Background()
	repo := NewInspectionRepository(table.NewMemoryStore(), zap.NewNop())

	a := newTestInspection("3184948", "901-A12", model.StatusNew, "2025-05-02")
	b := newTestInspection("3184949", "801-B03", model.StatusNew, "2025-04-01")
	b.InspectorID = "INS002"
	b.DeriveKeys()
	require.NoError(t, repo.Save(ctx, a))
	require.NoError(t, repo.Save(ctx, b))

	mine, err := repo.FindByInspectorID(ctx, "INS001")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "3184948", mine[0].SONumber)
}

func TestInspectionRepository_FindAll_SortsByStartDate(t *testing.T) {
	ctx := context.Background()
	store := table.NewMemoryStore()
	repo := NewInspectionRepository(store, zap.NewNop())

	require.NoError(t, repo.Save(ctx, newTestInspection("3184950", "901-C01", model.StatusNew, "2025-06-10")))
	require.NoError(t, repo.Save(ctx, newTestInspection("3184948", "901-A12", model.StatusNew, "2025-05-02")))
	require.NoError(t, repo.Save(ctx, newTestInspection("3184949", "901-B03", model.StatusNew, "2025-05-02")))

	// Child records in the same partitions must not surface as inspections.
	resp := model.NewInspectionResponse("3184948", "SB001", model.ResponseOK)
	item, err := table.MarshalItem(resp)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, item))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "3184948", all[0].SONumber)
	assert.Equal(t, "3184949", all[1].SONumber)
	assert.Equal(t, "3184950", all[2].SONumber)
}

func TestInspectionRepository_Delete_LeavesChildRecords(t *testing.T) {
	ctx := context.Background()
	store := table.NewMemoryStore()
	repo := NewInspectionRepository(store, zap.NewNop())
	responses := NewResponseRepository(store, zap.NewNop())

	require.NoError(t, repo.Save(ctx, newTestInspection("3184948", "901-A12", model.StatusNew, "2025-05-02")))
	require.NoError(t, responses.Save(ctx, model.NewInspectionResponse("3184948", "SB001", model.ResponseOK)))

	require.NoError(t, repo.Delete(ctx, "3184948"))
	require.NoError(t, repo.Delete(ctx, "3184948")) // absent is a no-op

	got, err := repo.FindBySONumber(ctx, "3184948")
	require.NoError(t, err)
	assert.Nil(t, got)

	orphans, err := responses.FindByInspection(ctx, "3184948")
	require.NoError(t, err)
	assert.Len(t, orphans, 1)
}

func TestInspectionRepository_Purge_RemovesWholePartition(t *testing.T) {
	ctx := context.Background()
	store := table.NewMemoryStore()
	repo := NewInspectionRepository(store, zap.NewNop())
	responses := NewResponseRepository(store, zap.NewNop())
	images := NewImageRepository(store, zap.NewNop())

	require.NoError(t, repo.Save(ctx, newTestInspection("3184948", "901-A12", model.StatusNew, "2025-05-02")))
	require.NoError(t, responses.Save(ctx, model.NewInspectionResponse("3184948", "SB001", model.ResponseOK)))
	require.NoError(t, responses.Save(ctx, model.NewInspectionResponse("3184948", "K001", model.ResponseNA)))
	img := model.NewInspectionImage("3184948", "IMG1A2B3C4D")
	require.NoError(t, images.Save(ctx, img))

	// Another inspection's partition must be untouched.
	require.NoError(t, repo.Save(ctx, newTestInspection("3184949", "801-B03", model.StatusNew, "2025-05-02")))

	n, err := repo.Purge(ctx, "3184948")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, 1, store.Len())

	// Purge is rerunnable; a second run finds nothing.
	n, err = repo.Purge(ctx, "3184948")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
