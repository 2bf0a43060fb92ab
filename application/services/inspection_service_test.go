package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Pratham-mehta/pha-inspection-system/domain/model"
	"github.com/Pratham-mehta/pha-inspection-system/infrastructure/persistence/repository"
	"github.com/Pratham-mehta/pha-inspection-system/infrastructure/persistence/table"
	apperrors "github.com/Pratham-mehta/pha-inspection-system/pkg/errors"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }

func newInspectionFixture(t *testing.T) (*InspectionService, *repository.InspectionRepository) {
	t.Helper()
	store := table.NewMemoryStore()
	repo := repository.NewInspectionRepository(store, zap.NewNop())
	return NewInspectionService(repo, zap.NewNop()), repo
}

func TestInspectionService_Create_Defaults(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInspectionFixture(t)

	insp, err := svc.Create(ctx, &CreateInspectionRequest{
		UnitNumber:  "901-A12",
		InspectorID: "INS001",
	})
	require.NoError(t, err)

	assert.Equal(t, "3184948", insp.SONumber)
	assert.Equal(t, model.StatusNew, insp.Status)
	assert.True(t, insp.TenantAvailability)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), insp.StartDate)
	assert.NotEmpty(t, insp.CreatedAt)
}

func TestInspectionService_Create_SequentialSONumbers(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInspectionFixture(t)

	first, err := svc.Create(ctx, &CreateInspectionRequest{UnitNumber: "901-A12", InspectorID: "INS001"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, &CreateInspectionRequest{UnitNumber: "901-B03", InspectorID: "INS001"})
	require.NoError(t, err)

	assert.Equal(t, "3184948", first.SONumber)
	assert.Equal(t, "3184949", second.SONumber)
}

func TestInspectionService_Create_RequiredFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInspectionFixture(t)

	_, err := svc.Create(ctx, &CreateInspectionRequest{InspectorID: "INS001"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Create(ctx, &CreateInspectionRequest{UnitNumber: "901-A12"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestInspectionService_Create_RejectsMalformedStartDate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInspectionFixture(t)

	_, err := svc.Create(ctx, &CreateInspectionRequest{
		UnitNumber:  "901-A12",
		InspectorID: "INS001",
		StartDate:   "05/02/2025",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestInspectionService_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInspectionFixture(t)

	_, err := svc.Get(ctx, "9999999")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestInspectionService_Update_PatchesOnlySetFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInspectionFixture(t)

	created, err := svc.Create(ctx, &CreateInspectionRequest{
		UnitNumber:  "901-A12",
		InspectorID: "INS001",
		TenantName:  "J. Rivera",
		SiteCode:    "901",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.SONumber, &UpdateInspectionRequest{
		Status:              strPtr(model.StatusInProgress),
		SmokeDetectorsCount: intPtr(3),
		TenantAvailability:  boolPtr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusInProgress, updated.Status)
	assert.Equal(t, 3, updated.SmokeDetectorsCount)
	assert.False(t, updated.TenantAvailability)
	// Untouched fields keep their stored values.
	assert.Equal(t, "J. Rivera", updated.TenantName)
	assert.Equal(t, "901-A12", updated.UnitNumber)
}

func TestInspectionService_Update_StatusChangeMovesIndexPartition(t *testing.T) {
	ctx := context.Background()
	svc, repo := newInspectionFixture(t)

	created, err := svc.Create(ctx, &CreateInspectionRequest{UnitNumber: "901-A12", InspectorID: "INS001"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.SONumber, &UpdateInspectionRequest{Status: strPtr(model.StatusInProgress)})
	require.NoError(t, err)

	stale, err := repo.FindByStatus(ctx, model.StatusNew)
	require.NoError(t, err)
	assert.Empty(t, stale)

	current, err := repo.FindByStatus(ctx, model.StatusInProgress)
	require.NoError(t, err)
	assert.Len(t, current, 1)
}

func TestInspectionService_Update_InvalidStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInspectionFixture(t)

	created, err := svc.Create(ctx, &CreateInspectionRequest{UnitNumber: "901-A12", InspectorID: "INS001"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.SONumber, &UpdateInspectionRequest{Status: strPtr("Done")})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestInspectionService_Submit_StampsCompletion(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInspectionFixture(t)

	created, err := svc.Create(ctx, &CreateInspectionRequest{UnitNumber: "901-A12", InspectorID: "INS001"})
	require.NoError(t, err)

	submitted, err := svc.Submit(ctx, created.SONumber)
	require.NoError(t, err)

	assert.Equal(t, model.StatusClosed, submitted.Status)
	assert.NotEmpty(t, submitted.SubmitTime)
	assert.NotEmpty(t, submitted.CompletionDate)
	assert.NotEmpty(t, submitted.EndDate)
	assert.NotEmpty(t, submitted.EndTime)
}

func TestInspectionService_Submit_KeepsExplicitEndFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInspectionFixture(t)

	created, err := svc.Create(ctx, &CreateInspectionRequest{UnitNumber: "901-A12", InspectorID: "INS001"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.SONumber, &UpdateInspectionRequest{
		EndDate: strPtr("2025-05-02"),
		EndTime: strPtr("16:45:00"),
	})
	require.NoError(t, err)

	submitted, err := svc.Submit(ctx, created.SONumber)
	require.NoError(t, err)
	assert.Equal(t, "2025-05-02", submitted.EndDate)
	assert.Equal(t, "16:45:00", submitted.EndTime)
}

func TestInspectionService_List_StatusFilter(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInspectionFixture(t)

	created, err := svc.Create(ctx, &CreateInspectionRequest{UnitNumber: "901-A12", InspectorID: "INS001"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &CreateInspectionRequest{UnitNumber: "901-B03", InspectorID: "INS001"})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, created.SONumber)
	require.NoError(t, err)

	open, err := svc.List(ctx, ListInspectionsFilter{Status: model.StatusNew})
	require.NoError(t, err)
	assert.Len(t, open, 1)

	closed, err := svc.List(ctx, ListInspectionsFilter{Status: model.StatusClosed})
	require.NoError(t, err)
	assert.Len(t, closed, 1)

	_, err = svc.List(ctx, ListInspectionsFilter{Status: "Done"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestInspectionService_List_SiteCodeFilter(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInspectionFixture(t)

	_, err := svc.Create(ctx, &CreateInspectionRequest{UnitNumber: "901-A12", InspectorID: "INS001", SiteCode: "901"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &CreateInspectionRequest{UnitNumber: "801-B03", InspectorID: "INS001", SiteCode: "801"})
	require.NoError(t, err)

	got, err := svc.List(ctx, ListInspectionsFilter{SiteCode: "901"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "901", got[0].SiteCode)
}

func TestInspectionService_DeleteAndPurge(t *testing.T) {
	ctx := context.Background()
	svc, _ := newInspectionFixture(t)

	created, err := svc.Create(ctx, &CreateInspectionRequest{UnitNumber: "901-A12", InspectorID: "INS001"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.SONumber))
	err = svc.Delete(ctx, created.SONumber)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	_, err = svc.Purge(ctx, created.SONumber)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestInspectionService_Purge_CountsAllItems(t *testing.T) {
	ctx := context.Background()
	store := table.NewMemoryStore()
	logger := zap.NewNop()
	repo := repository.NewInspectionRepository(store, logger)
	responses := repository.NewResponseRepository(store, logger)
	svc := NewInspectionService(repo, logger)

	created, err := svc.Create(ctx, &CreateInspectionRequest{UnitNumber: "901-A12", InspectorID: "INS001"})
	require.NoError(t, err)
	require.NoError(t, responses.Save(ctx, model.NewInspectionResponse(created.SONumber, "SB001", model.ResponseOK)))

	n, err := svc.Purge(ctx, created.SONumber)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 0, store.Len())
}
