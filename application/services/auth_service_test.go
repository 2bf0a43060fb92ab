package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Pratham-mehta/pha-inspection-system/infrastructure/persistence/repository"
	"github.com/Pratham-mehta/pha-inspection-system/infrastructure/persistence/table"
	"github.com/Pratham-mehta/pha-inspection-system/pkg/auth"
	apperrors "github.com/Pratham-mehta/pha-inspection-system/pkg/errors"
)

func newAuthFixture(t *testing.T) (*AuthService, *repository.InspectorRepository) {
	t.Helper()
	store := table.NewMemoryStore()
	logger := zap.NewNop()
	inspectors := repository.NewInspectorRepository(store, logger)

	jwtService, err := auth.NewJWTService(auth.JWTConfig{
		Secret: "test-secret-for-unit-tests",
		Issuer: "pha-inspection-system",
		TTL:    time.Hour,
	})
	require.NoError(t, err)

	hasher := auth.NewPasswordHasher(4) // minimum cost keeps the tests fast
	return NewAuthService(inspectors, jwtService, hasher, logger), inspectors
}

func createInspector(t *testing.T, svc *AuthService, id, password string) {
	t.Helper()
	_, err := svc.CreateInspector(context.Background(), &CreateInspectorRequest{
		InspectorID: id,
		Name:        "Inspector " + id,
		Password:    password,
	})
	require.NoError(t, err)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture(t)
	createInspector(t, svc, "INS001", "correct-horse-battery")

	result, err := svc.Login(ctx, &LoginRequest{InspectorID: "INS001", Password: "correct-horse-battery"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, 3600, result.ExpiresIn)
	assert.Equal(t, "INS001", result.Inspector.InspectorID)
}

// Unknown id, wrong password and deactivated account map to one
// indistinguishable unauthorized error.
func TestAuthService_Login_UniformRejection(t *testing.T) {
	ctx := context.Background()
	svc, inspectors := newAuthFixture(t)
	createInspector(t, svc, "INS001", "correct-horse-battery")

	resWrong, errWrong := svc.Login(ctx, &LoginRequest{InspectorID: "INS001", Password: "wrong"})
	resUnknown, errUnknown := svc.Login(ctx, &LoginRequest{InspectorID: "INS999", Password: "whatever"})

	ins, err := inspectors.FindByID(ctx, "INS001")
	require.NoError(t, err)
	ins.Active = false
	require.NoError(t, inspectors.Save(ctx, ins))
	resInactive, errInactive := svc.Login(ctx, &LoginRequest{InspectorID: "INS001", Password: "correct-horse-battery"})

	for _, tc := range []struct {
		name   string
		result *LoginResult
		err    error
	}{
		{"wrong password", resWrong, errWrong},
		{"unknown id", resUnknown, errUnknown},
		{"deactivated", resInactive, errInactive},
	} {
		assert.Nil(t, tc.result, tc.name)
		require.Error(t, tc.err, tc.name)
		assert.True(t, apperrors.IsUnauthorized(tc.err), tc.name)
		assert.Equal(t, errWrong.Error(), tc.err.Error(), tc.name)
	}
}

func TestAuthService_Login_RequiresCredentials(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(ctx, &LoginRequest{InspectorID: "INS001"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestAuthService_CreateInspector(t *testing.T) {
	ctx := context.Background()
	svc, inspectors := newAuthFixture(t)

	ins, err := svc.CreateInspector(ctx, &CreateInspectorRequest{
		InspectorID:  "INS001",
		Name:         "Maria Santos",
		Password:     "correct-horse-battery",
		VehicleTagID: "VT-42",
	})
	require.NoError(t, err)
	assert.True(t, ins.Active)

	stored, err := inspectors.FindByID(ctx, "INS001")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct-horse-battery", stored.Password)
	assert.NotEmpty(t, stored.Password)
}

func TestAuthService_CreateInspector_DuplicateIsConflict(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture(t)
	createInspector(t, svc, "INS001", "correct-horse-battery")

	_, err := svc.CreateInspector(ctx, &CreateInspectorRequest{
		InspectorID: "INS001",
		Name:        "Someone Else",
		Password:    "another-password",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestAuthService_CreateInspector_ShortPasswordRejected(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture(t)

	_, err := svc.CreateInspector(ctx, &CreateInspectorRequest{
		InspectorID: "INS001",
		Name:        "Maria Santos",
		Password:    "short",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestAuthService_GetInspector_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture(t)

	_, err := svc.GetInspector(ctx, "INS999")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
