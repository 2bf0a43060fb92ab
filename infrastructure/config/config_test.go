package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Equal(t, "pha-inspections", cfg.TableName)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.True(t, cfg.DashboardFailFast)
	assert.True(t, cfg.EnableMetrics)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("STORAGE_DRIVER", "dynamodb")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("DASHBOARD_FAIL_FAST", "false")
	t.Setenv("BCRYPT_COST", "12")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, StorageDynamoDB, cfg.StorageDriver)
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.False(t, cfg.DashboardFailFast)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestLoad_UnknownStorageDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate_ProductionRequirements(t *testing.T) {
	base := func() *Config {
		return &Config{
			Environment:   "production",
			StorageDriver: StorageDynamoDB,
			TableName:     "pha-inspections",
			JWTSecret:     "a-real-secret",
		}
	}

	assert.NoError(t, base().Validate())

	noSecret := base()
	noSecret.JWTSecret = ""
	assert.Error(t, noSecret.Validate())

	memDriver := base()
	memDriver.StorageDriver = StorageMemory
	assert.Error(t, memDriver.Validate())

	noTable := base()
	noTable.TableName = ""
	assert.Error(t, noTable.Validate())
}
