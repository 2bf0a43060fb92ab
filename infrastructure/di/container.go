// Package di assembles the object graph: storage driver selection,
// repositories, services and supporting infrastructure.
package di

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"

	"github.com/Pratham-mehta/pha-inspection-system/application/services"
	"github.com/Pratham-mehta/pha-inspection-system/infrastructure/config"
	"github.com/Pratham-mehta/pha-inspection-system/infrastructure/persistence/repository"
	"github.com/Pratham-mehta/pha-inspection-system/infrastructure/persistence/table"
	"github.com/Pratham-mehta/pha-inspection-system/interfaces/http/rest"
	"github.com/Pratham-mehta/pha-inspection-system/pkg/auth"
	"github.com/Pratham-mehta/pha-inspection-system/pkg/blob"
)

// Container holds the assembled application.
type Container struct {
	Config   *config.Config
	Logger   *zap.Logger
	Store    table.Store
	JWT      *auth.JWTService
	Services rest.Services
}

// InitializeContainer builds the full object graph and runs the startup
// seeding (catalog defaults, bootstrap inspector).
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	store, err := newStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		// Validate() rejects this in production; development gets a fixed
		// secret so local tokens survive restarts.
		jwtSecret = "development-secret-change-in-production"
	}
	jwtService, err := auth.NewJWTService(auth.JWTConfig{
		Secret: jwtSecret,
		Issuer: cfg.JWTIssuer,
		TTL:    cfg.JWTTTL,
	})
	if err != nil {
		return nil, err
	}
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)

	inspectionRepo := repository.NewInspectionRepository(store, logger)
	inspectorRepo := repository.NewInspectorRepository(store, logger)
	responseRepo := repository.NewResponseRepository(store, logger)
	pmiRepo := repository.NewPMIResponseRepository(store, logger)
	imageRepo := repository.NewImageRepository(store, logger)
	signatureRepo := repository.NewSignatureRepository(store, logger)
	catalogRepo := repository.NewCatalogRepository(store, logger)

	blobStore := blob.NewMockStore("")

	authService := services.NewAuthService(inspectorRepo, jwtService, hasher, logger)
	inspectionService := services.NewInspectionService(inspectionRepo, logger)
	responseService := services.NewResponseService(responseRepo, inspectionRepo, logger)
	pmiService := services.NewPMIResponseService(pmiRepo, inspectionRepo, logger)
	imageService := services.NewImageService(imageRepo, inspectionRepo, blobStore, logger)
	signatureService := services.NewSignatureService(signatureRepo, inspectionRepo, blobStore, logger)
	catalogService := services.NewCatalogService(catalogRepo, logger)
	dashboardService := services.NewDashboardService(inspectionRepo, services.DashboardConfig{
		FailFast: cfg.DashboardFailFast,
	}, logger)

	if err := catalogService.EnsureDefaults(ctx); err != nil {
		return nil, fmt.Errorf("failed to seed catalog: %w", err)
	}
	if err := seedBootstrapInspector(ctx, cfg, authService, logger); err != nil {
		return nil, err
	}

	return &Container{
		Config: cfg,
		Logger: logger,
		Store:  store,
		JWT:    jwtService,
		Services: rest.Services{
			Auth:        authService,
			Inspections: inspectionService,
			Responses:   responseService,
			PMI:         pmiService,
			Images:      imageService,
			Signatures:  signatureService,
			Catalog:     catalogService,
			Dashboard:   dashboardService,
		},
	}, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (table.Store, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		logger.Warn("using in-memory storage; data is lost on restart")
		return table.NewMemoryStore(), nil
	case config.StorageDynamoDB:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
		}
		client := dynamodb.NewFromConfig(awsCfg)
		return table.NewDynamoStore(client, table.DefaultDynamoStoreConfig(cfg.TableName), logger), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// seedBootstrapInspector creates the initial admin inspector when enabled
// and absent, so a fresh environment has one login to start from.
func seedBootstrapInspector(ctx context.Context, cfg *config.Config, authService *services.AuthService, logger *zap.Logger) error {
	if !cfg.SeedInspectors || cfg.AdminPassword == "" {
		return nil
	}

	existing, err := authService.ListInspectors(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	_, err = authService.CreateInspector(ctx, &services.CreateInspectorRequest{
		InspectorID: "INS001",
		Name:        "Administrator",
		Password:    cfg.AdminPassword,
	})
	if err != nil {
		return fmt.Errorf("failed to seed bootstrap inspector: %w", err)
	}
	logger.Info("bootstrap inspector seeded", zap.String("inspectorId", "INS001"))
	return nil
}
