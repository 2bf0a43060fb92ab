package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Pratham-mehta/pha-inspection-system/domain/model"
	"github.com/Pratham-mehta/pha-inspection-system/infrastructure/persistence/repository"
	"github.com/Pratham-mehta/pha-inspection-system/pkg/auth"
	apperrors "github.com/Pratham-mehta/pha-inspection-system/pkg/errors"
	"github.com/Pratham-mehta/pha-inspection-system/pkg/utils"
)

// AuthService authenticates inspectors against the inspector records in the
// table and issues session tokens. The table is the only credential store;
// there is no parallel user directory to fall out of sync with.
type AuthService struct {
	inspectors *repository.InspectorRepository
	jwt        *auth.JWTService
	hasher     *auth.PasswordHasher
	logger     *zap.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(inspectors *repository.InspectorRepository, jwt *auth.JWTService, hasher *auth.PasswordHasher, logger *zap.Logger) *AuthService {
	return &AuthService{inspectors: inspectors, jwt: jwt, hasher: hasher, logger: logger}
}

// LoginRequest carries inspector credentials.
type LoginRequest struct {
	InspectorID string `json:"inspectorId" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

// LoginResult is the successful login payload.
type LoginResult struct {
	Token     string           `json:"token"`
	ExpiresIn int              `json:"expiresIn"` // seconds
	Inspector *model.Inspector `json:"inspector"`
}

// Login verifies credentials and issues a token. Unknown ids, wrong
// passwords and deactivated inspectors all yield the same unauthorized
// error; the response must not reveal which ids exist.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*LoginResult, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	inspector, err := s.inspectors.FindByID(ctx, req.InspectorID)
	if err != nil {
		return nil, err
	}
	if inspector == nil || !inspector.Active {
		s.logger.Warn("login rejected", zap.String("inspectorId", req.InspectorID))
		return nil, apperrors.NewUnauthorizedError("invalid credentials")
	}

	if err := s.hasher.Compare(inspector.Password, req.Password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			s.logger.Warn("login rejected", zap.String("inspectorId", req.InspectorID))
			return nil, apperrors.NewUnauthorizedError("invalid credentials")
		}
		return nil, apperrors.NewInternalError("credential check failed").WithCause(err)
	}

	token, err := s.jwt.GenerateToken(inspector.InspectorID, inspector.Name)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to issue token").WithCause(err)
	}

	s.logger.Info("inspector logged in", zap.String("inspectorId", inspector.InspectorID))
	return &LoginResult{
		Token:     token,
		ExpiresIn: int(s.jwt.TTL() / time.Second),
		Inspector: inspector,
	}, nil
}

// CreateInspectorRequest carries a new inspector's fields.
type CreateInspectorRequest struct {
	InspectorID  string `json:"inspectorId" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Password     string `json:"password" validate:"required,min=8"`
	VehicleTagID string `json:"vehicleTagId"`
}

// CreateInspector registers a new inspector with a hashed password. An
// existing id is a conflict, not an overwrite.
func (s *AuthService) CreateInspector(ctx context.Context, req *CreateInspectorRequest) (*model.Inspector, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	existing, err := s.inspectors.FindByID(ctx, req.InspectorID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("inspector " + req.InspectorID + " already exists")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to hash password").WithCause(err)
	}

	inspector := model.NewInspector(req.InspectorID)
	inspector.Name = req.Name
	inspector.VehicleTagID = req.VehicleTagID
	inspector.Password = hash

	if err := s.inspectors.Save(ctx, inspector); err != nil {
		return nil, err
	}

	s.logger.Info("inspector created", zap.String("inspectorId", inspector.InspectorID))
	return inspector, nil
}

// GetInspector returns one inspector by id.
func (s *AuthService) GetInspector(ctx context.Context, inspectorID string) (*model.Inspector, error) {
	inspector, err := s.inspectors.FindByID(ctx, inspectorID)
	if err != nil {
		return nil, err
	}
	if inspector == nil {
		return nil, apperrors.NewNotFoundError("inspector " + inspectorID)
	}
	return inspector, nil
}

// ListInspectors returns every inspector.
func (s *AuthService) ListInspectors(ctx context.Context) ([]*model.Inspector, error) {
	return s.inspectors.FindAll(ctx)
}
