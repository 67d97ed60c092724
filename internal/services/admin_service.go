package services

import (
	"context"
	"errors"
	"fmt"

	"beautytime/internal/common"
	"beautytime/internal/models"
	"beautytime/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

type AdminService struct {
	repo   repository.AdminRepository
	auth   *AuthService
	logger zerolog.Logger
}

func NewAdminService(repo repository.AdminRepository, auth *AuthService, logger zerolog.Logger) *AdminService {
	return &AdminService{
		repo:   repo,
		auth:   auth,
		logger: logger,
	}
}

func (s *AdminService) Register(ctx context.Context, req *models.RegisterRequest) (*models.Admin, string, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, "", fmt.Errorf("%w: username, email, password, and name are required", common.ErrInvalidInput)
	}
	if len(req.Password) < 6 {
		return nil, "", fmt.Errorf("%w: password must be at least 6 characters", common.ErrInvalidInput)
	}

	exists, err := s.repo.ExistsByEmailOrUsername(ctx, req.Email, req.Username)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error checking existing admin")
		return nil, "", err
	}
	if exists {
		return nil, "", fmt.Errorf("%w: admin with this email or username", common.ErrConflict)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error hashing password")
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	admin, err := s.repo.Insert(ctx, &models.Admin{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Name:         req.Name,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("Error creating admin")
		return nil, "", err
	}

	token, err := s.auth.GenerateToken(admin.ID.Hex())
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("admin_id", admin.ID.Hex()).Str("email", admin.Email).Msg("Admin registered successfully")
	return admin, token, nil
}

func (s *AdminService) Login(ctx context.Context, req *models.LoginRequest) (*models.Admin, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", common.ErrInvalidInput)
	}

	admin, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", common.ErrUnauthorized
		}
		s.logger.Error().Err(err).Msg("Error querying admin")
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn().Str("email", req.Email).Msg("Failed authentication attempt")
		return nil, "", common.ErrUnauthorized
	}

	if err := s.repo.UpdateLastLogin(ctx, admin.ID.Hex()); err != nil {
		s.logger.Error().Err(err).Msg("Error updating last login")
		return nil, "", err
	}

	token, err := s.auth.GenerateToken(admin.ID.Hex())
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("admin_id", admin.ID.Hex()).Str("email", admin.Email).Msg("Admin authenticated successfully")
	return admin, token, nil
}

func (s *AdminService) GetProfile(ctx context.Context, adminID string) (*models.Admin, error) {
	return s.repo.FindByID(ctx, adminID)
}

func (s *AdminService) UpdateProfile(ctx context.Context, adminID string, req *models.UpdateProfileRequest) (*models.Admin, error) {
	if req.Email != nil && *req.Email == "" {
		return nil, fmt.Errorf("%w: email cannot be empty", common.ErrInvalidInput)
	}
	if req.Username != nil && *req.Username == "" {
		return nil, fmt.Errorf("%w: username cannot be empty", common.ErrInvalidInput)
	}

	admin, err := s.repo.UpdateProfile(ctx, adminID, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("admin_id", adminID).Msg("Admin profile updated")
	return admin, nil
}
