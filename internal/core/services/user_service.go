package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lexfin/lexfin_backend/internal/apperrors"
	"github.com/lexfin/lexfin_backend/internal/core/domain"
	portsrepo "github.com/lexfin/lexfin_backend/internal/core/ports/repositories"
	portssvc "github.com/lexfin/lexfin_backend/internal/core/ports/services"
	"github.com/lexfin/lexfin_backend/internal/dto"
	"github.com/lexfin/lexfin_backend/internal/middleware"
	"github.com/lexfin/lexfin_backend/internal/utils"
	"github.com/google/uuid"
)

// UserService handles business logic related to users and credentials.
type UserService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &UserService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

// CreateUser creates a new user with a bcrypt-hashed password.
func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	newUserID := uuid.NewString()

	user := domain.User{
		UserID:       newUserID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("User creation rejected: email already registered", slog.String("email", req.Email))
			return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
		}
		logger.Error("Failed to save user in repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("User created successfully", slog.String("user_id", newUserID))
	return &user, nil
}

// CreateGoogleUser creates or links a user from a verified Google profile.
// An existing account with the same Google ID is returned as-is; an existing
// account with the same email gets the Google ID linked.
func (s *UserService) CreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.userRepo.FindUserByGoogleID(ctx, info.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to look up user by google ID", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to look up google user: %w", err)
	}

	byEmail, err := s.userRepo.FindUserByEmail(ctx, info.Email)
	if err == nil {
		googleID := info.ID
		byEmail.GoogleID = &googleID
		byEmail.LastUpdatedAt = time.Now().UTC()
		byEmail.LastUpdatedBy = byEmail.UserID
		if err := s.userRepo.UpdateUser(ctx, *byEmail); err != nil {
			logger.Error("Failed to link google ID to existing user", slog.String("error", err.Error()), slog.String("user_id", byEmail.UserID))
			return nil, fmt.Errorf("failed to link google account: %w", err)
		}
		logger.Info("Google account linked to existing user", slog.String("user_id", byEmail.UserID))
		return byEmail, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to look up user by email", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	now := time.Now().UTC()
	newUserID := uuid.NewString()
	googleID := info.ID

	user := domain.User{
		UserID:   newUserID,
		Name:     info.Name,
		Email:    info.Email,
		GoogleID: &googleID,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.Error("Failed to save google user in repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create google user: %w", err)
	}

	logger.Info("Google user created successfully", slog.String("user_id", newUserID))
	return &user, nil
}

// GetUserByID retrieves a user by ID.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find user by ID in repository", slog.String("error", err.Error()), slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find user by email in repository", slog.String("error", err.Error()))
		}
		return nil, err
	}
	return user, nil
}

// UpdateUser updates an existing user. Users can only update themselves.
func (s *UserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if userID != requestingUserID {
		logger.Warn("User update rejected: users can only update themselves", slog.String("user_id", userID), slog.String("requesting_user_id", requestingUserID))
		return nil, apperrors.ErrForbidden
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	user.LastUpdatedAt = time.Now().UTC()
	user.LastUpdatedBy = requestingUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		logger.Error("Failed to update user in repository", slog.String("error", err.Error()), slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update user %s: %w", userID, err)
	}

	return user, nil
}

// UpdateRefreshToken stores the hashed refresh token details for a user.
func (s *UserService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, refreshTokenExpiryTime); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to store refresh token", slog.String("error", err.Error()), slog.String("user_id", userID))
		return fmt.Errorf("failed to store refresh token for user %s: %w", userID, err)
	}
	return nil
}

// ClearRefreshToken clears the refresh token for a user (logout).
func (s *UserService) ClearRefreshToken(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to clear refresh token", slog.String("error", err.Error()), slog.String("user_id", userID))
		return fmt.Errorf("failed to clear refresh token for user %s: %w", userID, err)
	}
	return nil
}

// DeactivateUser marks a user as inactive. Users can only deactivate themselves.
func (s *UserService) DeactivateUser(ctx context.Context, userID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if userID != requestingUserID {
		logger.Warn("User deactivation rejected", slog.String("user_id", userID), slog.String("requesting_user_id", requestingUserID))
		return apperrors.ErrForbidden
	}

	if err := s.userRepo.DeactivateUser(ctx, userID, requestingUserID); err != nil {
		logger.Error("Failed to deactivate user in repository", slog.String("error", err.Error()), slog.String("user_id", userID))
		return fmt.Errorf("failed to deactivate user %s: %w", userID, err)
	}

	logger.Info("User deactivated", slog.String("user_id", userID))
	return nil
}

// AuthenticateUser verifies email/password credentials and returns the user.
// An unknown email and a wrong password both return ErrUnauthorized so the
// response does not reveal which one failed.
func (s *UserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		logger.Error("Failed to look up user for authentication", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	if !user.IsActive {
		logger.Warn("Authentication rejected: user is inactive", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrUnauthorized
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		logger.Warn("Authentication rejected: password mismatch", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}
