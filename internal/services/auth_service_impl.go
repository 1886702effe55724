package services

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/spacos/spac-os-api/internal/auth"
	apperrors "github.com/spacos/spac-os-api/internal/errors"
	"github.com/spacos/spac-os-api/internal/models"
	"github.com/spacos/spac-os-api/internal/repository"
	"github.com/spacos/spac-os-api/pkg/config"
)

type authService struct {
	repos *repository.Repositories
	jwt   *auth.JWTService
}

func newAuthService(repos *repository.Repositories, cfg *config.Config) *authService {
	return &authService{
		repos: repos,
		jwt:   auth.NewJWTService(cfg.JWTSecret),
	}
}

func (s *authService) Login(email, password string) (*models.LoginResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repos.User.GetByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Same answer as a bad password so login probes learn nothing
			return nil, apperrors.Unauthorized("invalid credentials", nil)
		}
		return nil, apperrors.DatabaseError("failed to get user", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, apperrors.Unauthorized("invalid credentials", nil)
	}

	return s.issueTokens(user)
}

func (s *authService) Register(req *models.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.repos.User.GetByEmail(email); err == nil {
		return nil, apperrors.Conflict("email already registered", nil)
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.DatabaseError("failed to check email", err)
	}

	role := req.Role
	if role == "" {
		role = string(models.RoleAnalyst)
	}
	if role != string(models.RoleAnalyst) && role != string(models.RoleAdmin) {
		return nil, apperrors.ValidationError("unknown role "+role, nil)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError("failed to hash password", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.repos.User.Create(user); err != nil {
		return nil, apperrors.DatabaseError("failed to create user", err)
	}
	return user, nil
}

func (s *authService) ValidateToken(token string) (*models.User, error) {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid token", err)
	}

	user, err := s.repos.User.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Unauthorized("user no longer exists", err)
		}
		return nil, apperrors.DatabaseError("failed to get user", err)
	}
	return user, nil
}

func (s *authService) RefreshToken(token string) (*models.LoginResponse, error) {
	claims, err := s.jwt.ValidateRefreshToken(token)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid refresh token", err)
	}

	user, err := s.repos.User.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Unauthorized("user no longer exists", err)
		}
		return nil, apperrors.DatabaseError("failed to get user", err)
	}

	return s.issueTokens(user)
}

func (s *authService) issueTokens(user *models.User) (*models.LoginResponse, error) {
	claims := auth.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}

	token, expiresAt, err := s.jwt.GenerateToken(claims)
	if err != nil {
		return nil, apperrors.InternalError("failed to generate token", err)
	}
	refresh, _, err := s.jwt.GenerateRefreshToken(claims)
	if err != nil {
		return nil, apperrors.InternalError("failed to generate refresh token", err)
	}

	return &models.LoginResponse{
		Token:        token,
		RefreshToken: refresh,
		User:         *user,
		ExpiresAt:    expiresAt,
	}, nil
}
