package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/WebArtifcatsind/my-project-backend/internal/auth"
	"github.com/WebArtifcatsind/my-project-backend/internal/config"
	"github.com/WebArtifcatsind/my-project-backend/internal/domain"
	"github.com/WebArtifcatsind/my-project-backend/internal/mail"
	"github.com/WebArtifcatsind/my-project-backend/internal/repository"
	apperrors "github.com/WebArtifcatsind/my-project-backend/pkg/util"
)

// AuthService coordinates registration, login and the OTP reset flow.
type AuthService struct {
	users      repository.UserRepository
	mailer     mail.Mailer
	tokenMgr   *auth.TokenManager
	bcryptCost int
	otpTTL     time.Duration
	logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository, mailer mail.Mailer, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:      users,
		mailer:     mailer,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
		otpTTL:     cfg.Auth.OTPTTL(),
		logger:     logger,
	}
}

// RegisterInput carries an admin-initiated account creation.
type RegisterInput struct {
	Name          string
	Email         string
	Password      string
	Role          domain.Role
	RequesterRole domain.Role
}

// Register creates an account. Only admin requesters may register users.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if input.RequesterRole != domain.RoleAdmin {
		return nil, apperrors.NewForbidden("access denied")
	}
	if input.Role != domain.RoleAdmin && input.Role != domain.RoleStaff {
		return nil, apperrors.NewValidationError("role must be admin or staff", nil)
	}

	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.NewConflict("user already exists", map[string]any{"email": input.Email})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// Login authenticates a user and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid email or password")
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	return user, token, exp, nil
}

// ForgotPassword issues a six digit OTP, stores it with its expiry on the
// user row and emails it. The OTP only reaches the owner of the mailbox.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	otp, err := generateOTP()
	if err != nil {
		return apperrors.MapError(err)
	}
	expiry := time.Now().Add(s.otpTTL)

	affected, err := s.users.SetOTP(ctx, email, otp, expiry)
	if err != nil {
		return apperrors.MapError(err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundMessage("user not found")
	}

	body := fmt.Sprintf("Your OTP is %s. It will expire in %d minutes.", otp, int(s.otpTTL.Minutes()))
	if err := s.mailer.Send(email, "OTP for Password Reset", body); err != nil {
		return apperrors.NewDependencyError("mail service", err)
	}

	s.logger.Info("password reset OTP issued", zap.String("email", email))
	return nil
}

// VerifyOTP checks the code without consuming it.
func (s *AuthService) VerifyOTP(ctx context.Context, email, otp string) error {
	if _, err := s.users.GetByEmailAndValidOTP(ctx, email, otp); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewValidationError("invalid or expired OTP", nil)
		}
		return apperrors.MapError(err)
	}
	return nil
}

// ResetPassword verifies the OTP, replaces the hash and clears the OTP fields.
func (s *AuthService) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	if _, err := s.users.GetByEmailAndValidOTP(ctx, email, otp); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewValidationError("invalid or expired OTP", nil)
		}
		return apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.MapError(err)
	}

	affected, err := s.users.ResetPassword(ctx, email, hash)
	if err != nil {
		return apperrors.MapError(err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundMessage("user not found")
	}
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
