package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"go.uber.org/zap"

	"studenthub-core/internal/domain/entity"
	"studenthub-core/internal/domain/repository"
	"studenthub-core/internal/metrics"
)

const (
	otpMin   = 1000
	otpRange = 9000 // codes are 1000..9999
)

var ErrInvalidOTP = fmt.Errorf("%w: invalid OTP", entity.ErrValidationFailed)

// AuthService runs the phone + OTP login flow.
type AuthService struct {
	otps    repository.OTPStore
	sender  repository.OTPSender
	users   repository.UserRepository
	ttl     time.Duration
	logger  *zap.Logger
	newCode func() (string, error)
}

func NewAuthService(otps repository.OTPStore, sender repository.OTPSender, users repository.UserRepository, ttl time.Duration, logger *zap.Logger) *AuthService {
	return &AuthService{
		otps:    otps,
		sender:  sender,
		users:   users,
		ttl:     ttl,
		logger:  logger.With(zap.String("component", "auth")),
		newCode: randomCode,
	}
}

// Login issues a fresh code for phone, replacing any earlier one.
func (a *AuthService) Login(ctx context.Context, phone string) error {
	if strings.TrimSpace(phone) == "" {
		return fmt.Errorf("%w: phone is required", entity.ErrValidationFailed)
	}

	code, err := a.newCode()
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}

	if err := a.otps.Put(ctx, phone, code, a.ttl); err != nil {
		metrics.OTPEvents.WithLabelValues("issue", "error").Inc()
		a.logger.Error("failed to store OTP", zap.String("phone", phone), zap.Error(err))
		return err
	}

	if err := a.sender.Send(ctx, phone, code); err != nil {
		metrics.OTPEvents.WithLabelValues("issue", "error").Inc()
		return err
	}

	metrics.OTPEvents.WithLabelValues("issue", "ok").Inc()
	return nil
}

// Verify checks otp against the live code for phone and marks the user verified.
// The code stays valid until it expires.
func (a *AuthService) Verify(ctx context.Context, phone, otp string, location *string) (*entity.User, error) {
	if strings.TrimSpace(phone) == "" || otp == "" {
		return nil, fmt.Errorf("%w: phone and otp are required", entity.ErrValidationFailed)
	}

	stored, ok, err := a.otps.Get(ctx, phone)
	if err != nil {
		a.logger.Error("failed to load OTP", zap.String("phone", phone), zap.Error(err))
		return nil, err
	}
	if !ok || stored != otp {
		metrics.OTPEvents.WithLabelValues("verify", "rejected").Inc()
		return nil, ErrInvalidOTP
	}

	user, err := a.users.UpsertVerified(ctx, phone, location)
	if err != nil {
		a.logger.Error("failed to save verified user", zap.String("phone", phone), zap.Error(err))
		return nil, err
	}

	metrics.OTPEvents.WithLabelValues("verify", "ok").Inc()
	return user, nil
}

func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpRange))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+otpMin), nil
}
