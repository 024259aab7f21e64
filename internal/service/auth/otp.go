package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/stride-backend/internal/domain"
	"github.com/heartmarshall/stride-backend/pkg/ctxutil"
)

// VerifyOTP checks the caller's email verification code and marks the email verified.
// A wrong or expired code returns ErrUnauthorized; an expired code is removed.
func (s *Service) VerifyOTP(ctx context.Context, input VerifyOTPInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	otp, err := s.otps.GetByUserAndCode(ctx, userID, domain.OtpPurposeEmailVerification, input.Code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.VerifyOTP get otp: %w", err)
	}

	if otp.IsExpired(s.now()) {
		if err := s.otps.Delete(ctx, otp.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("auth.VerifyOTP delete expired otp: %w", err)
		}
		return nil, domain.ErrUnauthorized
	}

	var user *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.MarkEmailVerified(txCtx, userID); err != nil {
			return fmt.Errorf("mark verified: %w", err)
		}
		if err := s.otps.Delete(txCtx, otp.ID); err != nil {
			return fmt.Errorf("delete otp: %w", err)
		}
		u, err := s.users.GetByID(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("auth.VerifyOTP: %w", err)
	}

	s.log.InfoContext(ctx, "email verified",
		slog.String("user_id", userID.String()))

	return user, nil
}

// ResendOTP replaces the caller's verification code and mails the new one.
// Requests closer together than the configured interval return ErrRateLimited.
func (s *Service) ResendOTP(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("auth.ResendOTP get user: %w", err)
	}
	if user.IsEmailVerified {
		return domain.NewValidationError("email", "already verified")
	}

	if !s.allowResend(userID) {
		return domain.ErrRateLimited
	}

	otp, err := s.newOtp(userID)
	if err != nil {
		return fmt.Errorf("auth.ResendOTP: %w", err)
	}
	if err := s.otps.Replace(ctx, otp); err != nil {
		return fmt.Errorf("auth.ResendOTP store otp: %w", err)
	}

	s.deliver(ctx, user, otp.Code)

	s.log.InfoContext(ctx, "otp resent",
		slog.String("user_id", userID.String()))

	return nil
}
