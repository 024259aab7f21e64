package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/stride-backend/internal/domain"
)

// SignUp creates an unverified user together with an email verification code,
// mails the code and returns an access token.
// Returns ErrAlreadyExists if the email is already registered.
func (s *Service) SignUp(ctx context.Context, input SignUpInput) (*AuthResult, error) {
	input.normalize()

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.SignUp hash password: %w", err)
	}

	// Step 3: Create user + code in a transaction.
	// Email uniqueness is enforced by a DB constraint.
	var (
		created *domain.User
		code    string
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.now()
		user, err := s.users.Create(txCtx, &domain.User{
			ID:           uuid.New(),
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			Email:        input.Email,
			PasswordHash: string(hash),
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		otp, err := s.newOtp(user.ID)
		if err != nil {
			return err
		}
		if err := s.otps.Replace(txCtx, otp); err != nil {
			return fmt.Errorf("store otp: %w", err)
		}

		created = user
		code = otp.Code
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.SignUp: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.SignUp: %w", err)
	}

	// Step 4: Deliver the code
	s.deliver(ctx, created, code)

	// Step 5: Issue token
	result, err := s.issueToken(created)
	if err != nil {
		return nil, fmt.Errorf("auth.SignUp issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user signed up",
		slog.String("user_id", created.ID.String()))

	return result, nil
}
