package auth

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/heartmarshall/stride-backend/internal/config"
	"github.com/heartmarshall/stride-backend/internal/domain"
)

//go:generate moq -out user_repo_mock_test.go -pkg auth . userRepo
//go:generate moq -out otp_repo_mock_test.go -pkg auth . otpRepo
//go:generate moq -out tx_manager_mock_test.go -pkg auth . txManager
//go:generate moq -out jwt_manager_mock_test.go -pkg auth . jwtManager
//go:generate moq -out mailer_mock_test.go -pkg auth . mailer

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	MarkEmailVerified(ctx context.Context, id uuid.UUID) error
}

// otpRepo defines the one-time code repository interface needed by auth service.
type otpRepo interface {
	Replace(ctx context.Context, otp *domain.Otp) error
	GetByUserAndCode(ctx context.Context, userID uuid.UUID, purpose domain.OtpPurpose, code string) (*domain.Otp, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// mailer delivers one-time codes.
type mailer interface {
	SendOTP(ctx context.Context, to, name, code string) error
}

// Service implements auth operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	otps   otpRepo
	tx     txManager
	jwt    jwtManager
	mailer mailer
	cfg    config.AuthConfig

	// now and genCode are replaced in tests.
	now     func() time.Time
	genCode func(length int) (string, error)

	resendMu sync.Mutex
	resend   map[uuid.UUID]*rate.Limiter
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	otps otpRepo,
	tx txManager,
	jwt jwtManager,
	mailer mailer,
	cfg config.AuthConfig,
	genCode func(length int) (string, error),
) *Service {
	return &Service{
		log:     logger.With("service", "auth"),
		users:   users,
		otps:    otps,
		tx:      tx,
		jwt:     jwt,
		mailer:  mailer,
		cfg:     cfg,
		now:     time.Now,
		genCode: genCode,
		resend:  make(map[uuid.UUID]*rate.Limiter),
	}
}

// issueToken generates an access token for the given user.
func (s *Service) issueToken(user *domain.User) (*AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	return &AuthResult{AccessToken: accessToken, User: user}, nil
}

// newOtp builds a fresh email verification code for userID.
func (s *Service) newOtp(userID uuid.UUID) (*domain.Otp, error) {
	code, err := s.genCode(s.cfg.OTPLength)
	if err != nil {
		return nil, fmt.Errorf("generate otp: %w", err)
	}
	now := s.now()
	return &domain.Otp{
		ID:        uuid.New(),
		UserID:    userID,
		Code:      code,
		Purpose:   domain.OtpPurposeEmailVerification,
		ExpiresAt: now.Add(s.cfg.OTPTTL),
		CreatedAt: now,
	}, nil
}

// deliver sends the code. Delivery failures are logged; the user can request a resend.
func (s *Service) deliver(ctx context.Context, user *domain.User, code string) {
	if err := s.mailer.SendOTP(ctx, user.Email, user.FirstName, code); err != nil {
		s.log.ErrorContext(ctx, "otp delivery failed",
			slog.String("user_id", user.ID.String()),
			slog.String("error", err.Error()))
	}
}

// allowResend reports whether userID may request another code now.
func (s *Service) allowResend(userID uuid.UUID) bool {
	s.resendMu.Lock()
	defer s.resendMu.Unlock()

	lim, ok := s.resend[userID]
	if !ok {
		lim = rate.NewLimiter(rate.Every(s.cfg.OTPResendInterval), 1)
		s.resend[userID] = lim
	}
	return lim.AllowN(s.now(), 1)
}
