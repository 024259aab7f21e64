// Package email delivers transactional messages over SMTP.
package email

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/heartmarshall/stride-backend/internal/config"
)

// Sender sends OTP emails. With delivery disabled it only logs.
type Sender struct {
	client *mail.Client
	from   string
	log    *slog.Logger
}

// NewSender creates a Sender from cfg. A disabled config yields a Sender
// without an SMTP client.
func NewSender(log *slog.Logger, cfg config.EmailConfig) (*Sender, error) {
	s := &Sender{
		from: cfg.From,
		log:  log.With("adapter", "email"),
	}
	if cfg.Disabled {
		return s, nil
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(tlsPolicy(cfg.TLS)),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	s.client = client
	return s, nil
}

// SendOTP emails a verification code to the user.
func (s *Sender) SendOTP(ctx context.Context, to, name, code string) error {
	if s.client == nil {
		s.log.InfoContext(ctx, "email delivery disabled, otp not sent", slog.String("to", to))
		s.log.DebugContext(ctx, "otp code", slog.String("to", to), slog.String("code", code))
		return nil
	}

	msg, err := otpMessage(s.from, to, name, code)
	if err != nil {
		return err
	}
	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send otp email: %w", err)
	}

	s.log.InfoContext(ctx, "otp email sent", slog.String("to", to))
	return nil
}

func otpMessage(from, to, name, code string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("to address: %w", err)
	}
	msg.Subject("Your Stride verification code")

	greeting := "Hi"
	if n := strings.TrimSpace(name); n != "" {
		greeting = "Hi " + n
	}
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"%s,\n\nYour verification code is %s.\nIt expires in a few minutes. If you did not sign up, ignore this email.\n",
		greeting, code,
	))
	return msg, nil
}

func tlsPolicy(s string) mail.TLSPolicy {
	switch strings.ToLower(s) {
	case "mandatory":
		return mail.TLSMandatory
	case "none":
		return mail.NoTLS
	default:
		return mail.TLSOpportunistic
	}
}
