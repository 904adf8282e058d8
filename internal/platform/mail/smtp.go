package mail

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/aircnc-api/internal/config"
	"github.com/phrazzld/aircnc-api/internal/service/notification"
	gomail "github.com/wneessen/go-mail"
)

// dialTimeout bounds connecting to and talking with the SMTP server.
const dialTimeout = 15 * time.Second

// SMTPSender implements notification.Sender using a direct SMTP connection via go-mail.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// Ensure SMTPSender implements notification.Sender
var _ notification.Sender = (*SMTPSender)(nil)

// NewSMTPSender creates a new SMTPSender with the given SMTP credentials.
func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	return &SMTPSender{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		from:     cfg.From,
	}
}

// buildMessage converts msg into a go-mail message. A missing recipient is
// rejected before any connection is made.
func (s *SMTPSender) buildMessage(msg notification.Message) (*gomail.Msg, error) {
	if strings.TrimSpace(msg.To) == "" {
		return nil, notification.ErrNoRecipient
	}

	m := gomail.NewMsg()
	if err := m.From(s.from); err != nil {
		return nil, fmt.Errorf("smtp from: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("smtp to: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)
	return m, nil
}

// Send implements notification.Sender.
func (s *SMTPSender) Send(ctx context.Context, msg notification.Message) error {
	m, err := s.buildMessage(msg)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(dialTimeout),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

// NoopSender logs messages instead of delivering them. It is used when mail
// is disabled in configuration.
type NoopSender struct {
	logger *slog.Logger
}

// Ensure NoopSender implements notification.Sender
var _ notification.Sender = (*NoopSender)(nil)

// NewNoopSender creates a NoopSender.
func NewNoopSender(logger *slog.Logger) *NoopSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &NoopSender{logger: logger.With(slog.String("component", "noop_mail_sender"))}
}

// Send implements notification.Sender. It still rejects a missing recipient.
func (s *NoopSender) Send(_ context.Context, msg notification.Message) error {
	if strings.TrimSpace(msg.To) == "" {
		return notification.ErrNoRecipient
	}
	s.logger.Info("mail disabled, message not delivered",
		slog.String("subject", msg.Subject))
	return nil
}

// NewSender returns the sender described by cfg: SMTP when mail is enabled,
// otherwise a NoopSender.
func NewSender(cfg config.MailConfig, logger *slog.Logger) notification.Sender {
	if !cfg.Enabled {
		return NewNoopSender(logger)
	}
	return NewSMTPSender(cfg)
}
