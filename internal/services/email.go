package services

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/smtp"
	"time"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"

	"github.com/riyaaaa19/shecare/internal/config"
	"github.com/riyaaaa19/shecare/internal/logging"
)

const PasswordResetTokenExpiry = 1 * time.Hour

// Email represents an email to be sent.
type Email struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// EmailProvider is the interface for sending emails.
type EmailProvider interface {
	Send(ctx context.Context, email *Email) error
}

// EmailService handles the password reset email flow.
type EmailService struct {
	provider    EmailProvider
	db          DB
	fromAddress string
	fromName    string
	baseURL     string
}

// NewEmailService picks a provider based on configuration: Resend in
// production, SMTP for Mailpit locally, console everywhere else.
func NewEmailService(cfg *config.EmailConfig, db DB) *EmailService {
	var provider EmailProvider

	switch cfg.Provider {
	case "resend":
		provider = NewResendProvider(cfg.ResendAPIKey, cfg.FromName, cfg.FromAddress)
	case "smtp":
		provider = NewSMTPProvider(cfg.SMTPHost, cfg.SMTPPort, cfg.FromName, cfg.FromAddress)
	default:
		provider = NewConsoleProvider()
	}

	return &EmailService{
		provider:    provider,
		db:          db,
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
		baseURL:     cfg.BaseURL,
	}
}

// GenerateToken creates a secure random token and returns both the token and
// its hash.
func GenerateToken() (token string, hash string, err error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", "", fmt.Errorf("generating random bytes: %w", err)
	}
	token = hex.EncodeToString(bytes)
	hash = HashToken(token)
	return token, hash, nil
}

// HashToken creates a SHA256 hash of a token.
func HashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}

// SendPasswordResetEmail stores a one-time reset token and mails the link.
func (s *EmailService) SendPasswordResetEmail(ctx context.Context, userID uuid.UUID, email string) error {
	token, tokenHash, err := GenerateToken()
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(PasswordResetTokenExpiry)
	_, err = s.db.Exec(ctx,
		`INSERT INTO password_reset_tokens (user_id, token_hash, expires_at) VALUES ($1, $2, $3)`,
		userID, tokenHash, expiresAt)
	if err != nil {
		return fmt.Errorf("storing password reset token: %w", err)
	}

	resetURL := fmt.Sprintf("%s/#reset-password?token=%s", s.baseURL, token)
	html, text := s.renderPasswordResetEmail(resetURL)

	return s.provider.Send(ctx, &Email{
		To:      email,
		Subject: "Reset your SheCare password",
		HTML:    html,
		Text:    text,
	})
}

// VerifyPasswordResetToken validates a reset token and returns its user id.
func (s *EmailService) VerifyPasswordResetToken(ctx context.Context, token string) (uuid.UUID, error) {
	tokenHash := HashToken(token)

	var id uuid.UUID
	var userID uuid.UUID
	var expiresAt time.Time
	var usedAt *time.Time
	err := s.db.QueryRow(ctx,
		`SELECT id, user_id, expires_at, used_at FROM password_reset_tokens WHERE token_hash = $1`,
		tokenHash).Scan(&id, &userID, &expiresAt, &usedAt)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid reset token")
	}

	if usedAt != nil {
		return uuid.Nil, fmt.Errorf("reset token has already been used")
	}
	if time.Now().After(expiresAt) {
		return uuid.Nil, fmt.Errorf("reset token has expired")
	}

	return userID, nil
}

// MarkPasswordResetUsed marks a password reset token as used.
func (s *EmailService) MarkPasswordResetUsed(ctx context.Context, token string) error {
	tokenHash := HashToken(token)
	_, err := s.db.Exec(ctx,
		`UPDATE password_reset_tokens SET used_at = NOW() WHERE token_hash = $1`,
		tokenHash)
	return err
}

func (s *EmailService) renderPasswordResetEmail(resetURL string) (html, text string) {
	html = fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #d72660; font-size: 24px;">Reset Your Password</h1>

  <p>We received a request to reset your SheCare password.</p>

  <a href="%s"
     style="display: inline-block; background: #d72660; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; margin: 20px 0;">
    Choose a New Password
  </a>

  <p style="color: #666; font-size: 14px;">
    Or copy this link: %s
  </p>

  <p style="color: #666; font-size: 14px;">
    This link expires in 1 hour and can only be used once.
    If you didn't request a password reset, you can safely ignore this email.
  </p>
</body>
</html>`, resetURL, resetURL)

	text = fmt.Sprintf(`Reset Your Password

We received a request to reset your SheCare password.

Click the link below to choose a new password:
%s

This link expires in 1 hour and can only be used once.

If you didn't request a password reset, you can safely ignore this email.`, resetURL)

	return html, text
}

// ResendProvider sends emails using the Resend API.
type ResendProvider struct {
	client *resend.Client
	from   string
}

func NewResendProvider(apiKey, fromName, fromAddress string) *ResendProvider {
	return &ResendProvider{
		client: resend.NewClient(apiKey),
		from:   fmt.Sprintf("%s <%s>", fromName, fromAddress),
	}
}

func (p *ResendProvider) Send(ctx context.Context, email *Email) error {
	params := &resend.SendEmailRequest{
		From:    p.from,
		To:      []string{email.To},
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
	}

	_, err := p.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("sending email via Resend: %w", err)
	}

	logging.Info("Email sent via Resend", map[string]interface{}{"to": email.To, "subject": email.Subject})
	return nil
}

// SMTPProvider sends emails via SMTP (for Mailpit in local dev).
type SMTPProvider struct {
	host string
	port int
	from string
	addr string
}

func NewSMTPProvider(host string, port int, fromName, fromAddress string) *SMTPProvider {
	return &SMTPProvider{
		host: host,
		port: port,
		from: fromAddress,
		addr: fmt.Sprintf("%s <%s>", fromName, fromAddress),
	}
}

func (p *SMTPProvider) Send(ctx context.Context, email *Email) error {
	addr := fmt.Sprintf("%s:%d", p.host, p.port)

	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("From: %s\r\n", p.addr))
	buf.WriteString(fmt.Sprintf("To: %s\r\n", email.To))
	buf.WriteString(fmt.Sprintf("Subject: %s\r\n", email.Subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=utf-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(email.HTML)

	err := smtp.SendMail(addr, nil, p.from, []string{email.To}, buf.Bytes())
	if err != nil {
		return fmt.Errorf("sending email via SMTP: %w", err)
	}

	logging.Info("Email sent via SMTP", map[string]interface{}{"to": email.To, "subject": email.Subject})
	return nil
}

// ConsoleProvider logs emails to stdout (for development).
type ConsoleProvider struct{}

func NewConsoleProvider() *ConsoleProvider {
	return &ConsoleProvider{}
}

func (p *ConsoleProvider) Send(ctx context.Context, email *Email) error {
	fmt.Printf("\n=== EMAIL ===\n")
	fmt.Printf("To: %s\n", email.To)
	fmt.Printf("Subject: %s\n", email.Subject)
	fmt.Printf("---\n")
	fmt.Printf("%s\n", email.Text)
	fmt.Printf("=============\n\n")
	return nil
}
