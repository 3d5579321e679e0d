package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
)

// EmailService sends transactional emails. The core treats delivery as
// fallible and never retries a send beyond what the gateway itself does.
type EmailService interface {
	SendVerificationCode(ctx context.Context, toEmail, name, code string) error
	SendVerificationSuccess(ctx context.Context, toEmail, name string) error
	SendContactMessage(ctx context.Context, fromName, fromEmail, subject, message string) error
}

// NoopEmailService is used in tests and when email is disabled locally.
type NoopEmailService struct{}

func (s *NoopEmailService) SendVerificationCode(ctx context.Context, toEmail, name, code string) error {
	log.Printf("[EmailService] noop send verification code to=%s", toEmail)
	return nil
}

func (s *NoopEmailService) SendVerificationSuccess(ctx context.Context, toEmail, name string) error {
	log.Printf("[EmailService] noop send verification success to=%s", toEmail)
	return nil
}

func (s *NoopEmailService) SendContactMessage(ctx context.Context, fromName, fromEmail, subject, message string) error {
	log.Printf("[EmailService] noop relay contact message from=%s", fromEmail)
	return nil
}

// ResendEmailService sends emails via the Resend REST API.
type ResendEmailService struct {
	from      string
	supportTo string
	client    *resend.Client
}

func NewResendEmailService(apiKey, from, supportTo string) (*ResendEmailService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend api key is required")
	}
	if from == "" {
		return nil, fmt.Errorf("email from address is required")
	}
	if supportTo == "" {
		supportTo = from
	}
	return &ResendEmailService{
		from:      from,
		supportTo: supportTo,
		client:    resend.NewClient(apiKey),
	}, nil
}

// SendVerificationCode delivers the welcome email carrying the one-time
// code. The code travels only out-of-band; it never appears in an API
// response.
func (s *ResendEmailService) SendVerificationCode(ctx context.Context, toEmail, name, code string) error {
	if toEmail == "" || code == "" {
		return fmt.Errorf("toEmail and code are required")
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{toEmail},
		Subject: "Welcome to Nurture — verify your email",
		Text: fmt.Sprintf("Hi %s,\n\nYour verification code is %s.\n\nEnter it to activate your account.",
			name, code),
		Html: fmt.Sprintf("<p>Hi %s,</p><p>Your verification code is <strong>%s</strong>.</p><p>Enter it to activate your account.</p>",
			name, code),
	}
	return s.send(ctx, params)
}

// SendVerificationSuccess confirms activation. Callers treat a failure
// here as non-fatal.
func (s *ResendEmailService) SendVerificationSuccess(ctx context.Context, toEmail, name string) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{toEmail},
		Subject: "Your email is verified",
		Text:    fmt.Sprintf("Hi %s,\n\nYour email has been verified. Welcome aboard!", name),
		Html:    fmt.Sprintf("<p>Hi %s,</p><p>Your email has been verified. Welcome aboard!</p>", name),
	}
	return s.send(ctx, params)
}

// SendContactMessage relays a contact-form submission to the support inbox.
func (s *ResendEmailService) SendContactMessage(ctx context.Context, fromName, fromEmail, subject, message string) error {
	if subject == "" {
		subject = "New contact form message"
	}
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{s.supportTo},
		ReplyTo: fromEmail,
		Subject: subject,
		Text:    fmt.Sprintf("From: %s <%s>\n\n%s", fromName, fromEmail, message),
	}
	return s.send(ctx, params)
}

func (s *ResendEmailService) send(ctx context.Context, params *resend.SendEmailRequest) error {
	options := &resend.SendEmailOptions{}

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		_, err := s.client.Emails.SendWithOptions(ctx, params, options)
		if err == nil {
			return nil
		}
		lastErr = err

		if wait, ok := resendRetryDelay(err, attempt); ok {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
				continue
			}
		}

		return fmt.Errorf("resend send failed: %w", err)
	}

	return fmt.Errorf("resend send failed after retries: %w", lastErr)
}

func resendRetryDelay(err error, attempt int) (time.Duration, bool) {
	var rateLimitErr *resend.RateLimitError
	if errors.As(err, &rateLimitErr) {
		if seconds, convErr := strconv.Atoi(strings.TrimSpace(rateLimitErr.RetryAfter)); convErr == nil && seconds > 0 {
			if seconds > 30 {
				seconds = 30
			}
			return time.Duration(seconds) * time.Second, true
		}
		return time.Duration(attempt+1) * time.Second, true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return time.Duration(attempt+1) * 500 * time.Millisecond, true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "timeout") || strings.Contains(msg, "temporar") {
		return time.Duration(attempt+1) * 500 * time.Millisecond, true
	}

	return 0, false
}
