package mail

import (
	"context"
	"fmt"
	"net/url"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

// Sender delivers transactional email through Resend. Without an API key it
// runs in dev mode and only logs the verification link.
type Sender struct {
	client  *resend.Client
	from    string
	baseURL string
	log     zerolog.Logger
}

func NewSender(apiKey, from, baseURL string, log zerolog.Logger) *Sender {
	var client *resend.Client
	if apiKey != "" {
		client = resend.NewClient(apiKey)
	}
	return &Sender{client: client, from: from, baseURL: baseURL, log: log}
}

func (s *Sender) SendVerification(ctx context.Context, email, token string) error {
	link := fmt.Sprintf("%s/api/auth/verify/%s?email=%s", s.baseURL, token, url.QueryEscape(email))

	if s.client == nil {
		s.log.Info().Str("to", email).Str("link", link).Msg("verification email (dev mode)")
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{email},
		Subject: "Verify your SponsoraCareer account",
		Text: fmt.Sprintf(
			"Welcome to SponsoraCareer!\n\nPlease confirm your email address by opening the link below:\n\n%s\n\nIf you did not create an account, you can ignore this message.",
			link,
		),
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("send verification email: %w", err)
	}
	s.log.Info().Str("to", email).Msg("verification email sent")
	return nil
}
