// Package notify sends email notifications to subscribed parties.
package notify

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	apperrors "github.com/allisson/caseflow/internal/errors"
)

// Sender delivers one plain-text email.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SESSender implements Sender over AWS SES v2.
type SESSender struct {
	client    *sesv2.Client
	fromEmail string
	logger    *slog.Logger
}

// NewSESSender creates a Sender sending from fromEmail.
func NewSESSender(cfg aws.Config, fromEmail string, logger *slog.Logger) (*SESSender, error) {
	if fromEmail == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "notify from email is required")
	}
	return &SESSender{
		client:    sesv2.NewFromConfig(cfg),
		fromEmail: fromEmail,
		logger:    logger,
	}, nil
}

// Send delivers the email through SES.
func (s *SESSender) Send(ctx context.Context, to, subject, body string) error {
	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.fromEmail),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
	})
	if err != nil {
		return err
	}

	s.logger.Info("notification sent", slog.String("subject", subject))
	return nil
}

// DisabledSender is a Sender that only logs. Used when notifications are
// turned off.
type DisabledSender struct {
	logger *slog.Logger
}

// NewDisabledSender creates a logging no-op Sender.
func NewDisabledSender(logger *slog.Logger) *DisabledSender {
	return &DisabledSender{logger: logger}
}

// Send logs the notification instead of delivering it.
func (s *DisabledSender) Send(_ context.Context, to, subject, _ string) error {
	s.logger.Info("notifications disabled, skipping email",
		slog.String("to", to),
		slog.String("subject", subject),
	)
	return nil
}
