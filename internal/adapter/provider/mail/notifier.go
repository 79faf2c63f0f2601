package mail

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/givefund-backend/internal/config"
)

type sender interface {
	Send(ctx context.Context, msg Message) error
}

// Notifier renders account emails and hands them to a sender.
type Notifier struct {
	sender           sender
	frontendBaseURL  string
	verifyTemplateID string
	resetTemplateID  string
}

// NewNotifier creates a notifier for the configured frontend and templates.
func NewNotifier(s sender, cfg config.MailConfig) *Notifier {
	return &Notifier{
		sender:           s,
		frontendBaseURL:  strings.TrimRight(cfg.FrontendBaseURL, "/"),
		verifyTemplateID: cfg.VerifyTemplateID,
		resetTemplateID:  cfg.ResetTemplateID,
	}
}

// SendVerification emails the confirmation link for a new account.
func (n *Notifier) SendVerification(ctx context.Context, email, fullname string, accountID uuid.UUID) error {
	err := n.sender.Send(ctx, Message{
		To:         email,
		Subject:    "Verify your registration",
		TemplateID: n.verifyTemplateID,
		Data: map[string]any{
			"fullname":   fullname,
			"confirmUrl": n.frontendBaseURL + "/confirm/" + accountID.String(),
		},
	})
	if err != nil {
		return fmt.Errorf("mail.SendVerification: %w", err)
	}
	return nil
}

// SendPasswordReset emails a reset link carrying token.
func (n *Notifier) SendPasswordReset(ctx context.Context, email, fullname, token string) error {
	err := n.sender.Send(ctx, Message{
		To:         email,
		Subject:    "Reset Password Confirmation",
		TemplateID: n.resetTemplateID,
		Data: map[string]any{
			"fullname":         fullname,
			"resetpasswordURL": n.frontendBaseURL + "/reset-password/" + url.PathEscape(token),
		},
	})
	if err != nil {
		return fmt.Errorf("mail.SendPasswordReset: %w", err)
	}
	return nil
}
