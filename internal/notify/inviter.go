package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/yukikurage/hiring-platform-api/internal/logger"
)

// Invitation describes who is invited to which organization.
type Invitation struct {
	Email            string
	OrganizationName string
	InvitedBy        string
	Role             string
}

// Inviter delivers invitations to people who have not signed up yet.
type Inviter interface {
	Invite(ctx context.Context, inv Invitation) error
}

type mailSender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type SendGridInviter struct {
	client    mailSender
	fromEmail string
	fromName  string
}

func NewSendGridInviter(apiKey, fromEmail string) *SendGridInviter {
	return &SendGridInviter{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  "Hiring Platform",
	}
}

func (s *SendGridInviter) Invite(ctx context.Context, inv Invitation) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("", inv.Email)
	subject := fmt.Sprintf("You have been invited to join %s", inv.OrganizationName)
	plain := fmt.Sprintf(
		"%s invited you to join %s as %s. Sign up with this email address to accept the invitation.",
		inv.InvitedBy, inv.OrganizationName, inv.Role,
	)

	response, err := s.client.SendWithContext(ctx, mail.NewSingleEmail(from, subject, to, plain, ""))
	if err != nil {
		return fmt.Errorf("failed to send invitation: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d", response.StatusCode)
	}
	return nil
}

// LogInviter only records the invitation. Used when no SendGrid key is configured.
type LogInviter struct{}

func (LogInviter) Invite(_ context.Context, inv Invitation) error {
	logger.Info("invitation not sent: mail delivery disabled",
		"organization", inv.OrganizationName,
		"role", inv.Role,
	)
	return nil
}
