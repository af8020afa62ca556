package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing account lifecycle emails.
type EmailService interface {
	// QueueRegistrationPendingEmail tells an admin that a new user awaits approval.
	QueueRegistrationPendingEmail(ctx context.Context, input QueueRegistrationPendingInput) error

	// QueueAccountApprovedEmail tells a user their account can now log in.
	QueueAccountApprovedEmail(ctx context.Context, input QueueAccountApprovedInput) error
}

// QueueRegistrationPendingInput represents the input for the pending registration notice.
type QueueRegistrationPendingInput struct {
	AdminEmail   string
	AdminName    string
	NewUserEmail string
	NewUserName  string
	ReviewURL    string
}

// QueueAccountApprovedInput represents the input for the approval notice.
type QueueAccountApprovedInput struct {
	UserEmail string
	UserName  string
	LoginURL  string
}
