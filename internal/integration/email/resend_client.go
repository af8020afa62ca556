// Package email delivers the account emails through Resend.
package email

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/hubmanager/backend/internal/application/adapter"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
)

// ResendClient implements adapter.EmailSender on top of the Resend API.
type ResendClient struct {
	client *resend.Client
	from   string
}

// NewResendClient creates a Resend client. An empty baseURL keeps the public API endpoint.
func NewResendClient(apiKey, baseURL, fromName, fromEmail string) (*ResendClient, error) {
	client := resend.NewClient(apiKey)
	if baseURL != "" {
		// the SDK resolves relative paths such as "emails" against BaseURL
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		parsed, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid resend base url: %w", err)
		}
		client.BaseURL = parsed
	}

	return &ResendClient{
		client: client,
		from:   fmt.Sprintf("%s <%s>", fromName, fromEmail),
	}, nil
}

// Send delivers one rendered email.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	resp, err := c.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{input.To},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
	})
	if err != nil {
		if isPermanentError(err) {
			return nil, domainerror.NewEmailError(domainerror.ErrCodePermanentEmailFailure, "permanent email failure", err)
		}
		return nil, domainerror.NewEmailError(domainerror.ErrCodeTemporaryEmailFailure, "temporary email failure", err)
	}

	return &adapter.SendEmailResult{ProviderID: resp.Id}, nil
}

// permanentMarkers match the messages Resend returns for requests that will never succeed.
// Rate limits and server errors fall through and are retried.
var permanentMarkers = []string{
	"401",
	"403",
	"422",
	"unauthorized",
	"forbidden",
	"validation",
	"invalid",
	"bad request",
}

func isPermanentError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range permanentMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

var _ adapter.EmailSender = (*ResendClient)(nil)
