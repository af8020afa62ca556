// Package templates renders the account emails from embedded HTML and text files.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
)

//go:embed *.html *.txt
var templateFS embed.FS

// Message is a rendered email body in both formats.
type Message struct {
	HTML string
	Text string
}

// RegistrationPendingData feeds the registration_pending template.
type RegistrationPendingData struct {
	AdminName    string
	NewUserEmail string
	NewUserName  string
	ReviewURL    string
}

// AccountApprovedData feeds the account_approved template.
type AccountApprovedData struct {
	UserName string
	LoginURL string
}

// Renderer holds the parsed template sets.
type Renderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

// NewRenderer parses every embedded template.
func NewRenderer() (*Renderer, error) {
	html, err := htmltemplate.ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML templates: %w", err)
	}
	text, err := texttemplate.ParseFS(templateFS, "*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text templates: %w", err)
	}
	return &Renderer{html: html, text: text}, nil
}

// Render builds the email for a queued template and its stored data.
func (r *Renderer) Render(template entity.EmailTemplate, data map[string]string) (Message, error) {
	var view interface{}
	switch template {
	case entity.TemplateRegistrationPending:
		view = RegistrationPendingData{
			AdminName:    data["admin_name"],
			NewUserEmail: data["new_user_email"],
			NewUserName:  data["new_user_name"],
			ReviewURL:    data["review_url"],
		}
	case entity.TemplateAccountApproved:
		view = AccountApprovedData{
			UserName: data["user_name"],
			LoginURL: data["login_url"],
		}
	default:
		return Message{}, domainerror.NewEmailError(
			domainerror.ErrCodeInvalidTemplate,
			fmt.Sprintf("unknown email template %q", template),
			domainerror.ErrInvalidTemplate,
		)
	}

	name := string(template)
	var html, text bytes.Buffer
	if err := r.html.ExecuteTemplate(&html, name+".html", view); err != nil {
		return Message{}, fmt.Errorf("failed to render HTML template %s: %w", name, err)
	}
	if err := r.text.ExecuteTemplate(&text, name+".txt", view); err != nil {
		return Message{}, fmt.Errorf("failed to render text template %s: %w", name, err)
	}
	return Message{HTML: html.String(), Text: text.String()}, nil
}
