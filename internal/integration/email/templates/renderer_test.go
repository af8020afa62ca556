package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
)

func TestRenderer(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	t.Run("registration pending", func(t *testing.T) {
		msg, err := renderer.Render(entity.TemplateRegistrationPending, map[string]string{
			"new_user_email": "new@hub.es",
			"new_user_name":  "Nuevo",
			"review_url":     "http://localhost:3000/admin/users",
		})
		require.NoError(t, err)
		assert.Contains(t, msg.HTML, "new@hub.es")
		assert.Contains(t, msg.HTML, "administrador")
		assert.Contains(t, msg.Text, "http://localhost:3000/admin/users")
	})

	t.Run("account approved escapes html", func(t *testing.T) {
		msg, err := renderer.Render(entity.TemplateAccountApproved, map[string]string{
			"user_name": "<b>Ana</b>",
			"login_url": "http://localhost:3000/login",
		})
		require.NoError(t, err)
		assert.NotContains(t, msg.HTML, "<b>Ana</b>")
		assert.Contains(t, msg.Text, "<b>Ana</b>")
	})

	t.Run("unknown template", func(t *testing.T) {
		_, err := renderer.Render(entity.EmailTemplate("password_reset"), nil)
		require.Error(t, err)
		domainErr, ok := domainerror.As(err)
		require.True(t, ok)
		assert.Equal(t, domainerror.ErrCodeInvalidTemplate, domainErr.Code)
	})
}
