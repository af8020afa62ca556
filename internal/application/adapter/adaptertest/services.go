package adaptertest

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hubmanager/backend/internal/application/adapter"
	"github.com/hubmanager/backend/internal/domain/entity"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
)

// PasswordHasher stores passwords as "hashed:<plain>".
type PasswordHasher struct{}

func (PasswordHasher) Hash(plain string) (string, error) {
	return "hashed:" + plain, nil
}

func (PasswordHasher) Matches(hash, plain string) bool {
	return hash == "hashed:"+plain
}

// TokenService issues tokens of the form "token-<user id>".
type TokenService struct {
	Admins map[uuid.UUID]bool
}

func (s *TokenService) Issue(_ context.Context, user *entity.User) (*adapter.AccessToken, error) {
	if s.Admins == nil {
		s.Admins = map[uuid.UUID]bool{}
	}
	s.Admins[user.ID] = user.IsAdmin
	return &adapter.AccessToken{Token: "token-" + user.ID.String(), ExpiresAt: time.Now().Add(24 * time.Hour)}, nil
}

func (s *TokenService) Verify(_ context.Context, token string) (*adapter.Session, error) {
	id, err := uuid.Parse(strings.TrimPrefix(token, "token-"))
	if err != nil {
		return nil, domainerror.ErrInvalidToken
	}
	return &adapter.Session{UserID: id, IsAdmin: s.Admins[id], ExpiresAt: time.Now().Add(time.Hour)}, nil
}

// EmailService records every queued email.
type EmailService struct {
	mu       sync.Mutex
	Pending  []adapter.QueueRegistrationPendingInput
	Approved []adapter.QueueAccountApprovedInput
	Err      error
}

func (s *EmailService) QueueRegistrationPendingEmail(_ context.Context, input adapter.QueueRegistrationPendingInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Pending = append(s.Pending, input)
	return nil
}

func (s *EmailService) QueueAccountApprovedEmail(_ context.Context, input adapter.QueueAccountApprovedInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Approved = append(s.Approved, input)
	return nil
}

// PhoneNormalizer trims spaces only.
type PhoneNormalizer struct{}

func (PhoneNormalizer) Normalize(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
}

// AttendanceExporter captures the last exported sheet.
type AttendanceExporter struct {
	Last *adapter.AttendanceSheet
}

func (e *AttendanceExporter) Export(sheet adapter.AttendanceSheet) ([]byte, error) {
	e.Last = &sheet
	return []byte("xlsx"), nil
}

var (
	_ adapter.PasswordHasher     = PasswordHasher{}
	_ adapter.TokenService       = (*TokenService)(nil)
	_ adapter.EmailService       = (*EmailService)(nil)
	_ adapter.PhoneNormalizer    = PhoneNormalizer{}
	_ adapter.AttendanceExporter = (*AttendanceExporter)(nil)
)
