package email

import (
	"context"
	"fmt"
	"sync"

	"github.com/hubmanager/backend/internal/application/adapter"
	domainerror "github.com/hubmanager/backend/internal/domain/error"
)

// RecordingSender keeps every email in memory instead of delivering it.
// It backs local development without a Resend key and the worker tests.
type RecordingSender struct {
	mu        sync.Mutex
	sent      []adapter.SendEmailInput
	failWith  error
	permanent bool
}

// NewRecordingSender creates an empty recording sender.
func NewRecordingSender() *RecordingSender {
	return &RecordingSender{}
}

// Send records the email or returns the configured failure.
func (s *RecordingSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWith != nil {
		code := domainerror.ErrCodeTemporaryEmailFailure
		if s.permanent {
			code = domainerror.ErrCodePermanentEmailFailure
		}
		return nil, domainerror.NewEmailError(code, "recording sender failure", s.failWith)
	}

	s.sent = append(s.sent, input)
	return &adapter.SendEmailResult{ProviderID: fmt.Sprintf("local-%d", len(s.sent))}, nil
}

// Sent returns a copy of the recorded emails.
func (s *RecordingSender) Sent() []adapter.SendEmailInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]adapter.SendEmailInput(nil), s.sent...)
}

// FailWith makes every following Send fail with err.
func (s *RecordingSender) FailWith(err error, permanent bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
	s.permanent = permanent
}

// Reset drops the recorded emails and the failure mode.
func (s *RecordingSender) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = nil
	s.failWith = nil
	s.permanent = false
}

var _ adapter.EmailSender = (*RecordingSender)(nil)
