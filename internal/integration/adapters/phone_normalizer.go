package adapters

import (
	"log/slog"
	"strings"

	"github.com/ttacon/libphonenumber"

	"github.com/hubmanager/backend/internal/application/adapter"
)

// phoneNormalizer implements the adapter.PhoneNormalizer interface using libphonenumber.
type phoneNormalizer struct {
	region string
}

// NewPhoneNormalizer creates a normalizer that parses numbers without a prefix in region.
func NewPhoneNormalizer(region string) adapter.PhoneNormalizer {
	return &phoneNormalizer{region: strings.ToUpper(region)}
}

// Normalize returns the E.164 form of valid numbers. Anything else is kept as typed
// since contacts may carry extensions or internal short numbers.
func (n *phoneNormalizer) Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	number, err := libphonenumber.Parse(trimmed, n.region)
	if err != nil {
		slog.Debug("Keeping unparseable phone number", "phone", trimmed, "error", err)
		return trimmed
	}
	if !libphonenumber.IsValidNumber(number) {
		return trimmed
	}
	return libphonenumber.Format(number, libphonenumber.E164)
}
