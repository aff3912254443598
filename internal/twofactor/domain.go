// Package twofactor implements two-factor authentication setup and
// verification. The TOTP primitive is fully delegated to pquerna/otp; this
// package only owns enrollment state and the email-code fallback.
package twofactor

import "time"

// Methods a user can complete login with.
const (
	MethodTOTP  = "totp"
	MethodEmail = "email"
)

// Settings is the per-user MFA row.
type Settings struct {
	UserID       int64
	TOTPEnabled  bool
	TOTPSecret   string
	EmailEnabled bool
	UpdatedAt    time.Time
}

// ActiveMethod resolves which second factor gates login. Email wins over
// TOTP when both are enabled, matching the settings screen's precedence.
func (s Settings) ActiveMethod() string {
	if s.EmailEnabled {
		return MethodEmail
	}
	if s.TOTPEnabled {
		return MethodTOTP
	}
	return ""
}

// Enrollment is returned when a user starts TOTP setup: the secret for
// manual entry and the otpauth URL for the QR code.
type Enrollment struct {
	Secret string `json:"secret"`
	URL    string `json:"url"`
}
