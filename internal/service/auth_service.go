package service

import (
	"context"
	"errors"
)

// ErrInvalidCredentials is returned for any credential mismatch. It
// deliberately does not reveal whether the email or the password was
// wrong; storage failures surface as distinct errors so callers can
// tell "wrong password" from "database down".
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService verifies admin credentials and manages the stored
// credential record.
type AuthService interface {
	// Login validates email/password against the stored credential and
	// returns a signed session token on success.
	Login(ctx context.Context, email, password string) (string, error)

	// SetCredential replaces the stored credential with the given
	// email and a hash of password. Provisioning path only.
	SetCredential(ctx context.Context, email, password string) error
}
