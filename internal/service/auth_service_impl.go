package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

// authServiceImpl is the production implementation of AuthService.
type authServiceImpl struct {
	repo          repository.AdminRepository
	sessionSecret []byte
}

// NewAuthService creates an AuthService backed by the given repository.
func NewAuthService(repo repository.AdminRepository, sessionSecret []byte) AuthService {
	return &authServiceImpl{repo: repo, sessionSecret: sessionSecret}
}

// Login verifies the supplied credentials and mints a session token.
// The stored credential is seeded with the default on first access;
// the seed event is logged so deployments notice the default is live.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	cred, err := s.repo.Get(ctx, defaultCredential())
	if err != nil {
		return "", fmt.Errorf("load admin credential: %w", err)
	}

	// Case-sensitive email match, then constant-time bcrypt compare.
	if email != cred.Email {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return auth.CreateSessionToken(email, s.sessionSecret)
}

// SetCredential hashes password and replaces the stored credential.
func (s *authServiceImpl) SetCredential(ctx context.Context, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.repo.Replace(ctx, &model.AdminCredential{
		Email:        email,
		PasswordHash: string(hash),
	})
}

// defaultCredential builds the seed credential used when no admin
// record exists yet. Hashed once per process; the warning fires once
// so deployments still running the default notice it.
var defaultCredential = sync.OnceValue(func() *model.AdminCredential {
	hash, err := bcrypt.GenerateFromPassword([]byte(model.DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on invalid cost; unreachable with DefaultCost.
		panic(err)
	}
	slog.Warn("default admin credential in use; replace it with adminctl",
		"email", model.DefaultAdminEmail)
	return &model.AdminCredential{
		Email:        model.DefaultAdminEmail,
		PasswordHash: string(hash),
	}
})
