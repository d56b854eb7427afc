package model

// AdminCredential is the singleton login credential for the admin
// panel. PasswordHash is a bcrypt hash. It is mutated only through the
// adminctl provisioning command, never over HTTP.
type AdminCredential struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
}

// Default admin credential seeded on first access. Deployments are
// expected to replace it with adminctl before going live.
const (
	DefaultAdminEmail    = "admin@portfolio.com"
	DefaultAdminPassword = "admin123"
)
