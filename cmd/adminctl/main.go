// Command adminctl provisions the admin credential. Use it to replace
// the built-in default before exposing the server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/portfolio/backend/internal/config"
	"github.com/portfolio/backend/internal/logging"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/pkg/auth"
)

const minPasswordLen = 8

func main() {
	email := flag.String("email", "", "admin login email")
	password := flag.String("password", "", "admin password (min 8 characters)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: adminctl -email <email> -password <password>")
		flag.PrintDefaults()
	}
	flag.Parse()

	_ = godotenv.Load()
	_ = godotenv.Load("../.env")
	logging.Setup()

	*email = strings.TrimSpace(*email)
	if *email == "" || !strings.Contains(*email, "@") {
		fmt.Fprintln(os.Stderr, "a valid -email is required")
		flag.Usage()
		os.Exit(1)
	}
	if len(*password) < minPasswordLen {
		fmt.Fprintf(os.Stderr, "-password must be at least %d characters\n", minPasswordLen)
		os.Exit(1)
	}

	cfg := config.Load()

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	adminRepo := repository.NewPgAdminRepository(pool)
	authService := service.NewAuthService(adminRepo, auth.SessionSecretBytes(cfg.SessionSecret))

	if err := authService.SetCredential(ctx, *email, *password); err != nil {
		logging.Fatal("failed to store credential", "error", err)
	}
	slog.Info("admin credential updated", "email", *email)
}
