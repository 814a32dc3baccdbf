package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/favorite-food/adapters/persistence"
	"github.com/khoahotran/favorite-food/internal/config"
	"github.com/khoahotran/favorite-food/internal/domain/user"
	"github.com/khoahotran/favorite-food/pkg/auth"
	"github.com/khoahotran/favorite-food/pkg/logger"
	"github.com/khoahotran/favorite-food/pkg/validation"
)

// Creates the account SEED_EMAIL or resets its password to SEED_PASSWORD.
func main() {
	fmt.Println("adding user into database...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	appLogger := logger.NewZapLogger("cli")

	email := user.NormalizeEmail(os.Getenv("SEED_EMAIL"))
	password := os.Getenv("SEED_PASSWORD")

	if errs := validation.ValidateCredentials(email, password); !errs.Valid() {
		log.Fatalf("invalid seed credentials: %v", errs)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	pool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	repo := persistence.NewPostgresUserRepo(pool, appLogger)
	u, err := repo.UpsertPassword(context.Background(), &user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		log.Fatalf("cannot add user: %v", err)
	}

	fmt.Printf("added or updated user '%s' (%s) successfully!\n", u.Email, u.ID)
}
