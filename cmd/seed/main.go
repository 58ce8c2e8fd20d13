// Command seed creates the initial admin user. The admin role is never
// self-assigned through the API, so a fresh deployment runs this once:
//
//	ADMIN_EMAIL=admin@example.com go run ./cmd/seed
package main

import (
	"context"
	"os"
	"time"

	"github.com/plantnet/marketplace-api/internal/domain/entity"
	"github.com/plantnet/marketplace-api/internal/infrastructure/postgres"
	"github.com/plantnet/marketplace-api/pkg/config"
	"github.com/plantnet/marketplace-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		log.Fatal().Msg("ADMIN_EMAIL is required")
	}
	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Administrator"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	repo := postgres.NewUserRepository(pool)
	now := time.Now()
	created, err := repo.Upsert(ctx, &entity.User{
		Email:        email,
		Name:         name,
		Role:         entity.RoleCustomer,
		Status:       entity.StatusNone,
		CreatedAt:    now,
		LastLoggedIn: now,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("upsert admin user")
	}
	if _, err := repo.UpdateRole(ctx, email, entity.RoleAdmin, entity.StatusVerified); err != nil {
		log.Fatal().Err(err).Msg("grant admin role")
	}

	log.Info().Str("email", email).Bool("created", created).Msg("admin user seeded")
}
