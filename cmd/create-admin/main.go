// Package main seeds an admin account for the dashboard.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/hopeharbor/backend/config"
	"github.com/hopeharbor/backend/internal/auth"
	"github.com/hopeharbor/backend/internal/models"
	"github.com/hopeharbor/backend/pkg/database"
	"github.com/hopeharbor/backend/pkg/utils"
)

func main() {
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password")
	name := flag.String("name", "Site Admin", "admin full name")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: create-admin -email admin@example.org -password secret [-name \"Full Name\"]")
		os.Exit(2)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()
	pool, err := database.NewPostgresPool(ctx, cfg.Database.DSN(), logger)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	repo := auth.NewRepository(pool)
	if _, err := repo.GetByEmail(ctx, *email); err == nil {
		logger.Fatal("account already exists", zap.String("email", *email))
	}

	hash, err := utils.HashPassword(*password)
	if err != nil {
		logger.Fatal("hash password", zap.Error(err))
	}

	user, err := repo.Create(ctx, *email, hash, *name, models.RoleAdmin)
	if err != nil {
		logger.Fatal("create admin", zap.Error(err))
	}
	logger.Info("admin account created", zap.String("id", user.ID.String()), zap.String("email", user.Email))
}
