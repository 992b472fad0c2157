// Command seed populates the database with a small set of demo accounts and posts.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"quill/config"
	"quill/internal/infra/auth"
	"quill/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Seed failed", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("Seed data created successfully")
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}

	if err := db.AutoMigrate(&model.UserModel{}, &model.PostModel{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	hasher := auth.NewBcryptHasher(cfg)

	users := []struct {
		email    string
		name     string
		password string
	}{
		{email: "john@example.com", name: "John Doe", password: "password123"},
		{email: "jane@example.com", name: "Jane Smith", password: "password456"},
	}

	created := make([]*model.UserModel, 0, len(users))
	for _, u := range users {
		hash, err := hasher.Hash(u.password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.email, err)
		}

		user := &model.UserModel{
			Email:        u.email,
			Name:         u.name,
			PasswordHash: hash,
		}
		if err := db.Where(&model.UserModel{Email: u.email}).FirstOrCreate(user).Error; err != nil {
			return fmt.Errorf("create user %s: %w", u.email, err)
		}

		created = append(created, user)
	}

	posts := []*model.PostModel{
		{
			Title:     "First Post",
			Content:   "This is the first post content",
			Published: true,
			AuthorID:  created[0].ID,
		},
		{
			Title:     "Second Post",
			Content:   "This is the second post content",
			Published: false,
			AuthorID:  created[1].ID,
		},
	}

	for _, post := range posts {
		if err := db.Where(&model.PostModel{Title: post.Title, AuthorID: post.AuthorID}).
			FirstOrCreate(post).Error; err != nil {
			return fmt.Errorf("create post %q: %w", post.Title, err)
		}
	}

	return closeDB(db)
}

func closeDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}

	return sqlDB.Close()
}
