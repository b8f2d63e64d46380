// Command createadmin provisions back-office credentials: it finds or
// creates the principal for a Telegram id and attaches (or rotates) an
// admin username/password hash.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/term"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	pgrepo "github.com/cookhub/auth-service/internal/adapters/db/postgres"
	"github.com/cookhub/auth-service/internal/app/auth/password"
	customErrors "github.com/cookhub/auth-service/internal/domain/auth/errors"
	"github.com/cookhub/auth-service/internal/domain/auth/model"
	"github.com/cookhub/auth-service/internal/infra/config"
	"github.com/cookhub/auth-service/internal/infra/migrate"
)

func main() {
	username := flag.String("username", "", "admin username (required)")
	tgID := flag.Int64("tg-id", 0, "telegram id of the principal (required)")
	flag.Parse()

	if *username == "" || *tgID == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*username, *tgID); err != nil {
		fmt.Fprintln(os.Stderr, "createadmin:", err)
		os.Exit(1)
	}
}

func run(username string, tgID int64) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()
	if err := migrate.Up(sqlDB); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	pwd, err := promptPassword()
	if err != nil {
		return err
	}
	hash, err := password.Hash(pwd)
	if err != nil {
		return err
	}

	ctx := context.Background()
	repo := pgrepo.NewUserRepo(db)

	user, err := repo.GetUserByTgID(ctx, tgID)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		user = model.User{ID: uuid.New(), TgID: tgID}
		if _, err := repo.CreateUser(ctx, user); err != nil {
			return err
		}
		fmt.Printf("created principal %s for tg id %d\n", user.ID, tgID)
	case err != nil:
		return err
	}

	admin, err := repo.GetAdminByUsername(ctx, username)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		admin = model.Admin{
			ID:           uuid.New(),
			UserID:       user.ID,
			Username:     username,
			PasswordHash: hash,
		}
		if _, err := repo.CreateAdmin(ctx, admin); err != nil {
			return err
		}
		fmt.Printf("created admin %q for principal %s\n", username, user.ID)
	case err != nil:
		return err
	default:
		if admin.UserID != user.ID {
			return fmt.Errorf("admin %q belongs to another principal", username)
		}
		admin.PasswordHash = hash
		if err := repo.UpdateAdmin(ctx, admin); err != nil {
			return err
		}
		fmt.Printf("rotated password for admin %q\n", username)
	}

	return nil
}

func promptPassword() (string, error) {
	fmt.Print("password: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	pwd := strings.TrimSpace(string(raw))
	if len(pwd) < 8 {
		return "", errors.New("password must be at least 8 characters")
	}
	return pwd, nil
}
