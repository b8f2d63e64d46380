package repo

import (
	"context"

	"github.com/google/uuid"

	"github.com/cookhub/auth-service/internal/domain/auth/model"
)

type UserRepo interface {
	CreateUser(ctx context.Context, u model.User) (uuid.UUID, error)

	GetUserByID(ctx context.Context, id uuid.UUID) (model.User, error)

	GetUserByTgID(ctx context.Context, tgID int64) (model.User, error)

	UpdateUser(ctx context.Context, u model.User) error

	GetAdminByUsername(ctx context.Context, username string) (model.Admin, error)

	GetAdminByUserID(ctx context.Context, userID uuid.UUID) (model.Admin, error)

	CreateAdmin(ctx context.Context, a model.Admin) (uuid.UUID, error)

	UpdateAdmin(ctx context.Context, a model.Admin) error
}
