package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	customErrors "github.com/cookhub/auth-service/internal/domain/auth/errors"
	"github.com/cookhub/auth-service/internal/domain/auth/model"
)

const uniqueViolation = "23505"

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (p *UserRepo) CreateUser(ctx context.Context, user model.User) (uuid.UUID, error) {
	res := p.db.WithContext(ctx).Create(&user)
	if err := res.Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return uuid.Nil, customErrors.ErrAlreadyExists
		}
		return uuid.Nil, customErrors.WrapInternal(err, "CreateUser")
	}
	return user.ID, nil
}

func (p *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	var u model.User
	res := p.db.WithContext(ctx).Where("id = ?", id).First(&u)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.User{}, customErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.User{}, customErrors.WrapInternal(err, "GetUserByID")
	}
	return u, nil
}

func (p *UserRepo) GetUserByTgID(ctx context.Context, tgID int64) (model.User, error) {
	var u model.User
	res := p.db.WithContext(ctx).Where("tg_id = ?", tgID).First(&u)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.User{}, customErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.User{}, customErrors.WrapInternal(err, "GetUserByTgID")
	}
	return u, nil
}

func (p *UserRepo) UpdateUser(ctx context.Context, user model.User) error {
	res := p.db.WithContext(ctx).Save(&user)
	if err := res.Error; err != nil {
		return customErrors.WrapInternal(err, "UpdateUser")
	}
	return nil
}

func (p *UserRepo) GetAdminByUsername(ctx context.Context, username string) (model.Admin, error) {
	var a model.Admin
	res := p.db.WithContext(ctx).Where("username = ?", username).First(&a)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.Admin{}, customErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.Admin{}, customErrors.WrapInternal(err, "GetAdminByUsername")
	}
	return a, nil
}

func (p *UserRepo) GetAdminByUserID(ctx context.Context, userID uuid.UUID) (model.Admin, error) {
	var a model.Admin
	res := p.db.WithContext(ctx).Where("user_id = ?", userID).First(&a)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.Admin{}, customErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.Admin{}, customErrors.WrapInternal(err, "GetAdminByUserID")
	}
	return a, nil
}

func (p *UserRepo) CreateAdmin(ctx context.Context, admin model.Admin) (uuid.UUID, error) {
	res := p.db.WithContext(ctx).Create(&admin)
	if err := res.Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return uuid.Nil, customErrors.ErrAlreadyExists
		}
		return uuid.Nil, customErrors.WrapInternal(err, "CreateAdmin")
	}
	return admin.ID, nil
}

func (p *UserRepo) UpdateAdmin(ctx context.Context, admin model.Admin) error {
	res := p.db.WithContext(ctx).Save(&admin)
	if err := res.Error; err != nil {
		return customErrors.WrapInternal(err, "UpdateAdmin")
	}
	return nil
}
