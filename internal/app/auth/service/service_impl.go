package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/cookhub/auth-service/internal/adapters/transport/http/dto"
	"github.com/cookhub/auth-service/internal/app/auth/password"
	"github.com/cookhub/auth-service/internal/app/auth/telegram"
	customErrors "github.com/cookhub/auth-service/internal/domain/auth/errors"
	"github.com/cookhub/auth-service/internal/domain/auth/model"
	"github.com/cookhub/auth-service/internal/domain/auth/repo"
	"github.com/cookhub/auth-service/internal/domain/auth/token"
	"github.com/cookhub/auth-service/internal/infra/config"
)

type authService struct {
	userRepo  repo.UserRepo
	tokenRepo repo.TokenRepo
	codec     token.Codec
	cfg       *config.Config
	v         *validator.Validate
}

type Service interface {
	TelegramLogin(ctx context.Context, in dto.TelegramAuthDTO) (model.TokenPair, model.User, error)
	AdminLogin(ctx context.Context, in dto.AdminLoginDTO) (model.TokenPair, model.Admin, error)
	Refresh(ctx context.Context, in dto.RefreshDTO) (model.TokenPair, error)
	Logout(ctx context.Context, in dto.LogoutDTO) error
	Validate(ctx context.Context, accessToken string) (model.User, error)
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

func New(
	ur repo.UserRepo,
	tr repo.TokenRepo,
	codec token.Codec,
	cfg *config.Config,
	v *validator.Validate,
) Service {
	return &authService{
		userRepo: ur, tokenRepo: tr, codec: codec, cfg: cfg, v: v,
	}
}

// TelegramLogin verifies the widget signature, finds-or-creates the
// principal for the Telegram id and issues an access/refresh pair.
func (a *authService) TelegramLogin(ctx context.Context, in dto.TelegramAuthDTO) (model.TokenPair, model.User, error) {
	if err := a.v.Struct(in); err != nil {
		return model.TokenPair{}, model.User{}, customErrors.NewInvalidArgument(err.Error())
	}

	if !telegram.Verify(telegramFields(in), a.cfg.TelegramBotToken) {
		return model.TokenPair{}, model.User{}, customErrors.ErrInvalidPayload
	}

	user, err := a.upsertUser(ctx, in)
	if err != nil {
		return model.TokenPair{}, model.User{}, err
	}

	pair, err := a.issueTokens(user.ID)
	if err != nil {
		return model.TokenPair{}, model.User{}, err
	}
	return pair, user, nil
}

// AdminLogin deliberately reports the same ErrInvalidCredentials for an
// unknown username, a credential without a stored hash, and a wrong
// password, so usernames cannot be enumerated.
func (a *authService) AdminLogin(ctx context.Context, in dto.AdminLoginDTO) (model.TokenPair, model.Admin, error) {
	if err := a.v.Struct(in); err != nil {
		return model.TokenPair{}, model.Admin{}, customErrors.NewInvalidArgument(err.Error())
	}

	admin, err := a.userRepo.GetAdminByUsername(ctx, in.Username)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		return model.TokenPair{}, model.Admin{}, customErrors.ErrInvalidCredentials
	case err != nil:
		return model.TokenPair{}, model.Admin{}, customErrors.WrapInternal(err, "AdminLogin")
	}

	if admin.PasswordHash == "" {
		return model.TokenPair{}, model.Admin{}, customErrors.ErrInvalidCredentials
	}

	ok, err := password.Verify(in.Password, admin.PasswordHash)
	if err != nil {
		return model.TokenPair{}, model.Admin{}, customErrors.WrapInternal(err, "AdminLogin")
	}
	if !ok {
		return model.TokenPair{}, model.Admin{}, customErrors.ErrInvalidCredentials
	}

	pair, err := a.issueTokens(admin.UserID)
	if err != nil {
		return model.TokenPair{}, model.Admin{}, err
	}
	return pair, admin, nil
}

// Refresh re-issues an access token for a valid, non-revoked refresh
// token. The refresh token itself is not rotated: it keeps minting access
// tokens until natural expiry or logout.
func (a *authService) Refresh(ctx context.Context, in dto.RefreshDTO) (model.TokenPair, error) {
	if err := a.v.Struct(in); err != nil {
		return model.TokenPair{}, customErrors.NewInvalidArgument(err.Error())
	}

	claims, err := a.codec.DecodePayload(in.RefreshToken)
	if err != nil {
		return model.TokenPair{}, err
	}

	if claims.ID != "" {
		revoked, err := a.tokenRepo.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			return model.TokenPair{}, customErrors.WrapInternal(err, "Refresh")
		}
		if revoked {
			return model.TokenPair{}, customErrors.ErrTokenRevoked
		}
	}

	uid, err := a.codec.Decode(in.RefreshToken, token.TypeRefresh)
	if err != nil {
		return model.TokenPair{}, err
	}

	// The principal can vanish between decode and lookup; that is an
	// ordinary unauthorized outcome, not a crash.
	user, err := a.userRepo.GetUserByID(ctx, uid)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		return model.TokenPair{}, customErrors.ErrNotFound
	case err != nil:
		return model.TokenPair{}, customErrors.WrapInternal(err, "Refresh")
	}

	at, err := a.codec.Issue(user.ID, token.TypeAccess, a.cfg.AccessTokenTTL)
	if err != nil {
		return model.TokenPair{}, err
	}

	return model.TokenPair{
		AccessToken: at,
		AccessTTL:   a.cfg.AccessTokenTTL,
		UserID:      user.ID,
	}, nil
}

// Logout blacklists the refresh token's jti for its remaining lifetime.
// It never fails on bad input: an absent, malformed or expired token is
// already as good as logged out.
func (a *authService) Logout(ctx context.Context, in dto.LogoutDTO) error {
	if in.RefreshToken == "" {
		return nil
	}

	claims, err := a.codec.DecodePayload(in.RefreshToken)
	if err != nil {
		return nil
	}
	if claims.ID == "" {
		return nil
	}

	var ttl time.Duration
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if err := a.tokenRepo.Blacklist(ctx, claims.ID, ttl); err != nil {
		return customErrors.WrapInternal(err, "Logout")
	}
	return nil
}

// Validate is the gateway check: signature, expiry, type, revocation,
// then the principal itself.
func (a *authService) Validate(ctx context.Context, accessToken string) (model.User, error) {
	claims, err := a.codec.DecodePayload(accessToken)
	if err != nil {
		return model.User{}, err
	}

	if claims.ID != "" {
		revoked, err := a.tokenRepo.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			return model.User{}, customErrors.WrapInternal(err, "Validate")
		}
		if revoked {
			return model.User{}, customErrors.ErrTokenRevoked
		}
	}

	uid, err := a.codec.Decode(accessToken, token.TypeAccess)
	if err != nil {
		return model.User{}, err
	}

	user, err := a.userRepo.GetUserByID(ctx, uid)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		return model.User{}, customErrors.ErrNotFound
	case err != nil:
		return model.User{}, customErrors.WrapInternal(err, "Validate")
	}
	return user, nil
}

func (a *authService) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	_, err := a.userRepo.GetAdminByUserID(ctx, userID)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		return false, nil
	case err != nil:
		return false, customErrors.WrapInternal(err, "IsAdmin")
	}
	return true, nil
}

func (a *authService) upsertUser(ctx context.Context, in dto.TelegramAuthDTO) (model.User, error) {
	user, err := a.userRepo.GetUserByTgID(ctx, in.ID)
	switch {
	case err == nil:
		if applyProfile(&user, in) {
			if err := a.userRepo.UpdateUser(ctx, user); err != nil {
				return model.User{}, customErrors.WrapInternal(err, "UpdateUser")
			}
		}
		return user, nil

	case errors.Is(err, customErrors.ErrNotFound):
		user = model.User{
			ID:          uuid.New(),
			TgID:        in.ID,
			TgUsername:  firstNonEmpty(in.TgUsername, in.Username),
			FirstName:   in.FirstName,
			LastName:    in.LastName,
			PhoneNumber: in.PhoneNumber,
		}
		if _, err := a.userRepo.CreateUser(ctx, user); err != nil {
			// Two first logins for the same account can race on create;
			// the tg_id unique constraint serializes them, the loser
			// re-reads the winner's row.
			if errors.Is(err, customErrors.ErrAlreadyExists) {
				existing, err := a.userRepo.GetUserByTgID(ctx, in.ID)
				if err != nil {
					return model.User{}, customErrors.WrapInternal(err, "CreateUser race")
				}
				return existing, nil
			}
			return model.User{}, customErrors.WrapInternal(err, "CreateUser")
		}
		return user, nil

	default:
		return model.User{}, customErrors.WrapInternal(err, "GetUserByTgID")
	}
}

func (a *authService) issueTokens(uid uuid.UUID) (model.TokenPair, error) {
	at, err := a.codec.Issue(uid, token.TypeAccess, a.cfg.AccessTokenTTL)
	if err != nil {
		return model.TokenPair{}, err
	}
	rt, err := a.codec.Issue(uid, token.TypeRefresh, a.cfg.RefreshTokenTTL)
	if err != nil {
		return model.TokenPair{}, err
	}

	return model.TokenPair{
		AccessToken:  at,
		RefreshToken: rt,
		AccessTTL:    a.cfg.AccessTokenTTL,
		RefreshTTL:   a.cfg.RefreshTokenTTL,
		UserID:       uid,
	}, nil
}

// telegramFields rebuilds the widget's field map: every non-empty payload
// field except hash participates in the data-check-string.
func telegramFields(in dto.TelegramAuthDTO) map[string]string {
	fields := map[string]string{
		"id":        strconv.FormatInt(in.ID, 10),
		"auth_date": strconv.FormatInt(in.AuthDate, 10),
		"hash":      in.Hash,
	}
	optional := map[string]string{
		"first_name":   in.FirstName,
		"last_name":    in.LastName,
		"username":     in.Username,
		"photo_url":    in.PhotoURL,
		"phone_number": in.PhoneNumber,
		"tg_username":  in.TgUsername,
	}
	for k, v := range optional {
		if v != "" {
			fields[k] = v
		}
	}
	return fields
}

func applyProfile(u *model.User, in dto.TelegramAuthDTO) (changed bool) {
	if username := firstNonEmpty(in.TgUsername, in.Username); username != "" && u.TgUsername != username {
		u.TgUsername, changed = username, true
	}
	if in.FirstName != "" && u.FirstName != in.FirstName {
		u.FirstName, changed = in.FirstName, true
	}
	if in.LastName != "" && u.LastName != in.LastName {
		u.LastName, changed = in.LastName, true
	}
	if in.PhoneNumber != "" && u.PhoneNumber != in.PhoneNumber {
		u.PhoneNumber, changed = in.PhoneNumber, true
	}
	return
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
