package service

import (
	"context"
	"errors"

	"github.com/getnestegg/nestegg/db/models"
	"github.com/getnestegg/nestegg/lib/security"
	"github.com/getnestegg/nestegg/lib/tokens"
	"github.com/getnestegg/nestegg/quotes"
	"github.com/getnestegg/nestegg/rabbitmq"
	"github.com/labstack/gommon/random"
	"github.com/uptrace/bun"
	"github.com/ziflex/lecho/v3"
)

const alphaNumBytes = random.Alphanumeric

// ErrNotFound is returned by update/delete operations when no row is
// owned by the requesting user. Controllers translate it to a 404,
// everything else is treated as a transient failure.
var ErrNotFound = errors.New("record not found")

// ErrAccountDeactivated is returned by GenerateToken for deactivated
// accounts so the auth endpoint can answer with its own error code.
var ErrAccountDeactivated = errors.New("account deactivated")

type NesteggService struct {
	Config         *Config
	DB             *bun.DB
	Logger         *lecho.Logger
	QuoteClient    quotes.QuoteClient
	RabbitMQClient rabbitmq.Client
}

func (svc *NesteggService) GenerateToken(ctx context.Context, login, password, inRefreshToken string) (accessToken, refreshToken string, err error) {
	var user *models.User

	switch {
	case login != "" || password != "":
		{
			user, err = svc.FindUserByLogin(ctx, login)
			if err != nil {
				return "", "", errors.New("bad auth")
			}
			if !security.VerifyPassword(user.Password, password) {
				return "", "", errors.New("bad auth")
			}
		}
	case inRefreshToken != "":
		{
			userId, err := tokens.ParseToken(svc.Config.JWTSecret, inRefreshToken, true)
			if err != nil {
				return "", "", errors.New("bad auth")
			}
			user, err = svc.FindUser(ctx, userId)
			if err != nil {
				return "", "", errors.New("bad auth")
			}
		}
	default:
		{
			return "", "", errors.New("login and password or refresh token is required")
		}
	}

	if user.Deactivated {
		return "", "", ErrAccountDeactivated
	}

	accessToken, err = tokens.GenerateAccessToken(svc.Config.JWTSecret, svc.Config.JWTAccessTokenExpiry, user)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = tokens.GenerateRefreshToken(svc.Config.JWTSecret, svc.Config.JWTRefreshTokenExpiry, user)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}
