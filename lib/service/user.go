package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/getnestegg/nestegg/db/models"
	"github.com/getnestegg/nestegg/lib/security"
	"github.com/uptrace/bun"
	passwordvalidator "github.com/wagslane/go-password-validator"
)

func (svc *NesteggService) CreateUser(ctx context.Context, login string, password string, nickname string) (user *models.User, err error) {

	user = &models.User{}

	// generate user login/password if not provided
	user.Login = login
	if login == "" {
		randLoginBytes, err := randBytesFromStr(20, alphaNumBytes)
		if err != nil {
			return nil, err
		}
		user.Login = string(randLoginBytes)
	}

	if password == "" {
		randPasswordBytes, err := randBytesFromStr(20, alphaNumBytes)
		if err != nil {
			return nil, err
		}
		password = string(randPasswordBytes)
	} else {
		if svc.Config.MinPasswordEntropy > 0 {
			entropy := passwordvalidator.GetEntropy(password)
			if entropy < float64(svc.Config.MinPasswordEntropy) {
				return nil, fmt.Errorf("password entropy is too low (%f), required is %d", entropy, svc.Config.MinPasswordEntropy)
			}
		}
	}
	user.Nickname = nickname

	// we only store the hashed password but return the initial plain text password in the HTTP response
	user.Password = security.HashPassword(password)

	err = svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(user).Exec(ctx)
		return err
	})
	//return actual password in the response, not the hashed one
	user.Password = password
	return user, err
}

func (svc *NesteggService) FindUser(ctx context.Context, userId int64) (*models.User, error) {
	var user models.User

	err := svc.DB.NewSelect().Model(&user).Where("id = ?", userId).Limit(1).Scan(ctx)
	if err != nil {
		return &user, err
	}
	return &user, nil
}

func (svc *NesteggService) FindUserByLogin(ctx context.Context, login string) (*models.User, error) {
	var user models.User

	err := svc.DB.NewSelect().Model(&user).Where("login = ?", login).Limit(1).Scan(ctx)
	if err != nil {
		return &user, err
	}
	return &user, nil
}

// UpdateUser activates or deactivates an account. Admin surface only.
func (svc *NesteggService) UpdateUser(ctx context.Context, userId int64, deactivated bool) (*models.User, error) {
	user, err := svc.FindUser(ctx, userId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	user.Deactivated = deactivated
	_, err = svc.DB.NewUpdate().Model(user).WherePK().Exec(ctx)
	return user, err
}
