package models

import (
	"context"
	"database/sql"
	"time"

	"github.com/uptrace/bun"
)

// User : User Model
type User struct {
	ID          int64          `json:"id" bun:",pk,autoincrement"`
	Email       sql.NullString `json:"email" bun:",unique"`
	Login       string         `json:"login" bun:",unique,notnull"`
	Password    string         `json:"-" bun:",notnull"`
	Nickname    string         `json:"nickname" bun:",nullzero"`
	Deactivated bool           `json:"deactivated" bun:",nullzero"`
	CreatedAt   time.Time      `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt   bun.NullTime   `json:"updated_at"`
}

func (u *User) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		u.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*User)(nil)
