package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Asset : Asset Model
//
// A single thing of value owned by one user (cash account, property, vehicle, ...).
// Value is the current market value, not the acquisition price.
type Asset struct {
	ID              int64           `json:"id" bun:",pk,autoincrement"`
	UserID          int64           `json:"user_id" bun:",notnull"`
	User            *User           `json:"-" bun:"rel:belongs-to,join:user_id=id"`
	Type            string          `json:"type" bun:",notnull"`
	Value           decimal.Decimal `json:"value" bun:"type:numeric,notnull"`
	Description     string          `json:"description" bun:",nullzero"`
	AcquisitionDate bun.NullTime    `json:"acquisition_date" bun:",nullzero"`
	CreatedAt       time.Time       `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt       bun.NullTime    `json:"updated_at"`
}

func (a *Asset) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		a.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Asset)(nil)
