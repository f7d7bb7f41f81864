package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Budget : Budget Model
type Budget struct {
	ID           int64           `json:"id" bun:",pk,autoincrement"`
	UserID       int64           `json:"user_id" bun:",notnull"`
	User         *User           `json:"-" bun:"rel:belongs-to,join:user_id=id"`
	Category     string          `json:"category" bun:",notnull"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit" bun:"type:numeric,notnull"`
	Spent        decimal.Decimal `json:"spent" bun:"type:numeric,notnull,default:0"`
	CreatedAt    time.Time       `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt    bun.NullTime    `json:"updated_at"`
}

func (b *Budget) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		b.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Budget)(nil)
