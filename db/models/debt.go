package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Debt : Debt Model
type Debt struct {
	ID             int64               `json:"id" bun:",pk,autoincrement"`
	UserID         int64               `json:"user_id" bun:",notnull"`
	User           *User               `json:"-" bun:"rel:belongs-to,join:user_id=id"`
	Name           string              `json:"name" bun:",notnull"`
	Balance        decimal.Decimal     `json:"balance" bun:"type:numeric,notnull"`
	InterestRate   decimal.NullDecimal `json:"interest_rate" bun:"type:numeric,nullzero"`
	MinimumPayment decimal.NullDecimal `json:"minimum_payment" bun:"type:numeric,nullzero"`
	DueDay         int                 `json:"due_day" bun:",nullzero"`
	CreatedAt      time.Time           `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt      bun.NullTime        `json:"updated_at"`
}

func (d *Debt) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		d.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Debt)(nil)
