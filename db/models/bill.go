package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Bill : Bill Model
type Bill struct {
	ID        int64           `json:"id" bun:",pk,autoincrement"`
	UserID    int64           `json:"user_id" bun:",notnull"`
	User      *User           `json:"-" bun:"rel:belongs-to,join:user_id=id"`
	Name      string          `json:"name" bun:",notnull"`
	Amount    decimal.Decimal `json:"amount" bun:"type:numeric,notnull"`
	DueDate   time.Time       `json:"due_date" bun:",notnull"`
	Autopay   bool            `json:"autopay" bun:",nullzero"`
	Paid      bool            `json:"paid" bun:",nullzero"`
	CreatedAt time.Time       `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt bun.NullTime    `json:"updated_at"`
}

func (b *Bill) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		b.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Bill)(nil)
