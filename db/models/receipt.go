package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Receipt : Receipt Model
type Receipt struct {
	ID          int64           `json:"id" bun:",pk,autoincrement"`
	UserID      int64           `json:"user_id" bun:",notnull"`
	User        *User           `json:"-" bun:"rel:belongs-to,join:user_id=id"`
	Merchant    string          `json:"merchant" bun:",notnull"`
	Amount      decimal.Decimal `json:"amount" bun:"type:numeric,notnull"`
	Category    string          `json:"category" bun:",nullzero"`
	ReceiptDate time.Time       `json:"receipt_date" bun:",notnull"`
	Note        string          `json:"note" bun:",nullzero"`
	CreatedAt   time.Time       `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt   bun.NullTime    `json:"updated_at"`
}

func (r *Receipt) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		r.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Receipt)(nil)
