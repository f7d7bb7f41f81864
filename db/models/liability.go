package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Liability : Liability Model
type Liability struct {
	ID           int64               `json:"id" bun:",pk,autoincrement"`
	UserID       int64               `json:"user_id" bun:",notnull"`
	User         *User               `json:"-" bun:"rel:belongs-to,join:user_id=id"`
	Type         string              `json:"type" bun:",notnull"`
	AmountDue    decimal.Decimal     `json:"amount_due" bun:"type:numeric,notnull"`
	InterestRate decimal.NullDecimal `json:"interest_rate" bun:"type:numeric,nullzero"`
	DueDate      bun.NullTime        `json:"due_date" bun:",nullzero"`
	Description  string              `json:"description" bun:",nullzero"`
	CreatedAt    time.Time           `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt    bun.NullTime        `json:"updated_at"`
}

func (l *Liability) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		l.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Liability)(nil)
