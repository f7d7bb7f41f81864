package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Subscription : Subscription Model
//
// Cadence is one of the common.Cadence* constants.
type Subscription struct {
	ID          int64           `json:"id" bun:",pk,autoincrement"`
	UserID      int64           `json:"user_id" bun:",notnull"`
	User        *User           `json:"-" bun:"rel:belongs-to,join:user_id=id"`
	Name        string          `json:"name" bun:",notnull"`
	Amount      decimal.Decimal `json:"amount" bun:"type:numeric,notnull"`
	Cadence     string          `json:"cadence" bun:",notnull,default:'monthly'"`
	NextRenewal bun.NullTime    `json:"next_renewal" bun:",nullzero"`
	Active      bool            `json:"active" bun:",notnull,default:true"`
	CreatedAt   time.Time       `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt   bun.NullTime    `json:"updated_at"`
}

func (s *Subscription) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		s.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Subscription)(nil)
