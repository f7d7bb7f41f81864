package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// NetWorthSnapshot : Net Worth Snapshot Model
//
// One row per (user_id, period). Period is a calendar month key in the
// form YYYY-MM. The uniqueness is enforced at the DB level, writes go
// through an ON CONFLICT upsert so concurrent reconciliations collapse
// into one row.
type NetWorthSnapshot struct {
	bun.BaseModel `bun:"table:networth_snapshots,alias:networth_snapshots"`

	ID               int64           `json:"id" bun:",pk,autoincrement"`
	UserID           int64           `json:"user_id" bun:",notnull"`
	User             *User           `json:"-" bun:"rel:belongs-to,join:user_id=id"`
	Period           string          `json:"period" bun:",notnull"`
	TotalAssets      decimal.Decimal `json:"total_assets" bun:"type:numeric,notnull"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities" bun:"type:numeric,notnull"`
	NetWorth         decimal.Decimal `json:"net_worth" bun:"type:numeric,notnull"`
	CreatedAt        time.Time       `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt        bun.NullTime    `json:"updated_at"`
}

func (s *NetWorthSnapshot) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		s.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*NetWorthSnapshot)(nil)
