package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// WatchlistItem : Watchlist Item Model
//
// Only the symbol is persisted. Prices are fetched from the quote API
// at read time and never stored.
type WatchlistItem struct {
	ID        int64        `json:"id" bun:",pk,autoincrement"`
	UserID    int64        `json:"user_id" bun:",notnull"`
	User      *User        `json:"-" bun:"rel:belongs-to,join:user_id=id"`
	Symbol    string       `json:"symbol" bun:",notnull"`
	Note      string       `json:"note" bun:",nullzero"`
	CreatedAt time.Time    `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt bun.NullTime `json:"updated_at"`
}

func (w *WatchlistItem) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		w.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*WatchlistItem)(nil)
