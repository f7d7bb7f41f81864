package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// SplitExpense : Split Expense Model
type SplitExpense struct {
	ID          int64           `json:"id" bun:",pk,autoincrement"`
	UserID      int64           `json:"user_id" bun:",notnull"`
	User        *User           `json:"-" bun:"rel:belongs-to,join:user_id=id"`
	Description string          `json:"description" bun:",notnull"`
	TotalAmount decimal.Decimal `json:"total_amount" bun:"type:numeric,notnull"`
	Splits      []*ExpenseSplit `json:"expense_splits" bun:"rel:has-many,join:id=split_expense_id"`
	CreatedAt   time.Time       `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt   bun.NullTime    `json:"updated_at"`
}

// ExpenseSplit : one participant's share of a SplitExpense
type ExpenseSplit struct {
	ID             int64           `json:"id" bun:",pk,autoincrement"`
	SplitExpenseID int64           `json:"split_expense_id" bun:",notnull"`
	SplitExpense   *SplitExpense   `json:"-" bun:"rel:belongs-to,join:split_expense_id=id"`
	Participant    string          `json:"participant" bun:",notnull"`
	Share          decimal.Decimal `json:"share" bun:"type:numeric,notnull"`
	CreatedAt      time.Time       `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}

func (s *SplitExpense) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		s.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*SplitExpense)(nil)
