package service

import (
	"context"
	"database/sql"

	"github.com/getnestegg/nestegg/db/models"
	"github.com/uptrace/bun"
)

func (svc *NesteggService) SplitExpensesFor(ctx context.Context, userId int64) ([]models.SplitExpense, error) {
	expenses := []models.SplitExpense{}
	err := svc.DB.NewSelect().
		Model(&expenses).
		Relation("Splits").
		Where("split_expense.user_id = ?", userId).
		OrderExpr("split_expense.created_at DESC, split_expense.id DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

// CreateSplitExpense inserts the expense and its splits in one
// transaction so a partially written expense can not be observed.
func (svc *NesteggService) CreateSplitExpense(ctx context.Context, expense *models.SplitExpense) error {
	return svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(expense).Exec(ctx); err != nil {
			return err
		}
		for _, split := range expense.Splits {
			split.SplitExpenseID = expense.ID
			if _, err := tx.NewInsert().Model(split).Exec(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteSplitExpense relies on ON DELETE CASCADE for the splits.
func (svc *NesteggService) DeleteSplitExpense(ctx context.Context, userId int64, expenseId int64) error {
	result, err := svc.DB.NewDelete().
		Model((*models.SplitExpense)(nil)).
		Where("id = ? AND user_id = ?", expenseId, userId).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}
