package service

import (
	"context"

	"github.com/getnestegg/nestegg/db/models"
)

func (svc *NesteggService) BudgetsFor(ctx context.Context, userId int64) ([]models.Budget, error) {
	budgets := []models.Budget{}
	err := svc.DB.NewSelect().Model(&budgets).Where("user_id = ?", userId).OrderExpr("created_at DESC, id DESC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return budgets, nil
}

func (svc *NesteggService) CreateBudget(ctx context.Context, budget *models.Budget) error {
	_, err := svc.DB.NewInsert().Model(budget).Exec(ctx)
	return err
}

func (svc *NesteggService) UpdateBudget(ctx context.Context, budget *models.Budget) error {
	result, err := svc.DB.NewUpdate().
		Model(budget).
		Column("category", "monthly_limit", "spent", "updated_at").
		Where("id = ? AND user_id = ?", budget.ID, budget.UserID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (svc *NesteggService) DeleteBudget(ctx context.Context, userId int64, budgetId int64) error {
	result, err := svc.DB.NewDelete().
		Model((*models.Budget)(nil)).
		Where("id = ? AND user_id = ?", budgetId, userId).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}
