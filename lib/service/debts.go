package service

import (
	"context"

	"github.com/getnestegg/nestegg/db/models"
)

func (svc *NesteggService) DebtsFor(ctx context.Context, userId int64) ([]models.Debt, error) {
	debts := []models.Debt{}
	err := svc.DB.NewSelect().Model(&debts).Where("user_id = ?", userId).OrderExpr("created_at DESC, id DESC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return debts, nil
}

func (svc *NesteggService) CreateDebt(ctx context.Context, debt *models.Debt) error {
	_, err := svc.DB.NewInsert().Model(debt).Exec(ctx)
	return err
}

func (svc *NesteggService) UpdateDebt(ctx context.Context, debt *models.Debt) error {
	result, err := svc.DB.NewUpdate().
		Model(debt).
		Column("name", "balance", "interest_rate", "minimum_payment", "due_day", "updated_at").
		Where("id = ? AND user_id = ?", debt.ID, debt.UserID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (svc *NesteggService) DeleteDebt(ctx context.Context, userId int64, debtId int64) error {
	result, err := svc.DB.NewDelete().
		Model((*models.Debt)(nil)).
		Where("id = ? AND user_id = ?", debtId, userId).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}
