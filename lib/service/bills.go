package service

import (
	"context"

	"github.com/getnestegg/nestegg/db/models"
)

func (svc *NesteggService) BillsFor(ctx context.Context, userId int64) ([]models.Bill, error) {
	bills := []models.Bill{}
	err := svc.DB.NewSelect().Model(&bills).Where("user_id = ?", userId).OrderExpr("created_at DESC, id DESC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return bills, nil
}

func (svc *NesteggService) CreateBill(ctx context.Context, bill *models.Bill) error {
	_, err := svc.DB.NewInsert().Model(bill).Exec(ctx)
	return err
}

func (svc *NesteggService) UpdateBill(ctx context.Context, bill *models.Bill) error {
	result, err := svc.DB.NewUpdate().
		Model(bill).
		Column("name", "amount", "due_date", "autopay", "paid", "updated_at").
		Where("id = ? AND user_id = ?", bill.ID, bill.UserID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (svc *NesteggService) DeleteBill(ctx context.Context, userId int64, billId int64) error {
	result, err := svc.DB.NewDelete().
		Model((*models.Bill)(nil)).
		Where("id = ? AND user_id = ?", billId, userId).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}
