package service

import (
	"context"

	"github.com/getnestegg/nestegg/db/models"
)

func (svc *NesteggService) ReceiptsFor(ctx context.Context, userId int64) ([]models.Receipt, error) {
	receipts := []models.Receipt{}
	err := svc.DB.NewSelect().Model(&receipts).Where("user_id = ?", userId).OrderExpr("receipt_date DESC, id DESC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return receipts, nil
}

func (svc *NesteggService) CreateReceipt(ctx context.Context, receipt *models.Receipt) error {
	_, err := svc.DB.NewInsert().Model(receipt).Exec(ctx)
	return err
}

func (svc *NesteggService) UpdateReceipt(ctx context.Context, receipt *models.Receipt) error {
	result, err := svc.DB.NewUpdate().
		Model(receipt).
		Column("merchant", "amount", "category", "receipt_date", "note", "updated_at").
		Where("id = ? AND user_id = ?", receipt.ID, receipt.UserID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (svc *NesteggService) DeleteReceipt(ctx context.Context, userId int64, receiptId int64) error {
	result, err := svc.DB.NewDelete().
		Model((*models.Receipt)(nil)).
		Where("id = ? AND user_id = ?", receiptId, userId).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}
