package service

import (
	"context"

	"github.com/getnestegg/nestegg/db/models"
)

func (svc *NesteggService) LiabilitiesFor(ctx context.Context, userId int64) ([]models.Liability, error) {
	liabilities := []models.Liability{}
	err := svc.DB.NewSelect().Model(&liabilities).Where("user_id = ?", userId).OrderExpr("created_at DESC, id DESC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return liabilities, nil
}

func (svc *NesteggService) CreateLiability(ctx context.Context, liability *models.Liability) error {
	_, err := svc.DB.NewInsert().Model(liability).Exec(ctx)
	return err
}

func (svc *NesteggService) UpdateLiability(ctx context.Context, liability *models.Liability) error {
	result, err := svc.DB.NewUpdate().
		Model(liability).
		Column("type", "amount_due", "interest_rate", "due_date", "description", "updated_at").
		Where("id = ? AND user_id = ?", liability.ID, liability.UserID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (svc *NesteggService) DeleteLiability(ctx context.Context, userId int64, liabilityId int64) error {
	result, err := svc.DB.NewDelete().
		Model((*models.Liability)(nil)).
		Where("id = ? AND user_id = ?", liabilityId, userId).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}
