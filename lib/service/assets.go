package service

import (
	"context"

	"github.com/getnestegg/nestegg/db/models"
)

func (svc *NesteggService) AssetsFor(ctx context.Context, userId int64) ([]models.Asset, error) {
	assets := []models.Asset{}
	err := svc.DB.NewSelect().Model(&assets).Where("user_id = ?", userId).OrderExpr("created_at DESC, id DESC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return assets, nil
}

func (svc *NesteggService) CreateAsset(ctx context.Context, asset *models.Asset) error {
	_, err := svc.DB.NewInsert().Model(asset).Exec(ctx)
	return err
}

// UpdateAsset only touches rows owned by the asset's user. Ownership
// is part of the WHERE clause, not a separate lookup.
func (svc *NesteggService) UpdateAsset(ctx context.Context, asset *models.Asset) error {
	result, err := svc.DB.NewUpdate().
		Model(asset).
		Column("type", "value", "description", "acquisition_date", "updated_at").
		Where("id = ? AND user_id = ?", asset.ID, asset.UserID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (svc *NesteggService) DeleteAsset(ctx context.Context, userId int64, assetId int64) error {
	result, err := svc.DB.NewDelete().
		Model((*models.Asset)(nil)).
		Where("id = ? AND user_id = ?", assetId, userId).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}
