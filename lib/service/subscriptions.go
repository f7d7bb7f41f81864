package service

import (
	"context"

	"github.com/getnestegg/nestegg/db/models"
)

func (svc *NesteggService) SubscriptionsFor(ctx context.Context, userId int64) ([]models.Subscription, error) {
	subscriptions := []models.Subscription{}
	err := svc.DB.NewSelect().Model(&subscriptions).Where("user_id = ?", userId).OrderExpr("created_at DESC, id DESC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return subscriptions, nil
}

func (svc *NesteggService) CreateSubscription(ctx context.Context, subscription *models.Subscription) error {
	_, err := svc.DB.NewInsert().Model(subscription).Exec(ctx)
	return err
}

func (svc *NesteggService) UpdateSubscription(ctx context.Context, subscription *models.Subscription) error {
	result, err := svc.DB.NewUpdate().
		Model(subscription).
		Column("name", "amount", "cadence", "next_renewal", "active", "updated_at").
		Where("id = ? AND user_id = ?", subscription.ID, subscription.UserID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (svc *NesteggService) DeleteSubscription(ctx context.Context, userId int64, subscriptionId int64) error {
	result, err := svc.DB.NewDelete().
		Model((*models.Subscription)(nil)).
		Where("id = ? AND user_id = ?", subscriptionId, userId).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}
