package service

import (
	"context"

	"github.com/getnestegg/nestegg/db/models"
	"github.com/shopspring/decimal"
)

// WatchlistQuote is a stored watchlist row decorated with the live
// price. Price stays null when the quote API is unavailable, the row
// itself is always returned.
type WatchlistQuote struct {
	models.WatchlistItem
	Price    decimal.NullDecimal `json:"price"`
	Currency string              `json:"currency,omitempty"`
}

func (svc *NesteggService) WatchlistFor(ctx context.Context, userId int64) ([]models.WatchlistItem, error) {
	items := []models.WatchlistItem{}
	err := svc.DB.NewSelect().Model(&items).Where("user_id = ?", userId).OrderExpr("created_at DESC, id DESC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (svc *NesteggService) WatchlistWithQuotes(ctx context.Context, userId int64) ([]WatchlistQuote, error) {
	items, err := svc.WatchlistFor(ctx, userId)
	if err != nil {
		return nil, err
	}
	decorated := make([]WatchlistQuote, len(items))
	for i, item := range items {
		decorated[i] = WatchlistQuote{WatchlistItem: item}
		if svc.QuoteClient == nil {
			continue
		}
		quote, err := svc.QuoteClient.GetQuote(ctx, item.Symbol)
		if err != nil {
			svc.Logger.Errorf("Failed to fetch quote: symbol:%s error: %v", item.Symbol, err)
			continue
		}
		decorated[i].Price = decimal.NullDecimal{Decimal: quote.Price, Valid: true}
		decorated[i].Currency = quote.Currency
	}
	return decorated, nil
}

func (svc *NesteggService) CreateWatchlistItem(ctx context.Context, item *models.WatchlistItem) error {
	_, err := svc.DB.NewInsert().Model(item).Exec(ctx)
	return err
}

func (svc *NesteggService) UpdateWatchlistItem(ctx context.Context, item *models.WatchlistItem) error {
	result, err := svc.DB.NewUpdate().
		Model(item).
		Column("symbol", "note", "updated_at").
		Where("id = ? AND user_id = ?", item.ID, item.UserID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (svc *NesteggService) DeleteWatchlistItem(ctx context.Context, userId int64, itemId int64) error {
	result, err := svc.DB.NewDelete().
		Model((*models.WatchlistItem)(nil)).
		Where("id = ? AND user_id = ?", itemId, userId).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}
