package service

import (
	"context"
	"sort"
	"time"

	"github.com/getnestegg/nestegg/db/models"
	"github.com/shopspring/decimal"
)

// CategoryAmount is one group of a breakdown: all rows of one type
// summed up. Groups keep the order in which their type was first seen.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

type Totals struct {
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	NetWorth         decimal.Decimal `json:"netWorth"`
}

type HistoryPoint struct {
	Period           string          `json:"period"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	NetWorth         decimal.Decimal `json:"netWorth"`
}

// NetWorthOverview is the full dashboard payload.
type NetWorthOverview struct {
	Totals
	Assets             []models.Asset            `json:"assets"`
	Liabilities        []models.Liability        `json:"liabilities"`
	AssetBreakdown     []CategoryAmount          `json:"assetBreakdown"`
	LiabilityBreakdown []CategoryAmount          `json:"liabilityBreakdown"`
	History            []HistoryPoint            `json:"history"`
	Snapshots          []models.NetWorthSnapshot `json:"snapshots"`
}

// PeriodOf buckets a point in time into the calendar month key used
// for snapshots.
func PeriodOf(t time.Time) string {
	return t.Format("2006-01")
}

func CalcTotals(assets []models.Asset, liabilities []models.Liability) Totals {
	totals := Totals{
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
	}
	for _, asset := range assets {
		totals.TotalAssets = totals.TotalAssets.Add(asset.Value)
	}
	for _, liability := range liabilities {
		totals.TotalLiabilities = totals.TotalLiabilities.Add(liability.AmountDue)
	}
	totals.NetWorth = totals.TotalAssets.Sub(totals.TotalLiabilities)
	return totals
}

func AssetBreakdown(assets []models.Asset) []CategoryAmount {
	breakdown := []CategoryAmount{}
	index := map[string]int{}
	for _, asset := range assets {
		i, ok := index[asset.Type]
		if !ok {
			index[asset.Type] = len(breakdown)
			breakdown = append(breakdown, CategoryAmount{Category: asset.Type, Amount: asset.Value})
			continue
		}
		breakdown[i].Amount = breakdown[i].Amount.Add(asset.Value)
	}
	return breakdown
}

func LiabilityBreakdown(liabilities []models.Liability) []CategoryAmount {
	breakdown := []CategoryAmount{}
	index := map[string]int{}
	for _, liability := range liabilities {
		i, ok := index[liability.Type]
		if !ok {
			index[liability.Type] = len(breakdown)
			breakdown = append(breakdown, CategoryAmount{Category: liability.Type, Amount: liability.AmountDue})
			continue
		}
		breakdown[i].Amount = breakdown[i].Amount.Add(liability.AmountDue)
	}
	return breakdown
}

// FormatNetWorth merges stored snapshot history with the totals that
// were just computed. The current period appears exactly once in the
// history no matter whether a snapshot row for it was already stored,
// and the history is sorted ascending by period. The function is pure
// and idempotent.
func FormatNetWorth(period string, totals Totals, assets []models.Asset, liabilities []models.Liability, snapshots []models.NetWorthSnapshot) NetWorthOverview {
	if assets == nil {
		assets = []models.Asset{}
	}
	if liabilities == nil {
		liabilities = []models.Liability{}
	}
	if snapshots == nil {
		snapshots = []models.NetWorthSnapshot{}
	}

	history := make([]HistoryPoint, 0, len(snapshots)+1)
	currentSeen := false
	for _, snapshot := range snapshots {
		point := HistoryPoint{
			Period:           snapshot.Period,
			TotalAssets:      snapshot.TotalAssets,
			TotalLiabilities: snapshot.TotalLiabilities,
			NetWorth:         snapshot.NetWorth,
		}
		if snapshot.Period == period {
			// live aggregates win over the stored row
			point.TotalAssets = totals.TotalAssets
			point.TotalLiabilities = totals.TotalLiabilities
			point.NetWorth = totals.NetWorth
			currentSeen = true
		}
		history = append(history, point)
	}
	if !currentSeen {
		history = append(history, HistoryPoint{
			Period:           period,
			TotalAssets:      totals.TotalAssets,
			TotalLiabilities: totals.TotalLiabilities,
			NetWorth:         totals.NetWorth,
		})
	}
	sort.SliceStable(history, func(i, j int) bool { return history[i].Period < history[j].Period })

	return NetWorthOverview{
		Totals:             totals,
		Assets:             assets,
		Liabilities:        liabilities,
		AssetBreakdown:     AssetBreakdown(assets),
		LiabilityBreakdown: LiabilityBreakdown(liabilities),
		History:            history,
		Snapshots:          snapshots,
	}
}

// ReconcileSnapshot persists the freshly computed totals for one
// period. A single ON CONFLICT upsert against the (user_id, period)
// unique index, so concurrent reconciliations of the same period can
// not produce duplicate rows.
func (svc *NesteggService) ReconcileSnapshot(ctx context.Context, userId int64, period string, totals Totals) (*models.NetWorthSnapshot, error) {
	snapshot := &models.NetWorthSnapshot{
		UserID:           userId,
		Period:           period,
		TotalAssets:      totals.TotalAssets,
		TotalLiabilities: totals.TotalLiabilities,
		NetWorth:         totals.NetWorth,
	}
	_, err := svc.DB.NewInsert().
		Model(snapshot).
		On("CONFLICT (user_id, period) DO UPDATE").
		Set("total_assets = EXCLUDED.total_assets").
		Set("total_liabilities = EXCLUDED.total_liabilities").
		Set("net_worth = EXCLUDED.net_worth").
		Set("updated_at = now()").
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (svc *NesteggService) SnapshotsFor(ctx context.Context, userId int64) ([]models.NetWorthSnapshot, error) {
	snapshots := []models.NetWorthSnapshot{}
	err := svc.DB.NewSelect().Model(&snapshots).Where("user_id = ?", userId).OrderExpr("period ASC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}

// NetWorthOverviewFor runs the full pipeline: read entity rows,
// aggregate, reconcile the current month's snapshot and shape the
// dashboard payload. Snapshot publication to the broker is fire and
// forget, a broker outage never fails the dashboard.
func (svc *NesteggService) NetWorthOverviewFor(ctx context.Context, userId int64) (*NetWorthOverview, error) {
	assets, err := svc.AssetsFor(ctx, userId)
	if err != nil {
		return nil, err
	}
	liabilities, err := svc.LiabilitiesFor(ctx, userId)
	if err != nil {
		return nil, err
	}

	totals := CalcTotals(assets, liabilities)
	period := PeriodOf(time.Now())

	snapshot, err := svc.ReconcileSnapshot(ctx, userId, period, totals)
	if err != nil {
		return nil, err
	}
	if svc.RabbitMQClient != nil {
		if err := svc.RabbitMQClient.PublishSnapshot(ctx, snapshot); err != nil {
			svc.Logger.Errorf("Failed to publish snapshot: user_id:%v error: %v", userId, err)
		}
	}

	snapshots, err := svc.SnapshotsFor(ctx, userId)
	if err != nil {
		return nil, err
	}

	overview := FormatNetWorth(period, totals, assets, liabilities, snapshots)
	return &overview, nil
}
