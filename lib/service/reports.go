package service

import (
	"context"
	"encoding/csv"
	"io"
)

// NetWorthReportCSV streams the stored snapshot history as CSV,
// oldest period first.
func (svc *NesteggService) NetWorthReportCSV(ctx context.Context, userId int64, w io.Writer) error {
	snapshots, err := svc.SnapshotsFor(ctx, userId)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"period", "total_assets", "total_liabilities", "net_worth"}); err != nil {
		return err
	}
	for _, snapshot := range snapshots {
		record := []string{
			snapshot.Period,
			snapshot.TotalAssets.String(),
			snapshot.TotalLiabilities.String(),
			snapshot.NetWorth.String(),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// EntriesReportCSV exports every asset and liability row of the user
// as a flat CSV, newest rows first within each kind.
func (svc *NesteggService) EntriesReportCSV(ctx context.Context, userId int64, w io.Writer) error {
	assets, err := svc.AssetsFor(ctx, userId)
	if err != nil {
		return err
	}
	liabilities, err := svc.LiabilitiesFor(ctx, userId)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"kind", "type", "amount", "description", "created_at"}); err != nil {
		return err
	}
	for _, asset := range assets {
		record := []string{
			"asset",
			asset.Type,
			asset.Value.String(),
			asset.Description,
			asset.CreatedAt.Format("2006-01-02"),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	for _, liability := range liabilities {
		record := []string{
			"liability",
			liability.Type,
			liability.AmountDue.String(),
			liability.Description,
			liability.CreatedAt.Format("2006-01-02"),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
