package service

import (
	"testing"
	"time"

	"github.com/getnestegg/nestegg/common"
	"github.com/getnestegg/nestegg/db/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestPeriodOf(t *testing.T) {
	assert.Equal(t, "2024-02", PeriodOf(time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "2024-12", PeriodOf(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)))
}

func TestCalcTotals(t *testing.T) {
	assets := []models.Asset{
		{Type: common.AssetTypeCash, Value: dec("15000")},
		{Type: common.AssetTypeRealEstate, Value: dec("45000")},
	}
	liabilities := []models.Liability{
		{Type: common.LiabilityTypeMortgage, AmountDue: dec("30000")},
	}

	totals := CalcTotals(assets, liabilities)
	assert.True(t, totals.TotalAssets.Equal(dec("60000")))
	assert.True(t, totals.TotalLiabilities.Equal(dec("30000")))
	assert.True(t, totals.NetWorth.Equal(dec("30000")))
	// net worth is always assets minus liabilities
	assert.True(t, totals.NetWorth.Equal(totals.TotalAssets.Sub(totals.TotalLiabilities)))
}

func TestCalcTotalsEmpty(t *testing.T) {
	totals := CalcTotals(nil, nil)
	assert.True(t, totals.TotalAssets.IsZero())
	assert.True(t, totals.TotalLiabilities.IsZero())
	assert.True(t, totals.NetWorth.IsZero())
}

func TestCalcTotalsNegativeNetWorth(t *testing.T) {
	assets := []models.Asset{{Type: "cash", Value: dec("100")}}
	liabilities := []models.Liability{{Type: "loan", AmountDue: dec("250")}}

	totals := CalcTotals(assets, liabilities)
	assert.True(t, totals.NetWorth.Equal(dec("-150")))
}

func TestAssetBreakdownGroupsAndKeepsOrder(t *testing.T) {
	assets := []models.Asset{
		{Type: "cash", Value: dec("100")},
		{Type: "stocks", Value: dec("50")},
		{Type: "cash", Value: dec("25")},
	}

	breakdown := AssetBreakdown(assets)
	assert.Len(t, breakdown, 2)
	assert.Equal(t, "cash", breakdown[0].Category)
	assert.True(t, breakdown[0].Amount.Equal(dec("125")))
	assert.Equal(t, "stocks", breakdown[1].Category)
	assert.True(t, breakdown[1].Amount.Equal(dec("50")))

	// group sums add up to the asset total
	sum := decimal.Zero
	for _, group := range breakdown {
		sum = sum.Add(group.Amount)
	}
	assert.True(t, sum.Equal(CalcTotals(assets, nil).TotalAssets))
}

func TestLiabilityBreakdown(t *testing.T) {
	liabilities := []models.Liability{
		{Type: "mortgage", AmountDue: dec("30000")},
		{Type: "credit_card", AmountDue: dec("500")},
		{Type: "mortgage", AmountDue: dec("10000")},
	}

	breakdown := LiabilityBreakdown(liabilities)
	assert.Len(t, breakdown, 2)
	assert.Equal(t, "mortgage", breakdown[0].Category)
	assert.True(t, breakdown[0].Amount.Equal(dec("40000")))
	assert.Equal(t, "credit_card", breakdown[1].Category)
}

func TestFormatNetWorthAppendsCurrentPeriod(t *testing.T) {
	totals := Totals{TotalAssets: dec("60000"), TotalLiabilities: dec("30000"), NetWorth: dec("30000")}
	snapshots := []models.NetWorthSnapshot{
		{Period: "2024-01", TotalAssets: dec("50000"), TotalLiabilities: dec("30000"), NetWorth: dec("20000")},
	}

	overview := FormatNetWorth("2024-02", totals, nil, nil, snapshots)
	assert.Len(t, overview.History, 2)
	assert.Equal(t, "2024-01", overview.History[0].Period)
	assert.Equal(t, "2024-02", overview.History[1].Period)
	assert.True(t, overview.History[1].NetWorth.Equal(dec("30000")))
}

func TestFormatNetWorthCurrentPeriodAppearsOnce(t *testing.T) {
	totals := Totals{TotalAssets: dec("110"), TotalLiabilities: dec("40"), NetWorth: dec("70")}
	snapshots := []models.NetWorthSnapshot{
		{Period: "2024-01", TotalAssets: dec("90"), TotalLiabilities: dec("40"), NetWorth: dec("50")},
		{Period: "2024-02", TotalAssets: dec("100"), TotalLiabilities: dec("40"), NetWorth: dec("60")},
	}

	overview := FormatNetWorth("2024-02", totals, nil, nil, snapshots)
	assert.Len(t, overview.History, 2)
	// the stale stored row for the current period is overridden by the
	// live aggregates
	assert.Equal(t, "2024-02", overview.History[1].Period)
	assert.True(t, overview.History[1].TotalAssets.Equal(dec("110")))
	assert.True(t, overview.History[1].NetWorth.Equal(dec("70")))
}

func TestFormatNetWorthSortsHistory(t *testing.T) {
	totals := Totals{}
	snapshots := []models.NetWorthSnapshot{
		{Period: "2024-03"},
		{Period: "2023-11"},
		{Period: "2024-01"},
	}

	overview := FormatNetWorth("2024-04", totals, nil, nil, snapshots)
	periods := []string{}
	for _, point := range overview.History {
		periods = append(periods, point.Period)
	}
	assert.Equal(t, []string{"2023-11", "2024-01", "2024-03", "2024-04"}, periods)
}

func TestFormatNetWorthIdempotent(t *testing.T) {
	totals := Totals{TotalAssets: dec("10"), TotalLiabilities: dec("4"), NetWorth: dec("6")}
	assets := []models.Asset{{Type: "cash", Value: dec("10")}}
	liabilities := []models.Liability{{Type: "loan", AmountDue: dec("4")}}
	snapshots := []models.NetWorthSnapshot{{Period: "2024-01", NetWorth: dec("6")}}

	first := FormatNetWorth("2024-02", totals, assets, liabilities, snapshots)
	second := FormatNetWorth("2024-02", totals, assets, liabilities, snapshots)
	assert.Equal(t, first, second)
}

func TestFormatNetWorthNilSlices(t *testing.T) {
	overview := FormatNetWorth("2024-02", Totals{}, nil, nil, nil)
	assert.NotNil(t, overview.Assets)
	assert.NotNil(t, overview.Liabilities)
	assert.NotNil(t, overview.AssetBreakdown)
	assert.NotNil(t, overview.LiabilityBreakdown)
	assert.NotNil(t, overview.Snapshots)
	assert.Len(t, overview.History, 1)
}
