package quotes

import (
	"context"

	"github.com/shopspring/decimal"
)

type Quote struct {
	Symbol   string          `json:"symbol"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
}

// QuoteClient is the boundary to the market data provider. The
// provider is opaque: we only ever ask for the current price of a
// ticker symbol.
type QuoteClient interface {
	GetQuote(ctx context.Context, symbol string) (*Quote, error)
}
