package quotes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ziflex/lecho/v3"
)

func testLogger() *lecho.Logger {
	return lecho.New(os.Stdout, lecho.WithLevel(log.DEBUG))
}

func TestGetQuote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "AAPL", r.URL.Query().Get("symbol"))
		assert.Equal(t, "Bearer testtoken", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"symbol":"AAPL","price":"187.45","currency":"USD"}`))
	}))
	defer server.Close()

	c := NewClient(&Config{QuoteAPIUrl: server.URL, QuoteAPIToken: "testtoken", QuoteAPITimeout: 5}, testLogger())
	quote, err := c.GetQuote(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", quote.Symbol)
	assert.True(t, quote.Price.Equal(decimal.RequireFromString("187.45")))
	assert.Equal(t, "USD", quote.Currency)
}

func TestGetQuoteRetriesTransientFailures(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"symbol":"VTI","price":"240","currency":"USD"}`))
	}))
	defer server.Close()

	c := NewClient(&Config{QuoteAPIUrl: server.URL, QuoteAPITimeout: 5}, testLogger())
	quote, err := c.GetQuote(context.Background(), "VTI")
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.True(t, quote.Price.Equal(decimal.NewFromInt(240)))
}

func TestGetQuoteUnknownSymbolIsPermanent(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := NewClient(&Config{QuoteAPIUrl: server.URL, QuoteAPITimeout: 5}, testLogger())
	_, err := c.GetQuote(context.Background(), "NOPE")
	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}
