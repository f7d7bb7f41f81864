package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ziflex/lecho/v3"
)

type client struct {
	cfg        *Config
	httpClient *http.Client
	logger     *lecho.Logger
}

func NewClient(cfg *Config, logger *lecho.Logger) QuoteClient {
	return &client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.QuoteAPITimeout) * time.Second,
		},
		logger: logger,
	}
}

// GetQuote fetches the current price for one symbol. Transient
// provider errors are retried with exponential backoff, bounded so a
// dead provider degrades the watchlist instead of hanging it.
func (c *client) GetQuote(ctx context.Context, symbol string) (*Quote, error) {
	var quote *Quote

	exponentialBackoff := backoff.NewExponentialBackOff()
	exponentialBackoff.MaxInterval = time.Second
	exponentialBackoff.MaxElapsedTime = 5 * time.Second

	err := backoff.Retry(func() error {
		var err error
		quote, err = c.fetch(ctx, symbol)
		return err
	}, backoff.WithContext(exponentialBackoff, ctx))
	if err != nil {
		return nil, err
	}
	return quote, nil
}

func (c *client) fetch(ctx context.Context, symbol string) (*Quote, error) {
	endpoint := fmt.Sprintf("%s/quote?symbol=%s", c.cfg.QuoteAPIUrl, url.QueryEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	if c.cfg.QuoteAPIToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.QuoteAPIToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, backoff.Permanent(fmt.Errorf("unknown symbol %s", symbol))
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("quote api status code was %d", resp.StatusCode)
	}

	quote := &Quote{}
	if err := json.NewDecoder(resp.Body).Decode(quote); err != nil {
		return nil, backoff.Permanent(err)
	}
	return quote, nil
}
