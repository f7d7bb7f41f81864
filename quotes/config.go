package quotes

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	QuoteAPIUrl     string `envconfig:"QUOTE_API_URL"`
	QuoteAPIToken   string `envconfig:"QUOTE_API_TOKEN"`
	QuoteAPITimeout int    `envconfig:"QUOTE_API_TIMEOUT" default:"5"` // in seconds
}

func LoadConfig() (c *Config, err error) {
	c = &Config{}
	err = envconfig.Process("", c)
	if err != nil {
		return nil, err
	}
	return c, nil
}
