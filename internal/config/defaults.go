package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL    = "https://codeforces.com/api"
	DefaultAPITimeout = 10 * time.Second
	DefaultFrom       = 1
	DefaultCount      = 1000
	DefaultOutputDir  = "."
	DefaultDBPort     = 5432
	DefaultDBSSLMode  = "prefer"
	DefaultMaxConns   = 4
	DefaultMinConns   = 1
)

func (c *CrawlerConfig) applyDefaults() {
	// Crawl defaults
	if c.Crawl.From == 0 {
		c.Crawl.From = DefaultFrom
	}
	if c.Crawl.Count == 0 {
		c.Crawl.Count = DefaultCount
	}
	if c.Crawl.OutputDir == "" {
		c.Crawl.OutputDir = DefaultOutputDir
	}

	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}

	// Database defaults (archive is optional)
	if c.Database != nil {
		if c.Database.Port == 0 {
			c.Database.Port = DefaultDBPort
		}
		if c.Database.SSLMode == "" {
			c.Database.SSLMode = DefaultDBSSLMode
		}
		if c.Database.MaxConns == 0 {
			c.Database.MaxConns = DefaultMaxConns
		}
		if c.Database.MinConns == 0 {
			c.Database.MinConns = DefaultMinConns
		}
	}
}
