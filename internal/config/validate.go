package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *CrawlerConfig) Validate() error {
	if c.Crawl.Handle == "" {
		return errors.New("crawl.handle is required")
	}
	if c.Crawl.From < 1 {
		return fmt.Errorf("crawl.from must be >= 1, got %d", c.Crawl.From)
	}
	if c.Crawl.Count < 1 {
		return fmt.Errorf("crawl.count must be >= 1, got %d", c.Crawl.Count)
	}

	if c.API.Key == "" {
		return errors.New("api.key is required")
	}
	if c.API.Secret == "" {
		return errors.New("api.secret is required")
	}
	if c.API.Timeout < 0 {
		return errors.New("api.timeout must not be negative")
	}

	if c.Database != nil {
		if err := c.Database.validate("database"); err != nil {
			return err
		}
	}

	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.Port < 1 || db.Port > 65535 {
		return fmt.Errorf("%s.port must be between 1 and 65535, got %d", prefix, db.Port)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}
