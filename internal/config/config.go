package config

import "time"

// CrawlerConfig is the root configuration for a crawler run.
type CrawlerConfig struct {
	Crawl    CrawlConfig `yaml:"crawl"`
	API      APIConfig   `yaml:"api"`
	Database *DBConfig   `yaml:"database"` // Optional; nil disables the run archive
}

// CrawlConfig selects whose submissions to fetch and where to put results.
type CrawlConfig struct {
	Handle    string `yaml:"handle"`     // Codeforces username
	From      int    `yaml:"from"`       // 1-based index of the first submission
	Count     int    `yaml:"count"`      // Window size
	OutputDir string `yaml:"output_dir"` // Directory for the JSON artifacts
}

// APIConfig holds Codeforces API settings.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Key     string        `yaml:"key"`    // API key, typically ${CF_API_KEY}
	Secret  string        `yaml:"secret"` // Shared secret, typically ${CF_API_SECRET}
	Timeout time.Duration `yaml:"timeout"`
}

// DBConfig holds the Postgres connection for the run archive.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}
