package config

import (
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	Logging  LoggingConfig  `json:"logging"`
	CORS     CORSConfig     `json:"cors"`
	Ingest   IngestConfig   `json:"ingest"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"5000"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type DatabaseConfig struct {
	Host              string        `json:"host" env:"DB_HOST" default:"localhost"`
	Port              int           `json:"port" env:"DB_PORT" default:"5432"`
	User              string        `json:"user" env:"DB_USER" default:"factnet"`
	Password          string        `json:"-" env:"DB_PASSWORD"`
	Name              string        `json:"name" env:"DB_NAME" default:"factnet"`
	SSLMode           string        `json:"ssl_mode" env:"DB_SSL_MODE" default:"disable"`
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"25"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"30s"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

type CORSConfig struct {
	// AllowOrigins is a comma-separated origin list.
	AllowOrigins string `json:"allow_origins" env:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
}

type IngestConfig struct {
	Enabled  bool          `json:"enabled" env:"INGEST_ENABLED" default:"true"`
	Interval time.Duration `json:"interval" env:"INGEST_INTERVAL" default:"30m"`
	Timeout  time.Duration `json:"timeout" env:"INGEST_TIMEOUT" default:"5m"`
	// Sources is a comma-separated list of name=url RSS feed pairs.
	Sources string `json:"sources" env:"INGEST_SOURCES" default:"BBC News=http://feeds.bbci.co.uk/news/rss.xml,Reuters=http://feeds.reuters.com/reuters/topNews,CNN=http://rss.cnn.com/rss/edition.rss"`
}

// Origins splits the configured origin list.
func (c CORSConfig) Origins() []string {
	return splitTrimmed(c.AllowOrigins)
}

// FeedSource is one configured RSS source.
type FeedSource struct {
	Name string
	URL  string
}

// FeedSources parses the configured source list. Entries without a name
// default to the URL host-style label used in logs.
func (c IngestConfig) FeedSources() []FeedSource {
	var sources []FeedSource
	for _, entry := range splitTrimmed(c.Sources) {
		name, url, found := strings.Cut(entry, "=")
		if !found {
			sources = append(sources, FeedSource{Name: entry, URL: entry})
			continue
		}
		sources = append(sources, FeedSource{Name: strings.TrimSpace(name), URL: strings.TrimSpace(url)})
	}
	return sources
}

func splitTrimmed(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// NewConfig creates a new configuration by loading from environment
// variables with fallback to default values
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Load is an alias for NewConfig
func Load() (*Config, error) {
	return NewConfig()
}
