package config

import (
	"os"
	"testing"
	"time"
)

var configEnvKeys = []string{
	"SERVER_PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "SERVER_IDLE_TIMEOUT",
	"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSL_MODE",
	"DB_MAX_CONNECTIONS", "DB_CONNECTION_TIMEOUT",
	"LOG_LEVEL", "LOG_FORMAT",
	"CORS_ALLOW_ORIGINS",
	"INGEST_ENABLED", "INGEST_INTERVAL", "INGEST_TIMEOUT", "INGEST_SOURCES",
}

func clearTestEnv() {
	for _, key := range configEnvKeys {
		os.Unsetenv(key)
	}
}

func TestNewConfig_WithDefaults(t *testing.T) {
	clearTestEnv()
	defer clearTestEnv()

	config, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() failed: %v", err)
	}

	if config.Server.Port != 5000 {
		t.Errorf("Server.Port = %d, want 5000", config.Server.Port)
	}
	if config.Server.ReadTimeout != 30*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 30s", config.Server.ReadTimeout)
	}
	if config.Server.IdleTimeout != 120*time.Second {
		t.Errorf("Server.IdleTimeout = %v, want 120s", config.Server.IdleTimeout)
	}
	if config.Database.Host != "localhost" {
		t.Errorf("Database.Host = %s, want localhost", config.Database.Host)
	}
	if config.Database.MaxConnections != 25 {
		t.Errorf("Database.MaxConnections = %d, want 25", config.Database.MaxConnections)
	}
	if config.Logging.Level != "info" {
		t.Errorf("Logging.Level = %s, want info", config.Logging.Level)
	}
	if config.Logging.Format != "json" {
		t.Errorf("Logging.Format = %s, want json", config.Logging.Format)
	}
	if !config.Ingest.Enabled {
		t.Error("Ingest.Enabled = false, want true")
	}
	if config.Ingest.Interval != 30*time.Minute {
		t.Errorf("Ingest.Interval = %v, want 30m", config.Ingest.Interval)
	}
	if len(config.Ingest.FeedSources()) != 3 {
		t.Errorf("default feed sources = %d, want 3", len(config.Ingest.FeedSources()))
	}
}

func TestNewConfig_WithEnvironmentOverrides(t *testing.T) {
	clearTestEnv()
	defer clearTestEnv()

	os.Setenv("SERVER_PORT", "8080")
	os.Setenv("DB_HOST", "db.internal")
	os.Setenv("DB_MAX_CONNECTIONS", "50")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("INGEST_ENABLED", "false")
	os.Setenv("INGEST_INTERVAL", "1h")

	config, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() failed: %v", err)
	}

	if config.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", config.Server.Port)
	}
	if config.Database.Host != "db.internal" {
		t.Errorf("Database.Host = %s, want db.internal", config.Database.Host)
	}
	if config.Database.MaxConnections != 50 {
		t.Errorf("Database.MaxConnections = %d, want 50", config.Database.MaxConnections)
	}
	if config.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %s, want debug", config.Logging.Level)
	}
	if config.Ingest.Enabled {
		t.Error("Ingest.Enabled = true, want false")
	}
	if config.Ingest.Interval != time.Hour {
		t.Errorf("Ingest.Interval = %v, want 1h", config.Ingest.Interval)
	}
}

func TestNewConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name:    "invalid server port",
			envVars: map[string]string{"SERVER_PORT": "99999"},
		},
		{
			name:    "invalid log level",
			envVars: map[string]string{"LOG_LEVEL": "loud"},
		},
		{
			name:    "invalid log format",
			envVars: map[string]string{"LOG_FORMAT": "xml"},
		},
		{
			name:    "invalid database port",
			envVars: map[string]string{"DB_PORT": "0"},
		},
		{
			name:    "non-numeric server port",
			envVars: map[string]string{"SERVER_PORT": "eighty"},
		},
		{
			name: "ingest enabled without sources",
			envVars: map[string]string{
				"INGEST_SOURCES": " ",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearTestEnv()
			defer clearTestEnv()

			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}

			if _, err := NewConfig(); err == nil {
				t.Error("NewConfig() succeeded, want validation error")
			}
		})
	}
}

func TestCORSConfig_Origins(t *testing.T) {
	c := CORSConfig{AllowOrigins: "http://localhost:3000, https://factnet.example.com ,"}
	origins := c.Origins()
	if len(origins) != 2 {
		t.Fatalf("len(origins) = %d, want 2", len(origins))
	}
	if origins[0] != "http://localhost:3000" {
		t.Errorf("origins[0] = %s", origins[0])
	}
	if origins[1] != "https://factnet.example.com" {
		t.Errorf("origins[1] = %s", origins[1])
	}
}

func TestIngestConfig_FeedSources(t *testing.T) {
	c := IngestConfig{Sources: "BBC News=http://feeds.bbci.co.uk/news/rss.xml, https://example.com/raw.xml"}
	sources := c.FeedSources()
	if len(sources) != 2 {
		t.Fatalf("len(sources) = %d, want 2", len(sources))
	}
	if sources[0].Name != "BBC News" {
		t.Errorf("sources[0].Name = %s, want BBC News", sources[0].Name)
	}
	if sources[0].URL != "http://feeds.bbci.co.uk/news/rss.xml" {
		t.Errorf("sources[0].URL = %s", sources[0].URL)
	}
	// An entry without a name uses the URL as its label.
	if sources[1].Name != "https://example.com/raw.xml" || sources[1].URL != "https://example.com/raw.xml" {
		t.Errorf("sources[1] = %+v", sources[1])
	}
}
