package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Indexer IndexerConfig `mapstructure:"indexer"`
	YTDLP   YTDLPConfig   `mapstructure:"ytdlp"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// IndexerConfig contains the Torznab-facing identity of this indexer
type IndexerConfig struct {
	Name     string `mapstructure:"name"`
	APIKey   string `mapstructure:"api_key"`
	BasePath string `mapstructure:"base_path"`
}

// YTDLPConfig contains settings for the yt-dlp subprocess
type YTDLPConfig struct {
	Path       string        `mapstructure:"path"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxResults int           `mapstructure:"max_results"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
