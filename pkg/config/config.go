package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Init initializes the configuration system.
// This should be called once at application startup.
func Init() error {
	setDefaults()

	// Environment variables override file values, e.g. YTZNAB_SERVER_PORT
	viper.SetEnvPrefix("YTZNAB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	configPath := filepath.Clean("./config/settings.yaml")
	viper.SetConfigFile(configPath)

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine - defaults and env vars apply
		if !os.IsNotExist(err) {
			return fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	}

	return validate()
}

// GetConfig returns the current configuration as a struct.
// Init() must be called before using this.
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	basePath := viper.GetString("indexer.base_path")
	if !strings.HasPrefix(basePath, "/") {
		return fmt.Errorf("indexer base path must start with '/': %q", basePath)
	}

	if viper.GetString("indexer.api_key") == "" {
		fmt.Println("Warning: indexer.api_key is empty - the Torznab API will reject all requests")
	}

	// Auto-correct out-of-range result caps
	if viper.GetInt("ytdlp.max_results") <= 0 {
		viper.Set("ytdlp.max_results", 20)
	}
	if viper.GetInt("ytdlp.max_results") > 100 {
		viper.Set("ytdlp.max_results", 100)
	}
	if viper.GetDuration("ytdlp.timeout") <= 0 {
		viper.Set("ytdlp.timeout", 45*time.Second)
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if !strings.HasPrefix(c.Indexer.BasePath, "/") {
		return fmt.Errorf("indexer base path must start with '/': %q", c.Indexer.BasePath)
	}

	if c.YTDLP.MaxResults <= 0 {
		c.YTDLP.MaxResults = 20
	}
	if c.YTDLP.MaxResults > 100 {
		c.YTDLP.MaxResults = 100
	}
	if c.YTDLP.Timeout <= 0 {
		c.YTDLP.Timeout = 45 * time.Second
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 9117)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 60*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Indexer identity defaults
	viper.SetDefault("indexer.name", "YouTube")
	viper.SetDefault("indexer.api_key", "youtubeindexer")
	viper.SetDefault("indexer.base_path", "/torznab")

	// yt-dlp defaults
	viper.SetDefault("ytdlp.path", "yt-dlp")
	viper.SetDefault("ytdlp.timeout", 45*time.Second)
	viper.SetDefault("ytdlp.max_results", 20)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
}
