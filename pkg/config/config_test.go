package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name    string
		setup   func()
		cleanup func()
		wantErr bool
		check   func(t *testing.T)
	}{
		{
			name: "defaults when no config file exists",
			setup: func() {
				viper.Reset()
			},
			cleanup: func() {
				viper.Reset()
			},
			wantErr: false,
			check: func(t *testing.T) {
				assert.Equal(t, 9117, GetInt("server.port"))
				assert.Equal(t, "YouTube", GetString("indexer.name"))
				assert.Equal(t, "/torznab", GetString("indexer.base_path"))
				assert.Equal(t, "yt-dlp", GetString("ytdlp.path"))
				assert.Equal(t, 20, GetInt("ytdlp.max_results"))
			},
		},
		{
			name: "environment variable override",
			setup: func() {
				viper.Reset()
				os.Setenv("YTZNAB_SERVER_PORT", "9090")
				os.Setenv("YTZNAB_INDEXER_API_KEY", "sekrit")
			},
			cleanup: func() {
				os.Unsetenv("YTZNAB_SERVER_PORT")
				os.Unsetenv("YTZNAB_INDEXER_API_KEY")
				viper.Reset()
			},
			wantErr: false,
			check: func(t *testing.T) {
				assert.Equal(t, 9090, GetInt("server.port"))
				assert.Equal(t, "sekrit", GetString("indexer.api_key"))
			},
		},
		{
			name: "invalid port rejected",
			setup: func() {
				viper.Reset()
				os.Setenv("YTZNAB_SERVER_PORT", "-1")
			},
			cleanup: func() {
				os.Unsetenv("YTZNAB_SERVER_PORT")
				viper.Reset()
			},
			wantErr: true,
		},
		{
			name: "oversized result cap clamped",
			setup: func() {
				viper.Reset()
				os.Setenv("YTZNAB_YTDLP_MAX_RESULTS", "500")
			},
			cleanup: func() {
				os.Unsetenv("YTZNAB_YTDLP_MAX_RESULTS")
				viper.Reset()
			},
			wantErr: false,
			check: func(t *testing.T) {
				assert.Equal(t, 100, GetInt("ytdlp.max_results"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.cleanup()

			err := Init()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			if tt.check != nil {
				tt.check(t)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{
		Server:  ServerConfig{Port: 9117},
		Indexer: IndexerConfig{Name: "YouTube", APIKey: "key", BasePath: "/torznab"},
	}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 20, cfg.YTDLP.MaxResults)
	assert.Equal(t, 45*time.Second, cfg.YTDLP.Timeout)

	bad := &Config{
		Server:  ServerConfig{Port: 9117},
		Indexer: IndexerConfig{BasePath: "torznab"},
	}
	assert.Error(t, bad.Validate())
}

func TestGetConfig(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	require.NoError(t, Init())

	cfg, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9117, cfg.Server.Port)
	assert.Equal(t, "YouTube", cfg.Indexer.Name)
	assert.Equal(t, 45*time.Second, cfg.YTDLP.Timeout)
}
