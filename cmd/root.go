package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ytznab/ytznab/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ytznab",
	Short: "Torznab-compatible YouTube indexer",
	Long: `ytznab - A Torznab/Newznab-compatible indexer backed by YouTube search

Exposes the standard Torznab XML API (caps, search, tvsearch, download)
so media managers like Sonarr and Prowlarr can treat YouTube as an
indexer. Searches are delegated to a local yt-dlp binary and results are
mapped onto the Torznab feed format.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// initConfig loads configuration and applies logging settings. Commands
// that need no config (version, help) are skipped.
func initConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	setupLogging(cfg)
}

// setupLogging configures logrus from config, with flag overrides
func setupLogging(cfg *config.Config) {
	level := cfg.Logging.Level
	if flagLevel, err := rootCmd.PersistentFlags().GetString("log-level"); err == nil && flagLevel != "" {
		level = flagLevel
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
		logrus.WithField("level", level).Warn("Unknown log level, falling back to info")
	}
	logrus.SetLevel(parsed)

	jsonLogs, _ := rootCmd.PersistentFlags().GetBool("json-logs")
	if jsonLogs || cfg.Logging.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
