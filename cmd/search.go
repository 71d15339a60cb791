package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ytznab/ytznab/internal/models"
	"github.com/ytznab/ytznab/internal/services/search"
	"github.com/ytznab/ytznab/pkg/config"
	"github.com/ytznab/ytznab/pkg/ytdlp"
)

var (
	searchSeason  int
	searchEpisode int
	searchLimit   int
)

// searchCmd runs a search from the command line, bypassing the HTTP
// layer. Useful for checking the yt-dlp integration before pointing a
// media manager at the server.
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Run a search against YouTube and print the results",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVar(&searchSeason, "season", 0, "season hint folded into the query")
	searchCmd.Flags().IntVar(&searchEpisode, "ep", 0, "episode hint folded into the query")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "maximum number of results (default from config)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	client := ytdlp.New(cfg.YTDLP.Path, cfg.YTDLP.Timeout)
	service := search.NewService(client, cfg.YTDLP.MaxResults)

	results, err := service.Search(cmd.Context(), models.SearchRequest{
		Query:   args[0],
		Season:  searchSeason,
		Episode: searchEpisode,
		Limit:   searchLimit,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(results) == 0 {
		fmt.Fprintln(out, "No results")
		return nil
	}

	for _, result := range results {
		published := "unknown"
		if !result.PublishedAt.IsZero() {
			published = result.PublishedAt.Format(time.DateOnly)
		}
		fmt.Fprintf(out, "%s\n  url: %s\n  channel: %s\n  published: %s\n  size: %s\n",
			result.Title, result.URL, result.Channel, published, formatBytes(result.SizeBytes))
	}
	fmt.Fprintf(out, "\n%d result(s)\n", len(results))
	return nil
}

func formatBytes(size int64) string {
	const mb = 1024 * 1024
	if size < mb {
		return strconv.FormatInt(size, 10) + " B"
	}
	return strconv.FormatInt(size/mb, 10) + " MB"
}
