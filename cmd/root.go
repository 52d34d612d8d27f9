package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mreyes87/feedscout/internal/config"
	"github.com/mreyes87/feedscout/internal/feed"
)

var rootCmd = &cobra.Command{
	Use:   "feedscout",
	Short: "Discover and validate RSS/Atom feeds for blogs",
	Long: `Feedscout finds the feed URL behind a blog URL by probing common
feed paths, reading the page's link tags, and applying CMS-specific
heuristics, then checks that the winner actually serves a feed.

Pipeline: normalize → generate candidates → validate → report`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

var verbose bool

var log = logrus.New()

func init() {
	rootCmd.Version = "0.1.0"
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log candidate probing")
}

func newFinder(cfg *config.Config) *feed.Finder {
	return feed.NewFinder(feed.Options{
		Timeout:           time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second,
		MaxRedirects:      cfg.Fetch.MaxRedirects,
		RequestsPerSecond: cfg.Fetch.RequestsPerSecond,
		UserAgent:         cfg.Fetch.UserAgent,
		Patterns:          cfg.Discovery.Patterns,
		Signatures:        cfg.Discovery.CMSSignatures,
		Logger:            log,
	})
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
