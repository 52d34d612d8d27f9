// cmd/discover.go
package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mreyes87/feedscout/internal/config"
	"github.com/mreyes87/feedscout/internal/feed"
)

var discoverCmd = &cobra.Command{
	Use:   "discover <url>",
	Short: "Discover the feed URL for a blog",
	Long: `Probes common feed paths, the page's link tags, and CMS heuristics
to find a working RSS/Atom feed for the given blog URL.`,
	Args: cobra.ExactArgs(1),
	RunE: runDiscover,
}

func init() {
	rootCmd.AddCommand(discoverCmd)
}

func runDiscover(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	finder := newFinder(cfg)

	fmt.Printf("Discovering feed for %s...\n", args[0])
	res := finder.Lookup(context.Background(), args[0])

	foundStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	missStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	errStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	typeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	switch res.Status {
	case feed.StatusFound:
		fmt.Printf("\n%s %s  %s\n", foundStyle.Render("Found:"), res.FeedURL, typeStyle.Render(string(res.FeedType)))
	case feed.StatusNotFound:
		fmt.Printf("\n%s no feed at %s\n", missStyle.Render("Not found:"), res.BlogURL)
	default:
		fmt.Printf("\n%s %s\n", errStyle.Render("Error:"), res.ErrorMessage)
	}

	return nil
}
