package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mreyes87/feedscout/internal/config"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Show the active probe patterns and CMS signatures",
	Long:  `Lists the feed path patterns and CMS signature table in probe order, as configured in config.yaml.`,
	RunE:  runPatterns,
}

func init() {
	rootCmd.AddCommand(patternsCmd)
}

func runPatterns(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	numStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	fmt.Println(headerStyle.Render("Probe patterns (in order)"))
	fmt.Println(strings.Repeat("─", 60))
	for i, p := range cfg.Discovery.Patterns {
		fmt.Printf(" %s  %s\n", numStyle.Render(fmt.Sprintf("%2d", i+1)), p)
	}

	fmt.Println()
	fmt.Println(headerStyle.Render("CMS signatures"))
	fmt.Println(strings.Repeat("─", 60))
	for _, sig := range cfg.Discovery.CMSSignatures {
		fmt.Printf(" %s  %s\n", nameStyle.Render(fmt.Sprintf("%-12s", sig.Name)), strings.Join(sig.FeedPaths, ", "))
	}

	return nil
}
