package cmd

import (
	"fmt"
	"os"

	"github.com/mreyes87/feedscout/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize feedscout configuration",
	Long:  `Creates the ~/.feedscout directory with a default config.yaml.`,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := config.Dir()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	cfg := config.Default()
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Printf("Created config at %s/config.yaml\n", dir)

	fmt.Println("\nFeedscout initialized! Next steps:")
	fmt.Println("  feedscout discover <blog-url>          Find the feed for one blog")
	fmt.Println("  feedscout batch -i in.csv -o out.csv   Process a CSV of blogs")

	return nil
}
