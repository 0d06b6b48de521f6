package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RogersPyke/robocoin-visualizer/selection"
)

var (
	flagBaseURL string
	flagScript  string
)

var exportCmd = &cobra.Command{
	Use:   "export <cart.json>",
	Short: "Turn an exported cart into a download script",
	Long: `Reads a cart manifest written by the browser's export action and
renders a shell script that fetches every clip from the given base URL.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagBaseURL, "base-url", "", "base URL the clips are served from (required)")
	exportCmd.Flags().StringVar(&flagScript, "out", "fetch-clips.sh", "download script to write")
	exportCmd.MarkFlagRequired("base-url")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	m, err := selection.ReadManifest(args[0])
	if err != nil {
		return err
	}
	if m.Count == 0 {
		return fmt.Errorf("manifest %s is empty", args[0])
	}

	script := selection.DownloadScript(m, flagBaseURL)
	if err := os.WriteFile(flagScript, []byte(script), 0755); err != nil {
		return fmt.Errorf("write script: %w", err)
	}
	fmt.Printf("wrote %s for %d clips\n", flagScript, m.Count)
	return nil
}
