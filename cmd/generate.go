package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RogersPyke/robocoin-visualizer/dataset"
)

var flagCount int

var generateCmd = &cobra.Command{
	Use:   "generate <dataset-root>",
	Short: "Generate a demo dataset for trying the browser",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := dataset.Generate(args[0], flagCount); err != nil {
			return err
		}
		fmt.Printf("generated %d records under %s\n", flagCount, args[0])
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVar(&flagCount, "count", 500, "number of records to generate")
	rootCmd.AddCommand(generateCmd)
}
