// Package commands implements the pdfcraft admin CLI.
package commands

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "pdfcraft",
	Short: "PDFCraft - admin CLI for the PDF toolkit service",
	Long: `PDFCraft provides operational commands for the PDF toolkit service:
check which document tools a running server has available, sweep expired
scratch files, and inspect PDF documents locally.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
