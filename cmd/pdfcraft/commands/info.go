package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pdfcraft/pdfcraft/internal/transform"
)

var infoCmd = &cobra.Command{
	Use:   "info <file.pdf>",
	Short: "Inspect a PDF document locally",
	Long:  "Print page count, dimensions, metadata, and encryption state of a local PDF file.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	if noColor {
		color.NoColor = true
	}

	info, err := transform.Info(args[0])
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	bold := color.New(color.Bold)
	bold.Println(args[0])

	if info.Encrypted && info.Pages == 0 {
		color.Yellow("  encrypted document, metadata unavailable")
		fmt.Printf("  %-12s %d bytes\n", "size", info.FileSize)
		return nil
	}

	fmt.Printf("  %-12s %d\n", "pages", info.Pages)
	fmt.Printf("  %-12s %d bytes\n", "size", info.FileSize)
	fmt.Printf("  %-12s %.1f x %.1f pt\n", "page size", info.Width, info.Height)
	fmt.Printf("  %-12s %v\n", "encrypted", info.Encrypted)

	meta := map[string]string{
		"title":   info.Metadata.Title,
		"author":  info.Metadata.Author,
		"subject": info.Metadata.Subject,
		"creator": info.Metadata.Creator,
	}
	for _, key := range []string{"title", "author", "subject", "creator"} {
		if meta[key] != "" {
			fmt.Printf("  %-12s %s\n", key, meta[key])
		}
	}

	return nil
}
