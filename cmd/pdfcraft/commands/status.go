package commands

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusServerURL string

type statusReport struct {
	Status         string   `json:"status"`
	PDFCPU         bool     `json:"pdfcpu"`
	Imaging        bool     `json:"imaging"`
	MuPDF          bool     `json:"mupdf"`
	ToolsAvailable []string `json:"tools_available"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the capability report of a running server",
	Long:  "Query a running PDFCraft server and report which document libraries and operations are available.",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().StringVarP(&statusServerURL, "server", "s", "http://localhost:5000", "Server base URL")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	if noColor {
		color.NoColor = true
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(statusServerURL + "/api/status")
	if err != nil {
		return fmt.Errorf("reach server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned %s", resp.Status)
	}

	var report statusReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return fmt.Errorf("decode status response: %w", err)
	}

	bold := color.New(color.Bold)
	bold.Printf("PDFCraft server at %s: %s\n\n", statusServerURL, report.Status)

	printLib := func(name string, ok bool) {
		if ok {
			color.Green("  %-10s available", name)
		} else {
			color.Red("  %-10s missing", name)
		}
	}
	bold.Println("Libraries")
	printLib("pdfcpu", report.PDFCPU)
	printLib("imaging", report.Imaging)
	printLib("mupdf", report.MuPDF)

	fmt.Println()
	bold.Printf("Operations (%d)\n", len(report.ToolsAvailable))
	for _, op := range report.ToolsAvailable {
		fmt.Printf("  %s\n", op)
	}

	return nil
}
