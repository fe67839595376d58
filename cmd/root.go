package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	clog "github.com/xrsl/applykit/pkg/log"
	"github.com/xrsl/applykit/pkg/style"
)

var (
	quiet   bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "applykit",
	Short: "AI-assisted job application wizard",
	Long: `applykit walks a job application from posting to pull request.

Summarize a job description, draft an intro email in your own voice
from writing samples, and publish everything to your applications
repo as a reviewable PR. Run as a one-shot CLI or as a local server
backing the web wizard.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		clog.SetVerbose(verbose)
		clog.SetQuiet(quiet)
	},
}

func Execute() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	style.SetupHelp(rootCmd)

	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func say(format string, args ...any) {
	if !quiet {
		fmt.Printf(format+"\n", args...)
	}
}
