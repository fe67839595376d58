package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xrsl/applykit/pkg/agents"
	"github.com/xrsl/applykit/pkg/fetch"
	"github.com/xrsl/applykit/pkg/sig"
	"github.com/xrsl/applykit/pkg/style"
)

var summarizeJSONFlag bool

var summarizeCmd = &cobra.Command{
	Use:   "summarize <file-or-url>",
	Short: "Summarize a job posting",
	Long: `Extract company name, role summary, key requirements, and company
context from a job posting. The argument is a local file or an
http(s) URL.

Examples:
  applykit summarize posting.txt
  applykit summarize https://jobs.example/123
  applykit summarize posting.txt --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().BoolVar(&summarizeJSONFlag, "json", false, "Print the summary as JSON")
	summarizeCmd.Flags().StringVarP(&agentFlag, "agent", "a", "", "Agent: claude-code, gemini-cli, or an API model name")
	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	ctx, cancel := sig.WithInterrupt(cmd.Context())
	defer cancel()

	source := args[0]
	var jd string
	var err error
	if isURL(source) {
		say("Fetching %s", source)
		jd, err = fetch.New().JobText(ctx, source)
	} else {
		jd, err = readInput(source)
	}
	if err != nil {
		return err
	}

	client, agent, err := newClient(agentFlag)
	if err != nil {
		return err
	}
	defer client.Close()
	say("Using agent %s", agent)

	summary, err := agents.NewSummarizer(client).Summarize(ctx, jd)
	if err != nil {
		return err
	}

	if summarizeJSONFlag {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	fmt.Printf("%s%s\n\n", style.Success("Company"), summary.CompanyName)
	fmt.Println(summary.Summary)
	fmt.Printf("\n%s\n", style.B("Key requirements:"))
	for _, req := range summary.KeyRequirements {
		fmt.Printf("  - %s\n", req)
	}
	if summary.CompanyContext != "" {
		fmt.Printf("\n%s\n%s\n", style.B("Company context:"), summary.CompanyContext)
	}
	return nil
}

func isURL(s string) bool {
	return len(s) > 8 && (s[:7] == "http://" || s[:8] == "https://")
}
