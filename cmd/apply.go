package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xrsl/applykit/pkg/agents"
	"github.com/xrsl/applykit/pkg/fetch"
	"github.com/xrsl/applykit/pkg/publish"
	"github.com/xrsl/applykit/pkg/sig"
	"github.com/xrsl/applykit/pkg/style"
)

var (
	jdFlag      string
	jdURLFlag   string
	resumeFlag  string
	samplesFlag []string
	dryRunFlag  bool
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Run the full application flow in one shot",
	Long: `Summarize a job posting, draft an intro email from your resume and
writing samples, and publish the materials as a pull request.

The job posting comes from a file (--jd) or a URL (--jd-url). Each
--sample file becomes one writing sample, titled by filename.

Examples:
  applykit apply --jd posting.txt --resume resume.md --sample cover.md
  applykit apply --jd-url https://jobs.example/123 --resume resume.md \
    --sample blog.md --sample memo.md
  applykit apply --jd posting.txt --resume resume.md --sample memo.md --dry-run`,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVar(&jdFlag, "jd", "", "Job description file")
	applyCmd.Flags().StringVar(&jdURLFlag, "jd-url", "", "Job posting URL (fetched and cleaned)")
	applyCmd.Flags().StringVar(&resumeFlag, "resume", "", "Resume file (required)")
	applyCmd.Flags().StringArrayVar(&samplesFlag, "sample", nil, "Writing sample file (repeatable, at least one)")
	applyCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Summarize and draft only, don't publish")
	applyCmd.Flags().StringVarP(&agentFlag, "agent", "a", "", "Agent: claude-code, gemini-cli, or an API model name")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	ctx, cancel := sig.WithInterrupt(cmd.Context())
	defer cancel()

	jd, err := jobDescriptionInput(ctx)
	if err != nil {
		return err
	}

	if resumeFlag == "" {
		return fmt.Errorf("--resume is required")
	}
	resume, err := readInput(resumeFlag)
	if err != nil {
		return err
	}

	if len(samplesFlag) == 0 {
		return fmt.Errorf("at least one --sample is required")
	}
	var samples []agents.WritingSample
	for i, path := range samplesFlag {
		content, err := readInput(path)
		if err != nil {
			return err
		}
		title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		samples = append(samples, agents.WritingSample{
			ID:        fmt.Sprintf("sample-%d", i+1),
			Title:     title,
			Content:   content,
			WordCount: len(strings.Fields(content)),
		})
	}

	client, agent, err := newClient(agentFlag)
	if err != nil {
		return err
	}
	defer client.Close()
	say("Using agent %s", agent)

	say("Summarizing job description...")
	summary, err := agents.NewSummarizer(client).Summarize(ctx, jd)
	if err != nil {
		return err
	}
	say("%s%s", style.Success("Company"), summary.CompanyName)
	say("  %s", summary.Summary)

	say("Drafting intro email...")
	draft, err := agents.NewDrafter(client).Draft(ctx, agents.DraftRequest{
		JobDescription: jd,
		CompanyName:    summary.CompanyName,
		Resume:         resume,
		Summary:        summary,
		Samples:        samples,
	})
	if err != nil {
		return err
	}
	say("%s%s", style.Success("Subject"), draft.Subject)
	say("%s%.0f%%", style.Success("Confidence"), draft.ConfidenceScore*100)

	if dryRunFlag {
		fmt.Println()
		fmt.Println(draft.EmailBody)
		return nil
	}

	pub, err := newPublisher()
	if err != nil {
		return err
	}

	say("Publishing...")
	result, err := pub.Publish(ctx, publish.Request{
		CompanyName: summary.CompanyName,
		Summary:     summary,
		Draft:       draft,
		Resume:      resume,
	})
	if err != nil {
		return err
	}

	if result.Degraded() {
		say("%sfiles saved locally, remote publish skipped", style.C(style.Yellow, "⚠ "))
	} else {
		say("%s%s", style.Success("PR"), result.PRURL)
	}
	for _, f := range result.FilesCreated {
		say("  %s", f)
	}
	return nil
}

// jobDescriptionInput reads the posting from --jd or fetches --jd-url.
func jobDescriptionInput(ctx context.Context) (string, error) {
	switch {
	case jdFlag != "" && jdURLFlag != "":
		return "", fmt.Errorf("--jd and --jd-url are mutually exclusive")
	case jdFlag != "":
		return readInput(jdFlag)
	case jdURLFlag != "":
		say("Fetching %s", jdURLFlag)
		return fetch.New().JobText(ctx, jdURLFlag)
	default:
		return "", fmt.Errorf("one of --jd or --jd-url is required")
	}
}

func readInput(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	if strings.TrimSpace(string(content)) == "" {
		return "", fmt.Errorf("%s is empty", path)
	}
	return string(content), nil
}
