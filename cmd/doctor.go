package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/xrsl/applykit/pkg/config"
	"github.com/xrsl/applykit/pkg/gh"
	"github.com/xrsl/applykit/pkg/git"
	"github.com/xrsl/applykit/pkg/style"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system setup for publishing",
	Long:  `Verify the CLIs, credentials, and repository needed to publish applications.`,
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	fmt.Printf("%s Checking applykit setup\n\n", style.C(style.Cyan, "→"))

	allGood := true

	if _, err := exec.LookPath("git"); err != nil {
		fmt.Printf("%s git is not installed\n", style.C(style.Red, "✗"))
		allGood = false
	} else {
		fmt.Printf("%s git installed\n", style.C(style.Green, "✓"))
	}

	if _, err := exec.LookPath("gh"); err != nil {
		fmt.Printf("%s gh is not installed\n", style.C(style.Red, "✗"))
		fmt.Printf("  Install: https://cli.github.com\n")
		allGood = false
	} else {
		fmt.Printf("%s gh installed\n", style.C(style.Green, "✓"))

		if err := gh.New().AuthStatus(); err != nil {
			fmt.Printf("%s gh is not authenticated\n", style.C(style.Red, "✗"))
			fmt.Printf("  Fix: gh auth login\n")
			allGood = false
		} else {
			fmt.Printf("%s gh authenticated\n", style.C(style.Green, "✓"))
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if url, err := git.New().RemoteURL(cfg.RepoRoot, cfg.Remote); err != nil {
		fmt.Printf("%s no %s remote in %s (is it a git checkout?)\n", style.C(style.Red, "✗"), cfg.Remote, cfg.RepoRoot)
		allGood = false
	} else {
		fmt.Printf("%s applications repo: %s\n", style.C(style.Green, "✓"), url)
	}

	fmt.Printf("\n%s Checking API credentials\n\n", style.C(style.Cyan, "→"))

	hasAnthropicKey := os.Getenv("ANTHROPIC_API_KEY") != ""
	hasGeminiKey := os.Getenv("GEMINI_API_KEY") != ""

	if hasAnthropicKey {
		fmt.Printf("%s ANTHROPIC_API_KEY set\n", style.C(style.Green, "✓"))
	} else {
		fmt.Printf("%s ANTHROPIC_API_KEY not set (required for claude-* API agents)\n", style.C(style.Yellow, "⚠"))
	}

	if hasGeminiKey {
		fmt.Printf("%s GEMINI_API_KEY set\n", style.C(style.Green, "✓"))
	} else {
		fmt.Printf("%s GEMINI_API_KEY not set (required for gemini-* API agents)\n", style.C(style.Yellow, "⚠"))
	}

	agent := resolveAgent("")
	fmt.Printf("\n%s agent: %s\n", style.C(style.Green, "✓"), agent)

	fmt.Println()
	if !allGood {
		return fmt.Errorf("setup issues detected")
	}
	fmt.Printf("%s Setup OK\n", style.C(style.Green, "✓"))
	return nil
}
