package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/xrsl/applykit/pkg/config"
	"github.com/xrsl/applykit/pkg/style"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage applykit configuration",
	Long: `Read and write the applykit config file.

  applykit config list
  applykit config get <key>
  applykit config set <key> <value>`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Long: `Set a configuration value.

Keys:
  agent            AI agent (claude-code, gemini-cli, or API model)
  publish_mode     local (git + gh CLIs) or remote (GitHub API)
  repo_root        Applications repository checkout
  submissions_dir  Artifacts directory inside the repo
  base_branch      Branch PRs target
  remote           Push target remote
  server_addr      serve listen address

Examples:
  applykit config set agent gemini-2.5-flash
  applykit config set base_branch master`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return err
		}
		say("Set %s = %s", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a config value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := config.Get(args[0])
		if err != nil {
			return err
		}
		if value == "" {
			fmt.Println("(not set)")
		} else {
			fmt.Println(value)
		}
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all config values",
	RunE: func(cmd *cobra.Command, args []string) error {
		all := config.All()

		fmt.Printf("%s\n", style.B(config.Path()))
		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			v := all[k]
			if v == "" {
				v = style.C(style.Gray, "(not set)")
			}
			fmt.Printf("  %s %s\n", style.C(style.Cyan, fmt.Sprintf("%-16s", k)), v)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd, configGetCmd, configListCmd)
	rootCmd.AddCommand(configCmd)
}
