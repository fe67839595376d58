package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/xrsl/applykit/pkg/config"
	"github.com/xrsl/applykit/pkg/fetch"
	clog "github.com/xrsl/applykit/pkg/log"
	"github.com/xrsl/applykit/pkg/server"
	"github.com/xrsl/applykit/pkg/sig"
)

var serveAddrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local wizard server",
	Long: `Start the HTTP server backing the web wizard.

The server holds wizard sessions in memory and shuts down gracefully
on interrupt.

Examples:
  applykit serve
  applykit serve --addr :9000`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddrFlag, "addr", "", "Listen address (default from config, :8080)")
	serveCmd.Flags().StringVarP(&agentFlag, "agent", "a", "", "Agent: claude-code, gemini-cli, or an API model name")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if !quiet && !verbose {
		clog.SetLevel(slog.LevelInfo)
	}

	client, agent, err := newClient(agentFlag)
	if err != nil {
		return err
	}
	defer client.Close()

	ctrl, err := newController(client)
	if err != nil {
		return err
	}

	addr := serveAddrFlag
	if addr == "" {
		if cfg, err := config.Load(); err == nil {
			addr = cfg.ServerAddr
		}
	}

	ctx, cancel := sig.WithInterrupt(cmd.Context())
	defer cancel()

	say("Serving on %s (agent: %s)", server.Addr(addr), agent)
	return server.New(ctrl, fetch.New()).Run(ctx, server.Addr(addr))
}
