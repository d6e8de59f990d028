// Package cli wires the paginate command tree: render, inspect, and the
// interactive view.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/stokpanel/paginate/internal/config"
	"github.com/stokpanel/paginate/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Package-level state set up by the root command's PersistentPreRunE.
//
//nolint:gochecknoglobals // Shared command state, set once per invocation.
var (
	cfg       config.Config
	logger    zerolog.Logger
	logResult logging.Result
)

// NewRootCmd creates the root Cobra command for the paginate CLI. It loads
// configuration, wires logging, and registers the subcommands.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "paginate",
		Short:   "Client-side pagination for HTML documents",
		Long:    "paginate partitions marked HTML containers into fixed-size pages,\ngenerates navigation controls, and keeps pages in sync with text filtering.",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded

			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				cfg.Logging.Level = "debug"
				cfg.Logging.Format = "console"
				cfg.Logging.File = ""
			}
			logResult = logging.New(cfg.Logging)
			logger = logging.ComponentLogger(logResult.Logger, "cli")
			logger.Debug().
				Str("config", configPath).
				Int("default_page_size", cfg.Defaults.PageSize).
				Msg("configuration loaded")
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			logResult.Close()
		},
	}

	cmd.PersistentFlags().String("config", "", "path to config file (default .paginate.yaml if present)")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(newRenderCmd(), newInspectCmd(), newViewCmd())

	return cmd
}

const rootCmdExample = `  # Paginate every marked container and print the result
  paginate render index.html

  # Jump a specific container to page 3 before rendering
  paginate render index.html --target "#users" --page 3

  # Apply a text filter, then re-paginate
  paginate render index.html --filter "ankara"

  # Paginate many files into a directory, in parallel
  paginate render *.html --out-dir dist/

  # Report pagination state per container
  paginate inspect index.html --output json

  # Browse pages interactively
  paginate view index.html`
