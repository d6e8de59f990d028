package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/stokpanel/paginate/internal/logging"
	"github.com/stokpanel/paginate/internal/paginator"
	"github.com/stokpanel/paginate/internal/tui"
)

var errNotATerminal = errors.New("view requires an interactive terminal; use 'paginate render' instead")

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view FILE",
		Short: "Browse a document's paginated containers interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if !isTerminal(os.Stdout) {
				return errNotATerminal
			}

			doc, err := parseFile(args[0])
			if err != nil {
				return err
			}

			ctrl := paginator.New(doc,
				paginator.WithDefaultPageSize(cfg.Defaults.PageSize),
				paginator.WithLogger(logging.ComponentLogger(logResult.Logger, "view")),
			)
			ctrl.InitAll(nil)

			p := tea.NewProgram(tui.NewPageViewModel(ctrl), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running interactive view: %w", err)
			}
			return nil
		},
	}
}
