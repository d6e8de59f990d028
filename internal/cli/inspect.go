package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/stokpanel/paginate/internal/logging"
	"github.com/stokpanel/paginate/internal/paginator"
)

// Output formats for inspect.
const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

func newInspectCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Report pagination state for every marked container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := parseFile(args[0])
			if err != nil {
				return err
			}

			ctrl := paginator.New(doc,
				paginator.WithDefaultPageSize(cfg.Defaults.PageSize),
				paginator.WithLogger(logging.ComponentLogger(logResult.Logger, "inspect")),
			)

			metas := make([]paginator.Meta, 0)
			for _, state := range ctrl.InitAll(nil) {
				metas = append(metas, state.Meta())
			}
			return writeMetas(cmd.OutOrStdout(), output, metas)
		},
	}

	cmd.Flags().StringVar(&output, "output", outputTable, "output format: table, json, or yaml")
	return cmd
}

func writeMetas(w io.Writer, format string, metas []paginator.Meta) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(metas)
	case outputYAML:
		return yaml.NewEncoder(w).Encode(metas)
	case outputTable:
		return writeMetaTable(w, metas)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func writeMetaTable(w io.Writer, metas []paginator.Meta) error {
	if len(metas) == 0 {
		_, err := fmt.Fprintln(w, "No pagination containers found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CONTAINER\tSELECTOR\tPAGE\tPAGES\tSIZE\tITEMS\tFILTERED")
	for _, m := range metas {
		selector := m.ItemSelector
		if selector == "" {
			selector = "(children)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
			m.Container, selector, m.CurrentPage, m.TotalPages, m.PageSize, m.TotalItems, m.FilteredItems)
	}
	return tw.Flush()
}
