package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/stokpanel/paginate/internal/dom"
	"github.com/stokpanel/paginate/internal/logging"
	"github.com/stokpanel/paginate/internal/paginator"
	"github.com/stokpanel/paginate/internal/search"
)

// renderConcurrency caps the file fan-out.
const renderConcurrency = 4

var errOutDirRequired = errors.New("--out-dir is required when rendering multiple files")

type renderOptions struct {
	page   int
	target string
	filter string
	outDir string
}

func newRenderCmd() *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render FILE...",
		Short: "Paginate marked containers and emit the resulting HTML",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, opts)
		},
	}

	cmd.Flags().IntVar(&opts.page, "page", 0, "navigate to this page before rendering (0 = leave on page 1)")
	cmd.Flags().StringVar(&opts.target, "target", "", "CSS selector of the container --page applies to (default: first container)")
	cmd.Flags().StringVar(&opts.filter, "filter", "", "text filter applied to items before paginating")
	cmd.Flags().StringVarP(&opts.outDir, "out-dir", "o", "", "write results here instead of stdout")

	return cmd
}

func runRender(cmd *cobra.Command, files []string, opts renderOptions) error {
	if len(files) > 1 && opts.outDir == "" {
		return errOutDirRequired
	}
	if opts.outDir != "" {
		if err := os.MkdirAll(opts.outDir, 0750); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	log := logging.ComponentLogger(logResult.Logger, "render")

	var group errgroup.Group
	group.SetLimit(renderConcurrency)
	for _, file := range files {
		file := file // per-iteration copy; go directive < 1.22
		group.Go(func() error {
			doc, err := parseFile(file)
			if err != nil {
				return err
			}
			paginateDocument(doc, opts, log.With().Str("file", file).Logger())

			if opts.outDir == "" {
				return doc.Render(cmd.OutOrStdout())
			}
			out, err := os.Create(filepath.Join(opts.outDir, filepath.Base(file)))
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer out.Close()
			return doc.Render(out)
		})
	}
	return group.Wait()
}

func parseFile(path string) (*dom.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	doc, err := dom.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// paginateDocument runs the full bootstrap over one document: register all
// containers, apply the optional filter, then navigate.
func paginateDocument(doc *dom.Document, opts renderOptions, log zerolog.Logger) {
	ctrl := paginator.New(doc,
		paginator.WithDefaultPageSize(cfg.Defaults.PageSize),
		paginator.WithLogger(log),
	)
	states := ctrl.InitAll(nil)
	log.Debug().Int("containers", len(states)).Msg("registered containers")

	if opts.filter != "" {
		matched := search.FilterAll(ctrl, opts.filter)
		log.Debug().Str("query", opts.filter).Int("matched", matched).Msg("applied filter")
	}

	if opts.page > 0 {
		state := firstState(ctrl, opts.target)
		if state == nil {
			log.Warn().Str("target", opts.target).Msg("page target resolved to no container")
			return
		}
		state.Goto(float64(opts.page))
	}
}

// firstState picks the navigation target: the container matching the
// selector, or the first registered one when no selector is given.
func firstState(ctrl *paginator.Controller, target string) *paginator.State {
	if target != "" {
		return ctrl.RegisterSelector(target)
	}
	if states := ctrl.States(); len(states) > 0 {
		return states[0]
	}
	return nil
}
