package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/sync/errgroup"

	"github.com/tinne26/unitext"
	"github.com/tinne26/unitext/fit"
	"github.com/tinne26/unitext/font"
	"github.com/tinne26/unitext/layout"
)

// Result of planning a single box.
type boxReport struct {
	Name    string
	Natural int // natural size within the document's range
	Fitted  int // size after synchronization
}

// Result of planning a layout document.
type planReport struct {
	Path        string
	MinSize     int
	MaxSize     int
	UnifiedSize int
	Boxes       []boxReport
}

func (a *app) newPlanCmd() *cobra.Command {
	var deferred bool
	cmd := &cobra.Command{
		Use:   "plan LAYOUT.yaml...",
		Short: "Compute the unified font size of each layout document",
		Long: `Loads each layout document, fits every box and prints the natural size
of each box along with the unified size shared by all of them.

Documents are processed concurrently, but results are printed in the
order given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			face, err := a.loadFont()
			if err != nil {
				return err
			}
			reports, err := planDocuments(cmd.Context(), args, face, a.settings, deferred, a.logger)
			if err != nil {
				return err
			}
			return writeReports(cmd.OutOrStdout(), reports)
		},
	}
	cmd.Flags().BoolVar(&deferred, "deferred", false, "recalculate on the next host tick instead of immediately")
	return cmd
}

// Plans all the documents concurrently. Each document gets its own host
// and fitter, as those are not safe for concurrent use.
func planDocuments(ctx context.Context, paths []string, face *sfnt.Font, settings Settings, deferred bool, logger *zap.Logger) ([]*planReport, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	reports := make([]*planReport, len(paths))
	group, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report, err := planDocument(path, face, settings, deferred, logger.With(zap.String("document", path)))
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func planDocument(path string, face *sfnt.Font, settings Settings, deferred bool, logger *zap.Logger) (*planReport, error) {
	doc, err := layout.LoadDocument(path)
	if err != nil {
		return nil, err
	}
	minSize, maxSize := doc.SizeRange(settings.MinSize, settings.MaxSize)

	fitter, err := fit.NewFitter(settings.CacheEntries)
	if err != nil {
		return nil, err
	}
	host := layout.NewHost(fitter)
	host.SetLogger(logger)
	boxes := doc.Build(host, face)

	report := &planReport{Path: path, MinSize: minSize, MaxSize: maxSize}
	widgets := make([]unitext.Widget, 0, len(boxes))
	for _, box := range boxes {
		warnMissingRunes(logger, box)
		request := box.FitRequest()
		request.Lower, request.Upper = minSize, maxSize
		report.Boxes = append(report.Boxes, boxReport{Name: box.Name(), Natural: fitter.NaturalSize(request)})
		widgets = append(widgets, box)
	}

	config := unitext.Config{
		MinSize:                   minSize,
		MaxSize:                   maxSize,
		DeferInitialRecalculation: deferred,
		Logger:                    logger,
	}
	sync, err := unitext.NewSynchronizer(host, config, widgets...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if deferred {
		host.Tick() // runs the deferred recalculation
	}
	host.Tick() // lays boxes out with their synchronized bounds

	report.UnifiedSize = sync.GetUnifiedSize()
	for i, box := range boxes {
		report.Boxes[i].Fitted = box.GetFittedSize()
	}
	return report, nil
}

func warnMissingRunes(logger *zap.Logger, box *layout.Box) {
	request := box.FitRequest()
	missing, err := font.GetMissingRunes(request.Font, request.Text)
	if err != nil {
		logger.Warn("failed to check glyph coverage", zap.String("box", box.Name()), zap.Error(err))
		return
	}
	if len(missing) > 0 {
		logger.Warn("font is missing glyphs", zap.String("box", box.Name()), zap.String("runes", string(missing)))
	}
}

func writeReports(out io.Writer, reports []*planReport) error {
	for i, report := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		if err := writeReport(out, report); err != nil {
			return err
		}
	}
	return nil
}

func writeReport(out io.Writer, report *planReport) error {
	_, err := fmt.Fprintf(out, "%s: unified size %d (range [%d, %d], %d boxes)\n",
		report.Path, report.UnifiedSize, report.MinSize, report.MaxSize, len(report.Boxes))
	if err != nil || len(report.Boxes) == 0 {
		return err
	}

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "  NAME\tNATURAL\tFITTED")
	for _, box := range report.Boxes {
		fmt.Fprintf(writer, "  %s\t%d\t%d\n", strings.ReplaceAll(box.Name, "\t", " "), box.Natural, box.Fitted)
	}
	return writer.Flush()
}
