package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/image/font/sfnt"

	"github.com/tinne26/unitext/fit"
	"github.com/tinne26/unitext/font"
)

func (a *app) newFitCmd() *cobra.Command {
	var width, height int
	cmd := &cobra.Command{
		Use:   "fit --width W --height H TEXT...",
		Short: "Print the natural font size of a text in a box",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			face, err := a.loadFont()
			if err != nil {
				return err
			}
			fitter, err := fit.NewFitter(0)
			if err != nil {
				return err
			}
			request := fit.Request{
				Font:   face,
				Text:   strings.Join(args, " "),
				Width:  width,
				Height: height,
				Lower:  a.settings.MinSize,
				Upper:  a.settings.MaxSize,
				Wrap:   a.settings.Wrap,
			}
			if request.Width <= 0 || request.Height <= 0 {
				return fmt.Errorf("--width and --height must be positive, got %dx%d", width, height)
			}
			size := fitter.NaturalSize(request)
			a.logger.Debug("text fitted", zap.Int("size", size), zap.Bool("wrap", request.Wrap))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), size)
			return err
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "box width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "box height in pixels")
	cmd.Flags().Bool("wrap", true, "wrap lines at spaces to fit the box width")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")
	a.bindFlag("fit.wrap", cmd.Flags().Lookup("wrap"))
	return cmd
}

// Loads the configured font, or the default one.
func (a *app) loadFont() (*sfnt.Font, error) {
	face, name, err := font.Load(a.settings.FontPath)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	a.logger.Debug("font loaded", zap.String("name", name))
	return face, nil
}
