package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/EdwardMesmine/VDPPDF-Merger/pkg/api"
)

// mergeOpts holds the command-line flags for the merge command.
type mergeOpts struct {
	output      string  // output file path
	frontX      float64 // front overlay X offset; negative auto-centers
	frontY      float64 // front overlay Y offset; negative auto-centers
	startNumber int     // first back-side number
	numberX     float64 // number X position on the back side
	numberY     float64 // number Y position on the back side
	font        string  // stamp typeface family
	fontSize    float64 // stamp typeface size
	title       string  // output document title
}

// newMergeCmd creates the merge command for composing the double-sided
// document from a master template and a content PDF.
func newMergeCmd() *cobra.Command {
	defaults := api.DefaultOptions()
	opts := mergeOpts{
		frontX:      defaults.FrontX,
		frontY:      defaults.FrontY,
		startNumber: defaults.StartNumber,
		numberX:     defaults.NumberX,
		numberY:     defaults.NumberY,
		font:        defaults.FontFamily,
		fontSize:    defaults.FontSize,
	}

	cmd := &cobra.Command{
		Use:   "merge <master.pdf> <content.pdf>",
		Short: "Compose a double-sided document with numbered back pages",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.startNumber < 1 {
				return fmt.Errorf("--start-number must be at least 1, got %d", opts.startNumber)
			}
			return runMerge(cmd.Context(), args[0], args[1], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <content>_double_sided.pdf)")
	cmd.Flags().Float64Var(&opts.frontX, "front-x", opts.frontX, "front overlay X position (negative auto-centers)")
	cmd.Flags().Float64Var(&opts.frontY, "front-y", opts.frontY, "front overlay Y position (negative auto-centers)")
	cmd.Flags().IntVarP(&opts.startNumber, "start-number", "n", opts.startNumber, "starting back-side number")
	cmd.Flags().Float64Var(&opts.numberX, "number-x", opts.numberX, "number X position on the back side")
	cmd.Flags().Float64Var(&opts.numberY, "number-y", opts.numberY, "number Y position on the back side")
	cmd.Flags().StringVar(&opts.font, "font", opts.font, "stamp typeface family")
	cmd.Flags().Float64Var(&opts.fontSize, "font-size", opts.fontSize, "stamp typeface size in points")
	cmd.Flags().StringVar(&opts.title, "title", "", "output document title")

	return cmd
}

func runMerge(ctx context.Context, masterPath, contentPath string, opts *mergeOpts) error {
	logger := loggerFromContext(ctx)
	start := time.Now()

	output := opts.output
	if output == "" {
		ext := filepath.Ext(contentPath)
		output = strings.TrimSuffix(contentPath, ext) + "_double_sided.pdf"
	}

	merger := api.NewWithOptions(api.Options{
		FrontX:      opts.frontX,
		FrontY:      opts.frontY,
		StartNumber: opts.startNumber,
		NumberX:     opts.numberX,
		NumberY:     opts.numberY,
		FontFamily:  opts.font,
		FontSize:    opts.fontSize,
		Title:       opts.title,
	})

	logger.Debug("Composing double-sided document",
		"master", masterPath, "content", contentPath, "startNumber", opts.startNumber)

	if err := merger.MergeFiles(masterPath, contentPath, output); err != nil {
		return err
	}

	logger.Infof("Wrote %s (%s)", output, time.Since(start).Round(time.Millisecond))
	return nil
}
