// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/motion/array"
	"github.com/katalvlaran/motion/dtw"
	"github.com/katalvlaran/motion/ingest"
)

func newAlignCmd(a *app) *cobra.Command {
	var first, second string
	var withPath, lowMemory bool
	cmd := &cobra.Command{
		Use:   "align FILE",
		Short: "Dynamic time warping distance between two arrays",
		Long: `Align two arrays of the same width with dynamic time warping over their
valid frames. Occluded frames are skipped; the optional path reports the
matched frame numbers of both arrays.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.loadDocument(args[0])
			if err != nil {
				return err
			}
			rec, err := doc.Lookup(first)
			if err != nil {
				return err
			}

			opts := dtw.DefaultOptions()
			opts.Window = a.cfg.Align.Window
			opts.SlopePenalty = a.cfg.Align.Penalty
			opts.ReturnPath = withPath
			if lowMemory && !withPath {
				opts.MemoryMode = dtw.TwoRows
			}

			var dist float64
			var path []dtw.Coord
			switch rec.Cols {
			case 1:
				dist, path, err = alignOf[array.W1](doc, first, second, &opts)
			case 3:
				dist, path, err = alignOf[array.W3](doc, first, second, &opts)
			case 9:
				dist, path, err = alignOf[array.W9](doc, first, second, &opts)
			case 12:
				dist, path, err = alignOf[array.W12](doc, first, second, &opts)
			default:
				return errors.WithHint(
					errors.Newf("array %q has %d columns", first, rec.Cols),
					"align supports 1, 3, 9 and 12 columns")
			}
			if err != nil {
				return err
			}
			a.log.Infow("alignment computed",
				"a", first, "b", second,
				"window", opts.Window, "penalty", opts.SlopePenalty,
				"steps", len(path))

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "distance:", strconv.FormatFloat(dist, 'f', a.cfg.Output.Precision, 64))
			if len(path) == 0 {
				return nil
			}
			data := pterm.TableData{{"step", first, second}}
			for k, c := range path {
				data = append(data, []string{strconv.Itoa(k), strconv.Itoa(c.I), strconv.Itoa(c.J)})
			}
			out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return errors.Wrap(err, "failed to render table")
			}
			_, err = fmt.Fprintln(w, out)

			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&first, "a", "", "first array")
	f.StringVar(&second, "b", "", "second array")
	f.Int("window", -1, "Sakoe-Chiba band half-width over valid frames (-1 disables)")
	f.Float64("penalty", 0, "cost added to every insertion or deletion step")
	f.BoolVar(&withPath, "path", false, "print the warping path")
	f.BoolVar(&lowMemory, "low-memory", false, "keep two DP rows only (ignored with --path)")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")

	return cmd
}

// alignOf runs dtw.Align on the C-column arrays called first and second.
func alignOf[C array.Width](doc *ingest.Document, first, second string, opts *dtw.Options) (float64, []dtw.Coord, error) {
	x, err := ingest.Get[C](doc, first)
	if err != nil {
		return 0, nil, err
	}
	y, err := ingest.Get[C](doc, second)
	if err != nil {
		return 0, nil, err
	}
	dist, path, err := dtw.Align[C](x, y, opts)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "align %q with %q", first, second)
	}

	return dist, path, nil
}
