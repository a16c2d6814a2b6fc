// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/motion/array"
	"github.com/katalvlaran/motion/ingest"
)

func newMeanCmd(a *app) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "mean FILE",
		Short: "Occlusion-aware column mean of one array",
		Long: `Average every column of an array over its valid frames.
Occluded frames are ignored; when every frame is occluded the mean is
reported as occluded.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.loadDocument(args[0])
			if err != nil {
				return err
			}
			rec, err := doc.Lookup(name)
			if err != nil {
				return err
			}

			var m array.Data
			switch rec.Cols {
			case 1:
				m, err = meanOf[array.W1](doc, name)
			case 3:
				m, err = meanOf[array.W3](doc, name)
			case 9:
				m, err = meanOf[array.W9](doc, name)
			case 12:
				m, err = meanOf[array.W12](doc, name)
			default:
				return errors.WithHint(
					errors.Newf("array %q has %d columns", name, rec.Cols),
					"mean supports 1, 3, 9 and 12 columns")
			}
			if err != nil {
				return err
			}
			a.log.Infow("mean computed", "array", name, "rows", rec.Rows(), "occluded", rec.Occluded())

			return writeTable(cmd.OutOrStdout(), columnNames(rec.Cols), m, a.cfg.Output.Precision)
		},
	}
	cmd.Flags().StringVarP(&name, "array", "a", "", "array name")
	_ = cmd.MarkFlagRequired("array")

	return cmd
}

// meanOf computes the mean of the C-column array called name.
func meanOf[C array.Width](doc *ingest.Document, name string) (array.Data, error) {
	x, err := ingest.Get[C](doc, name)
	if err != nil {
		return nil, err
	}
	m, err := array.Mean(x)
	if err != nil {
		return nil, errors.Wrapf(err, "mean of %q", name)
	}

	return m, nil
}
