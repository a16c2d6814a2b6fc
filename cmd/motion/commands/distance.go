// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/motion/array"
)

func newDistanceCmd(a *app) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "distance FILE",
		Short: "Per-frame distance between two trajectories and its mean",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.loadDocument(args[0])
			if err != nil {
				return err
			}
			src, err := doc.Trajectory(from)
			if err != nil {
				return err
			}
			dst, err := doc.Trajectory(to)
			if err != nil {
				return err
			}

			diff, err := array.Sub(dst, src)
			if err != nil {
				return errors.Wrapf(err, "%s - %s", to, from)
			}
			dist, err := array.Norm(diff)
			if err != nil {
				return err
			}
			mean, err := array.Mean(dist)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if err = writeTable(w, []string{"distance"}, dist, a.cfg.Output.Precision); err != nil {
				return err
			}
			if mean.Residual(0) < 0 {
				fmt.Fprintln(w, "mean: occluded")
				return nil
			}
			m, err := array.Float(mean)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, "mean:", strconv.FormatFloat(m, 'f', a.cfg.Output.Precision, 64))

			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "first trajectory")
	cmd.Flags().StringVar(&to, "to", "", "second trajectory")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
