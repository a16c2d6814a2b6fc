// SPDX-License-Identifier: MIT

package commands

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/motion/array"
	"github.com/katalvlaran/motion/internal/config"
)

func newAnglesCmd(a *app) *cobra.Command {
	var proximal, distal, name, out string
	cmd := &cobra.Command{
		Use:   "angles FILE",
		Short: "Joint angles between two segment motions",
		Long: `Express the distal motion in the proximal frame (inverse(proximal) o distal)
and decompose the relative orientation into Euler angles about --sequence.

The first angle lies in [0, 180] degrees, the others in [-180, 180].
With --name the angles are also stored in the document and written to --out
(or stdout).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq := a.cfg.Angles.Sequence
			axes, err := config.ParseSequence(seq)
			if err != nil {
				return err
			}
			doc, err := a.loadDocument(args[0])
			if err != nil {
				return err
			}
			p, err := doc.Motion(proximal)
			if err != nil {
				return err
			}
			d, err := doc.Motion(distal)
			if err != nil {
				return err
			}

			inv, err := array.Inverse(p)
			if err != nil {
				return err
			}
			rel, err := array.Transform(inv, d)
			if err != nil {
				return errors.Wrapf(err, "%s in %s", distal, proximal)
			}
			angles, err := array.EulerAngles(rel, axes[0], axes[1], axes[2])
			if err != nil {
				return err
			}
			if a.cfg.Angles.Degrees {
				if angles, err = array.Scale(angles, 180/math.Pi); err != nil {
					return err
				}
			}
			a.log.Infow("angles computed", "proximal", proximal, "distal", distal,
				"sequence", seq, "degrees", a.cfg.Angles.Degrees)

			header := strings.Split(strings.ToUpper(seq), "")
			if err = writeTable(cmd.OutOrStdout(), header, angles, a.cfg.Output.Precision); err != nil {
				return err
			}
			if name == "" {
				return nil
			}
			if err = doc.Put(name, angles); err != nil {
				return err
			}

			return a.writeDocument(cmd.OutOrStdout(), doc, out)
		},
	}
	f := cmd.Flags()
	f.StringVar(&proximal, "proximal", "", "proximal segment motion")
	f.StringVar(&distal, "distal", "", "distal segment motion")
	f.String("sequence", "XYZ", "Euler axis sequence, e.g. XYZ, ZXY, ZXZ")
	f.Bool("degrees", false, "report degrees instead of radians")
	f.StringVar(&name, "name", "", "store the angles under this name")
	f.StringVarP(&out, "out", "o", "", "output fixture when --name is set (default: stdout)")
	_ = cmd.MarkFlagRequired("proximal")
	_ = cmd.MarkFlagRequired("distal")

	return cmd
}
