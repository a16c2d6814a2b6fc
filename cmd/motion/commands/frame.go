// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/motion/array"
)

type frameOptions struct {
	origin, axis, plane string
	name, out           string
}

func newFrameCmd(a *app) *cobra.Command {
	var o frameOptions
	cmd := &cobra.Command{
		Use:   "frame FILE",
		Short: "Build a segment motion from three marker trajectories",
		Long: `Build a right-handed orthonormal frame per sample:

  u = normalized(axis - origin)
  w = normalized(u x (plane - origin))
  v = w x u
  o = origin

A sample is valid only when all three markers are valid. The motion is
stored under --name and the document is written to --out, or to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.loadDocument(args[0])
			if err != nil {
				return err
			}
			m, err := o.build(doc.Trajectory)
			if err != nil {
				return errors.Wrapf(err, "frame %q", o.name)
			}
			if err = doc.Put(o.name, m); err != nil {
				return err
			}
			a.log.Infow("frame built", "name", o.name, "rows", m.Rows(), "occluded", m.IsOccluded())

			return a.writeDocument(cmd.OutOrStdout(), doc, o.out)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.origin, "origin", "", "origin marker")
	f.StringVar(&o.axis, "axis", "", "marker defining the first axis")
	f.StringVar(&o.plane, "plane", "", "marker defining the first plane")
	f.StringVar(&o.name, "name", "", "name of the motion to store")
	f.StringVarP(&o.out, "out", "o", "", "output fixture (default: stdout)")
	for _, req := range []string{"origin", "axis", "plane", "name"} {
		_ = cmd.MarkFlagRequired(req)
	}

	return cmd
}

// build computes the motion from the named markers.
func (o *frameOptions) build(lookup func(string) (*array.Trajectory, error)) (*array.Motion, error) {
	origin, err := lookup(o.origin)
	if err != nil {
		return nil, err
	}
	axis, err := lookup(o.axis)
	if err != nil {
		return nil, err
	}
	plane, err := lookup(o.plane)
	if err != nil {
		return nil, err
	}

	toAxis, err := array.Sub(axis, origin)
	if err != nil {
		return nil, err
	}
	u, err := array.Normalized(toAxis)
	if err != nil {
		return nil, err
	}
	toPlane, err := array.Sub(plane, origin)
	if err != nil {
		return nil, err
	}
	normal, err := array.Cross(u, toPlane)
	if err != nil {
		return nil, err
	}
	w, err := array.Normalized(normal)
	if err != nil {
		return nil, err
	}
	v, err := array.Cross(w, u)
	if err != nil {
		return nil, err
	}

	return array.JoinMotion(u, v, w, origin)
}
