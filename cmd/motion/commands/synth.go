// SPDX-License-Identifier: MIT

package commands

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/motion/array"
	"github.com/katalvlaran/motion/ingest"
	"github.com/katalvlaran/motion/synth"
)

// synthKinds lists the generators by name.
var synthKinds = []string{"pulse", "chirp", "orbit", "spin"}

type synthOptions struct {
	kind, name, out string
	frames          int
	seed            int64
	amplitude       float64
	frequency       float64
	noise           float64
	dropout         float64
	gaps            []string
}

func newSynthCmd(a *app) *cobra.Command {
	var o synthOptions
	cmd := &cobra.Command{
		Use:   "synth [FILE]",
		Short: "Generate a synthetic array with optional occlusion",
		Long: `Generate a deterministic synthetic array and store it under --name.

Kinds: pulse and chirp (1 column), orbit (3 columns), spin (12 columns).
When FILE is given the array is added to that document; otherwise a new
document is started. The result goes to --out, or to stdout.

Example:
  motion synth --kind orbit --name LASI --frames 200 --gap 50:20 --dropout 0.05 -o walk.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := o.options()
			if err != nil {
				return err
			}
			doc := &ingest.Document{}
			if len(args) == 1 {
				if doc, err = a.loadDocument(args[0]); err != nil {
					return err
				}
			}

			x, err := o.generate(opts)
			if err != nil {
				return errors.Wrapf(err, "synth %s", o.kind)
			}
			if err = doc.Put(o.name, x); err != nil {
				return err
			}
			a.log.Infow("array generated",
				"kind", o.kind, "name", o.name,
				"frames", x.Rows(), "seed", o.seed)

			return a.writeDocument(cmd.OutOrStdout(), doc, o.out)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.kind, "kind", "", "generator: "+strings.Join(synthKinds, ", "))
	f.StringVar(&o.name, "name", "", "name of the array to store")
	f.StringVarP(&o.out, "out", "o", "", "output fixture (default: stdout)")
	f.IntVar(&o.frames, "frames", 100, "number of frames")
	f.Int64Var(&o.seed, "seed", 1, "random seed for noise and dropout")
	f.Float64Var(&o.amplitude, "amplitude", 1, "amplitude or orbit radius")
	f.Float64Var(&o.frequency, "frequency", 0.125, "base frequency in cycles per frame")
	f.Float64Var(&o.noise, "noise", 0, "Gaussian noise sigma")
	f.Float64Var(&o.dropout, "dropout", 0, "probability of occluding each frame, in [0, 1)")
	f.StringSliceVar(&o.gaps, "gap", nil, "occluded run FROM:N (repeatable)")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// options validates the flags and turns them into generator options.
// Validation happens here because option constructors panic on bad values.
func (o *synthOptions) options() ([]synth.Option, error) {
	switch {
	case o.frames < 1:
		return nil, errors.Newf("--frames must be >= 1, got %d", o.frames)
	case o.amplitude <= 0:
		return nil, errors.Newf("--amplitude must be > 0, got %g", o.amplitude)
	case o.frequency <= 0:
		return nil, errors.Newf("--frequency must be > 0, got %g", o.frequency)
	case o.noise < 0:
		return nil, errors.Newf("--noise must be >= 0, got %g", o.noise)
	case o.dropout < 0 || o.dropout >= 1:
		return nil, errors.Newf("--dropout must be in [0, 1), got %g", o.dropout)
	}

	opts := []synth.Option{
		synth.WithAmplitude(o.amplitude),
		synth.WithFrequency(o.frequency),
		synth.WithNoise(o.noise),
		synth.WithDropout(o.dropout),
	}
	for _, g := range o.gaps {
		from, n, err := parseGap(g)
		if err != nil {
			return nil, err
		}
		opts = append(opts, synth.WithGap(from, n))
	}

	return opts, nil
}

// generate runs the generator named by o.kind.
func (o *synthOptions) generate(opts []synth.Option) (array.Data, error) {
	switch o.kind {
	case "pulse":
		return synth.Pulse(o.frames, o.seed, opts...)
	case "chirp":
		return synth.Chirp(o.frames, o.seed, opts...)
	case "orbit":
		return synth.Orbit(o.frames, o.seed, opts...)
	case "spin":
		return synth.Spin(o.frames, o.seed, opts...)
	}

	return nil, errors.WithHintf(errors.Newf("unknown kind %q", o.kind),
		"use one of: %s", strings.Join(synthKinds, ", "))
}

// parseGap reads "FROM:N".
func parseGap(s string) (from, n int, err error) {
	a, b, ok := strings.Cut(s, ":")
	if ok {
		from, err = strconv.Atoi(a)
		if err == nil {
			n, err = strconv.Atoi(b)
		}
	}
	if !ok || err != nil || from < 0 || n < 1 {
		return 0, 0, errors.WithHint(errors.Newf("invalid gap %q", s),
			"expected FROM:N with FROM >= 0 and N >= 1, e.g. 50:20")
	}

	return from, n, nil
}
