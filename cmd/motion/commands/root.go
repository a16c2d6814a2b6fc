// SPDX-License-Identifier: MIT

// Package commands implements the motion CLI.
package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/motion/internal/config"
	"github.com/katalvlaran/motion/internal/logger"
)

// app is the state shared by every command once configuration is resolved.
type app struct {
	cfg *config.Config
	log *zap.SugaredLogger
}

// flagKeys binds command-line flags to configuration keys. Flags that a
// command does not declare are skipped.
var flagKeys = map[string]string{
	"log-json":  "log.json",
	"log-level": "log.level",
	"format":    "output.format",
	"precision": "output.precision",
	"sequence":  "angles.sequence",
	"degrees":   "angles.degrees",
	"window":    "align.window",
	"penalty":   "align.penalty",
}

// NewRootCmd builds the motion command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: logger.Logger}
	var cfgPath string

	root := &cobra.Command{
		Use:   "motion",
		Short: "Occlusion-aware computations over motion-capture arrays",
		Long: `motion evaluates array expressions over marker trajectories and segment
motions stored in YAML or TOML fixture files.

Every sample carries a residual; negative residuals mark occluded samples,
which propagate through every computation and come out as zeros.

Examples:
  motion describe walk.yaml
  motion mean walk.yaml --array LASI
  motion distance walk.yaml --from LASI --to RASI
  motion frame walk.yaml --origin SACR --axis LASI --plane RASI --name Pelvis --out walk.yaml
  motion angles walk.yaml --proximal Pelvis --distal Thigh --sequence ZXY --degrees
  motion synth --kind orbit --name LASI --frames 200 --gap 50:20 -o walk.yaml
  motion align walk.yaml --a LASI --b RASI --window 10 --path`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.NewViper(cfgPath)
			if err != nil {
				return err
			}
			for name, key := range flagKeys {
				if f := cmd.Flags().Lookup(name); f != nil {
					if err = v.BindPFlag(key, f); err != nil {
						return errors.Wrapf(err, "failed to bind --%s", name)
					}
				}
			}
			if a.cfg, err = config.Load(v); err != nil {
				return err
			}
			if err = logger.Initialize(a.cfg.Log.JSON, a.cfg.Log.Level); err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			a.log = logger.Logger.Named(cmd.Name())
			a.log.Debugw("configuration resolved",
				"config", v.ConfigFileUsed(),
				"sequence", a.cfg.Angles.Sequence,
				"format", a.cfg.Output.Format)

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "config file (default ./"+config.DefaultFile+" when present)")
	pf.Bool("log-json", false, "emit logs as JSON")
	pf.String("log-level", "warn", "log level: debug, info, warn, error")
	pf.String("format", "yaml", "fixture format for documents written to stdout: yaml, toml")
	pf.Int("precision", 4, "decimals in printed tables")

	root.AddCommand(
		newDescribeCmd(a),
		newMeanCmd(a),
		newDistanceCmd(a),
		newFrameCmd(a),
		newAnglesCmd(a),
		newAlignCmd(a),
		newSynthCmd(a),
		newVersionCmd(),
	)

	return root
}
