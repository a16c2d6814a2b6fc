// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe FILE",
		Short: "List the arrays of a fixture with their shape and occlusion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.loadDocument(args[0])
			if err != nil {
				return err
			}
			data := pterm.TableData{{"name", "rows", "cols", "occluded"}}
			for i := range doc.Arrays {
				rec := &doc.Arrays[i]
				data = append(data, []string{
					rec.Name,
					strconv.Itoa(rec.Rows()),
					strconv.Itoa(rec.Cols),
					strconv.Itoa(rec.Occluded()),
				})
			}
			out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return errors.Wrap(err, "failed to render table")
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}
}
