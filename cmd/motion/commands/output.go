// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"

	"github.com/katalvlaran/motion/array"
	"github.com/katalvlaran/motion/ingest"
)

// motionColumns names the 12 columns of a motion in [u v w o] order.
var motionColumns = []string{
	"ux", "uy", "uz", "vx", "vy", "vz", "wx", "wy", "wz", "ox", "oy", "oz",
}

// columnNames returns readable headers for a cols-wide array.
func columnNames(cols int) []string {
	switch cols {
	case 1:
		return []string{"value"}
	case 3:
		return []string{"x", "y", "z"}
	case 9, 12:
		return motionColumns[:cols]
	}
	names := make([]string, cols)
	for j := range names {
		names[j] = "c" + strconv.Itoa(j)
	}

	return names
}

// writeTable renders d finalized, one line per frame. Occluded frames show
// "-" instead of values.
func writeTable(w io.Writer, header []string, d array.Data, precision int) error {
	values, residuals, err := array.Export(d)
	if err != nil {
		return err
	}
	cols := d.Cols()

	head := make([]string, 0, cols+2)
	head = append(head, "frame")
	head = append(head, header...)
	head = append(head, "residual")
	data := pterm.TableData{head}

	for i, r := range residuals {
		row := make([]string, 0, cols+2)
		row = append(row, strconv.Itoa(i))
		for j := 0; j < cols; j++ {
			if r < 0 {
				row = append(row, "-")
				continue
			}
			row = append(row, strconv.FormatFloat(values[i*cols+j], 'f', precision, 64))
		}
		row = append(row, strconv.FormatFloat(r, 'g', -1, 64))
		data = append(data, row)
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render table")
	}
	_, err = fmt.Fprintln(w, out)

	return err
}

// loadDocument reads a fixture and logs its shape.
func (a *app) loadDocument(path string) (*ingest.Document, error) {
	doc, err := ingest.Load(path)
	if err != nil {
		return nil, err
	}
	a.log.Debugw("fixture loaded", "path", path, "arrays", len(doc.Arrays))

	return doc, nil
}

// writeDocument saves doc to out, or encodes it to w in the configured
// format when out is empty.
func (a *app) writeDocument(w io.Writer, doc *ingest.Document, out string) error {
	if out != "" {
		if err := ingest.Save(out, doc); err != nil {
			return err
		}
		a.log.Infow("fixture written", "path", out, "arrays", len(doc.Arrays))

		return nil
	}
	f, err := ingest.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return err
	}

	return ingest.Encode(w, f, doc)
}
