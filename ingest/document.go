// SPDX-License-Identifier: MIT
// Package ingest - Document & Record: the decoded fixture model.
//
// Purpose:
//   - Hold named records exactly as they appear in a fixture file.
//   - Convert records to typed arrays (Trajectory, Scalar, Motion, Get[C]).
//   - Store any array expression back as a record (Put).

package ingest

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/motion/array"
)

// Record is one named array in a fixture document.
type Record struct {
	Name      string      `yaml:"name" toml:"name"`
	Cols      int         `yaml:"cols" toml:"cols"`
	Values    [][]float64 `yaml:"values,flow" toml:"values"`
	Residuals []float64   `yaml:"residuals,omitempty,flow" toml:"residuals,omitempty"`
}

// Document is the root of a fixture file.
type Document struct {
	Arrays []Record `yaml:"arrays" toml:"arrays"`
}

// Rows returns the number of samples of r.
func (r *Record) Rows() int { return len(r.Values) }

// Occluded counts the rows whose residual is negative.
func (r *Record) Occluded() int {
	n := 0
	for _, res := range r.Residuals {
		if res < 0 {
			n++
		}
	}

	return n
}

// Validate checks that every row has Cols values and that residuals, when
// present, cover every row.
//
// Errors: ErrMalformed.
func (r *Record) Validate() error {
	if r.Name == "" {
		return errors.Wrap(ErrMalformed, "record without name")
	}
	if r.Cols < 1 {
		return errors.Wrapf(ErrMalformed, "array %q: cols = %d", r.Name, r.Cols)
	}
	for i, row := range r.Values {
		if len(row) != r.Cols {
			return errors.Wrapf(ErrMalformed, "array %q: row %d has %d values, want %d",
				r.Name, i, len(row), r.Cols)
		}
	}
	if r.Residuals != nil && len(r.Residuals) != len(r.Values) {
		return errors.WithHint(
			errors.Wrapf(ErrMalformed, "array %q: %d residuals for %d rows",
				r.Name, len(r.Residuals), len(r.Values)),
			"omit residuals entirely to mark every row valid")
	}

	return nil
}

// flatten returns row-major values and one residual per row (zero when
// the record omits residuals).
func (r *Record) flatten() (values, residuals []float64) {
	values = make([]float64, 0, len(r.Values)*r.Cols)
	for _, row := range r.Values {
		values = append(values, row...)
	}
	residuals = make([]float64, len(r.Values))
	copy(residuals, r.Residuals)

	return values, residuals
}

// Validate checks every record and the uniqueness of names.
//
// Errors: ErrMalformed, ErrDuplicateName.
func (d *Document) Validate() error {
	seen := make(map[string]struct{}, len(d.Arrays))
	for i := range d.Arrays {
		if err := d.Arrays[i].Validate(); err != nil {
			return err
		}
		name := d.Arrays[i].Name
		if _, dup := seen[name]; dup {
			return errors.Wrapf(ErrDuplicateName, "array %q", name)
		}
		seen[name] = struct{}{}
	}

	return nil
}

// Names returns the record names in document order.
func (d *Document) Names() []string {
	names := make([]string, len(d.Arrays))
	for i := range d.Arrays {
		names[i] = d.Arrays[i].Name
	}

	return names
}

// Lookup returns the record called name.
//
// Errors: ErrNotFound.
func (d *Document) Lookup(name string) (*Record, error) {
	for i := range d.Arrays {
		if d.Arrays[i].Name == name {
			return &d.Arrays[i], nil
		}
	}

	return nil, errors.WithHintf(
		errors.Wrapf(ErrNotFound, "array %q", name),
		"available arrays: %v", d.Names())
}

// Get converts the record called name into a C-column array.
// Occluded rows are zeroed; residuals are kept verbatim.
//
// Errors: ErrNotFound, ErrColumnMismatch, and array construction errors.
func Get[C array.Width](d *Document, name string) (*array.Array[C], error) {
	rec, err := d.Lookup(name)
	if err != nil {
		return nil, err
	}
	if want := array.ColsOf[C](); rec.Cols != want {
		return nil, errors.Wrapf(ErrColumnMismatch, "array %q has %d columns, want %d",
			name, rec.Cols, want)
	}
	if err = rec.Validate(); err != nil {
		return nil, err
	}
	values, residuals := rec.flatten()
	a, err := array.FromData[C](values, residuals)
	if err != nil {
		return nil, errors.Wrapf(err, "array %q", name)
	}

	return a, nil
}

// Trajectory returns the 3-column array called name.
func (d *Document) Trajectory(name string) (*array.Trajectory, error) {
	return Get[array.W3](d, name)
}

// Scalar returns the 1-column array called name.
func (d *Document) Scalar(name string) (*array.Scalar, error) {
	return Get[array.W1](d, name)
}

// Motion returns the 12-column array called name as a motion.
func (d *Document) Motion(name string) (*array.Motion, error) {
	a, err := Get[array.W12](d, name)
	if err != nil {
		return nil, err
	}

	return array.MotionFromData(a.Values(), a.Residuals())
}

// Put stores x under name, replacing any record with the same name.
// The expression is finalized first (see array.Export), so occluded rows are
// written as zeros with residual -1.
//
// Errors: ErrMalformed (empty name), and array.Export errors.
func (d *Document) Put(name string, x array.Data) error {
	if name == "" {
		return errors.Wrap(ErrMalformed, "record without name")
	}
	values, residuals, err := array.Export(x)
	if err != nil {
		return errors.Wrapf(err, "array %q", name)
	}
	cols := x.Cols()
	rec := Record{
		Name:      name,
		Cols:      cols,
		Values:    make([][]float64, len(residuals)),
		Residuals: residuals,
	}
	for i := range rec.Values {
		rec.Values[i] = values[i*cols : (i+1)*cols : (i+1)*cols]
	}

	for i := range d.Arrays {
		if d.Arrays[i].Name == name {
			d.Arrays[i] = rec
			return nil
		}
	}
	d.Arrays = append(d.Arrays, rec)

	return nil
}
