// SPDX-License-Identifier: MIT
// Package ingest - fixture codecs (YAML via gopkg.in/yaml.v3, TOML via
// github.com/BurntSushi/toml).
//
// Exposed API:
//   - ParseFormat(s) / FormatOf(path) -> Format
//   - Decode(r, f) -> *Document (validated)
//   - Encode(w, f, doc)
//   - Load(path) / Save(path, doc), format chosen by file extension
//
// Unknown keys are rejected in both formats so typos do not silently drop data.

package ingest

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Format names a fixture encoding.
type Format string

const (
	// YAML is the default fixture format (.yaml, .yml).
	YAML Format = "yaml"

	// TOML is the alternative fixture format (.toml).
	TOML Format = "toml"
)

// ParseFormat maps a user-supplied name ("yaml", "yml", "toml") to a Format.
//
// Errors: ErrUnknownFormat.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	default:
		return "", errors.WithHint(
			errors.Wrapf(ErrUnknownFormat, "%q", s),
			"use yaml or toml")
	}
}

// FormatOf derives the format from the extension of path.
//
// Errors: ErrUnknownFormat.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Decode reads and validates one fixture document from r.
// An empty YAML stream decodes to an empty document.
//
// Errors: ErrUnknownFormat, ErrMalformed, ErrDuplicateName, decoder errors.
func Decode(r io.Reader, f Format) (*Document, error) {
	var doc Document
	switch f {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrap(err, "failed to decode YAML fixture")
		}
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode TOML fixture")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.WithHintf(
				errors.Wrapf(ErrMalformed, "unknown key %q", undecoded[0].String()),
				"records accept only name, cols, values and residuals")
		}
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", string(f))
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Encode validates doc and writes it to w.
//
// Errors: ErrUnknownFormat, ErrMalformed, ErrDuplicateName, encoder errors.
func Encode(w io.Writer, f Format, doc *Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return errors.Wrap(err, "failed to encode YAML fixture")
		}
		return errors.Wrap(enc.Close(), "failed to flush YAML fixture")
	case TOML:
		return errors.Wrap(toml.NewEncoder(w).Encode(doc), "failed to encode TOML fixture")
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", string(f))
	}
}

// Load reads the fixture at path; the extension selects the format.
func Load(path string) (*Document, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open fixture %s", path)
	}
	defer file.Close()

	doc, err := Decode(file, f)
	if err != nil {
		return nil, errors.Wrapf(err, "fixture %s", path)
	}

	return doc, nil
}

// Save writes doc to path; the extension selects the format.
// The file is only written once encoding succeeded.
func Save(path string, doc *Document) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err = Encode(&buf, f, doc); err != nil {
		return errors.Wrapf(err, "fixture %s", path)
	}
	if err = os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "failed to write fixture %s", path)
	}

	return nil
}
