// SPDX-License-Identifier: MIT
// Package ingest: sentinel error set.
// Errors returned by this package wrap one of these sentinels (match with
// errors.Is) and may carry a user hint (errors.GetAllHints).

package ingest

import "github.com/cockroachdb/errors"

var (
	// ErrUnknownFormat indicates a fixture format other than YAML or TOML.
	ErrUnknownFormat = errors.New("ingest: unknown fixture format")

	// ErrMalformed indicates a record whose rows, columns or residuals disagree.
	ErrMalformed = errors.New("ingest: malformed array record")

	// ErrNotFound indicates a lookup of an array name absent from the document.
	ErrNotFound = errors.New("ingest: array not found")

	// ErrDuplicateName indicates two records sharing one name.
	ErrDuplicateName = errors.New("ingest: duplicate array name")

	// ErrColumnMismatch indicates a typed lookup whose width differs from the record.
	ErrColumnMismatch = errors.New("ingest: column count mismatch")
)
