// SPDX-License-Identifier: MIT

// Package ingest moves numeric arrays between fixture documents and the
// array engine.
//
// A fixture document is a list of named records, each holding a column
// count, value rows and optional residuals:
//
//	arrays:
//	  - name: LASI
//	    cols: 3
//	    values: [[1, 2, 3], [0, 0, 0]]
//	    residuals: [0.4, -1]
//
// The same shape is accepted as TOML ([[arrays]] tables). Omitted residuals
// mean every row is valid. Rows with a negative residual are zeroed when a
// record is turned into an array, so documents may carry placeholder values
// for occluded samples.
//
// Typical flow:
//
//	doc, err := ingest.Load("walk.yaml")
//	lasi, err := doc.Trajectory("LASI")
//	rasi, err := doc.Trajectory("RASI")
//	width, err := array.Norm(array.Must(array.Sub(rasi, lasi)))
//	err = doc.Put("PelvisWidth", width)
//	err = ingest.Save("walk.yaml", doc)
package ingest
