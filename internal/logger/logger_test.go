// SPDX-License-Identifier: MIT
package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motion/internal/logger"
)

// TestDefaultIsNop ensures logging before Initialize is safe.
func TestDefaultIsNop(t *testing.T) {
	require.NotNil(t, logger.Logger)
	assert.NotPanics(t, func() { logger.Logger.Infow("before init", "k", 1) })
}

// TestNew_JSON writes structured records at or above the level.
func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.New(&buf, true, "info")
	require.NoError(t, err)

	l.Debugw("hidden")
	l.Infow("computed mean", "array", "LASI", "rows", 3)
	require.NoError(t, l.Sync())

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "computed mean", rec["msg"])
	assert.Equal(t, "LASI", rec["array"])
	assert.EqualValues(t, 3, rec["rows"])
}

// TestNew_Console renders human-readable lines.
func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.New(&buf, false, "debug")
	require.NoError(t, err)

	l.Debugw("loaded fixture", "path", "walk.yaml")
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "loaded fixture")
	assert.Contains(t, buf.String(), "walk.yaml")
}

// TestNew_BadLevel rejects unknown levels.
func TestNew_BadLevel(t *testing.T) {
	_, err := logger.New(&bytes.Buffer{}, false, "loud")
	require.Error(t, err)
}
