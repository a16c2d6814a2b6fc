// SPDX-License-Identifier: MIT

package config

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrBadSequence indicates an Euler sequence that is not three axis letters
// with no axis repeated back to back.
var ErrBadSequence = errors.New("config: invalid Euler axis sequence")

// ParseSequence maps an axis sequence such as "XYZ" or "zxz" to the axis
// indices (0 = X, 1 = Y, 2 = Z) taken by array.EulerAngles.
func ParseSequence(s string) ([3]int, error) {
	var axes [3]int
	up := strings.ToUpper(strings.TrimSpace(s))
	if len(up) != 3 {
		return axes, errors.WithHint(
			errors.Wrapf(ErrBadSequence, "%q", s),
			"use three letters from X, Y, Z such as XYZ, ZYX or ZXZ")
	}
	for i := 0; i < 3; i++ {
		idx := strings.IndexByte("XYZ", up[i])
		if idx < 0 {
			return axes, errors.Wrapf(ErrBadSequence, "%q: axis %q", s, up[i])
		}
		axes[i] = idx
	}
	if axes[0] == axes[1] || axes[1] == axes[2] {
		return axes, errors.Wrapf(ErrBadSequence, "%q: consecutive axes must differ", s)
	}

	return axes, nil
}
