// SPDX-License-Identifier: MIT
// Package: bstviz/preset
//
// errors.go — sentinel errors for the preset package.
//
// Callers branch with errors.Is(err, ErrX); context is attached by wrapping.

package preset

import "github.com/cockroachdb/errors"

// ErrUnknownPreset indicates a Lookup for a name or slug that is not defined.
var ErrUnknownPreset = errors.New("preset: unknown preset")

// ErrBadSize indicates a negative length or depth, or a depth whose value
// range would overflow.
var ErrBadSize = errors.New("preset: invalid size")
