// errors.go — sentinel errors for the core package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition site.
//   - Call sites attach context with fmt.Errorf("%s: %w", ...).

package core

import (
	"errors"
	"fmt"
)

// ErrEmptyEmbryo is returned by NewNetwork when given zero embryo items.
// A Network must start life with at least one artifact.
var ErrEmptyEmbryo = errors.New("core: embryo must not be empty")

// ErrNetworkFull is returned by Grow when the network has already reached
// its configured maximum size. This is a fatal misconfiguration per the
// spec's error model, not a condition callers are expected to retry.
var ErrNetworkFull = errors.New("core: network at maximum size")

// ErrUnknownArtifact is returned whenever an operation is given an artifact
// id outside [0, Len()).
var ErrUnknownArtifact = errors.New("core: unknown artifact id")

// ErrInvalidEpoch is returned whenever an operation is given an epoch index
// outside [0, len(epochs)).
var ErrInvalidEpoch = errors.New("core: invalid epoch index")

// ErrNoAntecedents is returned by Grow when no candidate artifact is found
// to form an edge with (every epoch from sinceEpoch onward had an empty
// context and no recorded accesses). This should not occur in a network
// that started from a non-empty embryo and only ever grew through Grow.
var ErrNoAntecedents = errors.New("core: no antecedent artifacts available")

// wrapf prefixes err with a method name for easier log correlation while
// preserving errors.Is semantics via %w.
func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
