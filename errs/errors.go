// Package errs defines the error taxonomy shared by all geomgrid packages.
//
// Errors come in two layers: four category sentinels that callers branch on
// with errors.Is, and finer sentinels that wrap a category and carry the
// canonical message for one specific failure. A fine sentinel matches both
// itself and its category:
//
//	_, err := geomgrid.ReadFile("broken.geom")
//	if errors.Is(err, errs.ErrFormat) { ... }        // any format problem
//	if errors.Is(err, errs.ErrHeaderMarker) { ... }  // this format problem
package errs

import (
	"errors"
	"fmt"
)

// Category sentinels. Every error produced by this module wraps exactly one
// of these.
var (
	// ErrFormat reports a malformed geometry file: bad marker line, missing
	// header fields, unparsable tokens.
	ErrFormat = errors.New("invalid geometry format")

	// ErrDimensionMismatch reports a disagreement between the declared grid
	// and the data actually present, either in a file body or in a value
	// passed to a mutator.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrValidation reports an attribute value that violates the model
	// invariants: non-positive size entry, homogenization below 1, and so on.
	ErrValidation = errors.New("invalid geometry attribute")

	// ErrBounds reports a crop window that reaches outside the source grid.
	ErrBounds = errors.New("window out of bounds")
)

// Format errors.
var (
	// ErrHeaderMarker reports a first line that does not carry a header line
	// count followed by a keyword starting with "head".
	ErrHeaderMarker = fmt.Errorf("%w: header length information missing or invalid", ErrFormat)

	// ErrMissingGeometry reports a header without a grid, size, or origin line.
	ErrMissingGeometry = fmt.Errorf("%w: no grid/size/origin info found", ErrFormat)

	// ErrBadToken reports a header or body token that failed numeric parsing.
	ErrBadToken = fmt.Errorf("%w: unparsable token", ErrFormat)
)

// Validation errors.
var (
	ErrInvalidSize           = fmt.Errorf("%w: size must have 3 positive entries", ErrValidation)
	ErrInvalidOrigin         = fmt.Errorf("%w: origin must have 3 entries", ErrValidation)
	ErrInvalidHomogenization = fmt.Errorf("%w: homogenization must be a positive integer", ErrValidation)
	ErrInvalidField          = fmt.Errorf("%w: microstructure field is invalid", ErrValidation)
)
