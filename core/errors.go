package core

import "errors"

var (
	// ErrDomain marks inputs outside a function's domain. Callers at the
	// function-table boundary turn it into a missing value.
	ErrDomain = errors.New("input outside function domain")
	// ErrUnknownConstant is returned for a name absent from the constants registry.
	ErrUnknownConstant = errors.New("unknown constant")
	// ErrUnknownUnit is returned for a unit tag not defined for the quantity kind.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrDepthOutOfRange is returned when a sector depth is negative or above
	// model.MaxSectorDepth. It signals misuse rather than bad data.
	ErrDepthOutOfRange = errors.New("sector depth out of range")
)

// IsDomainError reports whether err describes bad per-row data, which should
// surface as a missing value rather than a failure.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrDomain) ||
		errors.Is(err, ErrUnknownConstant) ||
		errors.Is(err, ErrUnknownUnit)
}
