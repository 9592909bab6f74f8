// Package scoring computes combat effectiveness values (CEV) for units.
// Every function is a pure computation over the supplied data set, config
// and scenario; nothing here performs I/O or keeps state between calls.
package scoring

import "errors"

var (
	// ErrUnitNotFound is returned when a unit ID is not in the data set
	ErrUnitNotFound = errors.New("unit not found")

	// ErrWeaponNotFound is returned when a unit references a weapon ID
	// that is not in the data set
	ErrWeaponNotFound = errors.New("weapon not found")

	// ErrCommanderNotFound is returned when a unit references a commander
	// ID that is not in the data set
	ErrCommanderNotFound = errors.New("commander not found")

	// ErrNoWeapon is returned when the scenario asks for a weapon mode or
	// target plane the unit cannot serve
	ErrNoWeapon = errors.New("no weapon for scenario")

	// ErrInvalidScenario is returned for scenario parameters outside their
	// documented domain
	ErrInvalidScenario = errors.New("invalid scenario")

	// ErrInvalidConfig is returned by Config.Validate for out-of-domain
	// constants
	ErrInvalidConfig = errors.New("invalid config")
)
