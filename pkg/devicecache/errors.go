package devicecache

import "errors"

var (
	// ErrStoreUnavailable is returned when the backing store cannot be reached.
	ErrStoreUnavailable = errors.New("device cache store unavailable")

	// ErrCorruptEntry is returned when a stored value is not a known category.
	ErrCorruptEntry = errors.New("corrupt device cache entry")

	// ErrUnknownDriver is returned by NewFromConfig for unsupported drivers.
	ErrUnknownDriver = errors.New("unknown device cache driver")

	// ErrInvalidCapacity is returned for non-positive memory store capacities.
	ErrInvalidCapacity = errors.New("device cache capacity must be positive")
)
