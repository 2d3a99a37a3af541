package filter

import "errors"

var (
	// ErrUnknownFilter is returned when a filter name cannot be resolved.
	ErrUnknownFilter = errors.New("filter: unknown filter")

	// ErrUnknownOperation is returned for an operation type outside the
	// defined set.
	ErrUnknownOperation = errors.New("filter: unknown operation type")

	// ErrReleased is returned by Apply after Release.
	ErrReleased = errors.New("filter: descriptor released")

	// ErrMissingLookup is returned when a lookup descriptor has no lookup
	// image name, no store, or the store cannot provide the image.
	ErrMissingLookup = errors.New("filter: lookup image unavailable")

	// ErrMissingBlendImage is returned when a blend descriptor receives no
	// second image and has no blend source.
	ErrMissingBlendImage = errors.New("filter: blend image unavailable")

	// ErrCycle is returned when adding a chain to itself or to one of its
	// descendants.
	ErrCycle = errors.New("filter: chain would contain itself")

	// ErrShared is returned when adding a stage that already belongs to
	// another chain.
	ErrShared = errors.New("filter: stage already belongs to a chain")

	// ErrInvalidDefinition is returned when a definition fails validation.
	ErrInvalidDefinition = errors.New("filter: invalid definition")
)
