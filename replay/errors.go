package replay

import "errors"

var (
	// ErrUnknownOp is returned for op names no Action understands.
	ErrUnknownOp = errors.New("replay: unknown op")

	// ErrUnknownLayer is returned when an action names a layer that does
	// not exist.
	ErrUnknownLayer = errors.New("replay: unknown layer")

	// ErrInvalidAction is returned when an action's fields cannot be
	// interpreted.
	ErrInvalidAction = errors.New("replay: invalid action")

	// ErrNoExporter is returned by export actions when the player has no
	// exporter configured.
	ErrNoExporter = errors.New("replay: no exporter configured")
)
