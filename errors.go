package perfsynth

import "errors"

var (
	// ErrInvalidHorizon is returned when the number of periods to simulate is not positive.
	ErrInvalidHorizon = errors.New("horizon must be positive")
	// ErrNoStrategies is returned when a generation request names no strategy.
	ErrNoStrategies = errors.New("no strategies to generate")
	// ErrInvalidParameter is returned for non-finite or out of range numeric inputs.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrInvalidSequenceLength is returned when an axis is planned for an empty sequence.
	ErrInvalidSequenceLength = errors.New("sequence length must be positive")
	// ErrUnknownStrategy is returned when a preset name does not exist.
	ErrUnknownStrategy = errors.New("unknown strategy")
	// ErrCorruptRandomSource reports a Source that produced values outside [0,1).
	// Generation cannot continue after it.
	ErrCorruptRandomSource = errors.New("corrupt random source")
)
