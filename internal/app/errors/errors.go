package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrInvalidChainLength  = errors.New("chain length must be at least 1")
	ErrInvalidTickInterval = errors.New("tick interval must be positive")
	ErrInvalidCadence      = errors.New("invalid cadence")
	ErrInvalidRenderer     = errors.New("invalid renderer")
	ErrInvalidColor        = errors.New("invalid color")
	ErrInvalidTaps         = errors.New("taps must not be negative")

	ErrFailedToStartWatch = errors.New("failed to start config watcher")
	ErrFailedToInitScreen = errors.New("failed to initialize screen")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
