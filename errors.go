package model

import (
	"errors"
	"fmt"
)

// Package errors.
var (
	// ErrNilProvider is returned when creating a device without a provider.
	ErrNilProvider = errors.New("model: device provider is nil")

	// ErrNoHALAccess is returned when a provider does not expose HAL types.
	ErrNoHALAccess = errors.New("model: provider does not expose HAL device and queue")

	// ErrNilDevice is returned when an operation requires a device.
	ErrNilDevice = errors.New("model: device is nil")

	// ErrDeviceDestroyed is returned when operating on a destroyed device.
	ErrDeviceDestroyed = errors.New("model: device has been destroyed")

	// ErrEmptyBuffer is returned when creating a buffer with no data.
	ErrEmptyBuffer = errors.New("model: buffer data is empty")

	// ErrInvalidTextureSize is returned when texture dimensions are invalid.
	ErrInvalidTextureSize = errors.New("model: invalid texture size")

	// ErrInvalidFeatureCount is returned when a batch texture is created
	// with a non-positive feature count.
	ErrInvalidFeatureCount = errors.New("model: feature count must be positive")

	// ErrAlreadyAllocated is returned when allocating a batch texture that
	// already has a backing texture.
	ErrAlreadyAllocated = errors.New("model: batch texture is already allocated")
)

// InvalidArgumentError reports a malformed argument passed to a statistics
// registration call. It is raised via panic: malformed arguments at these
// boundaries are programming errors in the calling pipeline, not runtime
// conditions to handle. The checks are elided entirely when building with
// the nochecks tag.
type InvalidArgumentError struct {
	// Call is the name of the operation that received the argument.
	Call string

	// Reason describes what was wrong with the argument.
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("model: %s: %s", e.Call, e.Reason)
}

// checkArg panics with an *InvalidArgumentError when cond is false.
// Compiled to a no-op under the nochecks build tag.
func checkArg(cond bool, call, reason string) {
	if argChecks && !cond {
		panic(&InvalidArgumentError{Call: call, Reason: reason})
	}
}
