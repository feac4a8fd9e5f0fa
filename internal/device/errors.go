package device

import (
	"errors"
	"fmt"
)

// Domain errors for the device package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, device.ErrNotFound) {
//	    // handle not found case
//	}
//
// Every field-specific validation sentinel wraps ErrInvalidDevice, so
// errors.Is(err, ErrInvalidDevice) matches any invalid-input failure while
// the specific sentinel still identifies the field.
var (
	// ErrNotFound is returned when no device with the requested name exists.
	ErrNotFound = errors.New("device: not found")

	// ErrInvalidDevice is the root of all validation failures.
	ErrInvalidDevice = errors.New("device: invalid")

	// ErrInvalidName is returned when a device name is empty or too long.
	ErrInvalidName = fmt.Errorf("%w name", ErrInvalidDevice)

	// ErrInvalidAddress is returned when an IP address is not in dotted-decimal form.
	ErrInvalidAddress = fmt.Errorf("%w ip address", ErrInvalidDevice)

	// ErrInvalidKind is returned when a kind value is not recognised.
	ErrInvalidKind = fmt.Errorf("%w kind", ErrInvalidDevice)

	// ErrInvalidStatus is returned when a status value is not recognised.
	ErrInvalidStatus = fmt.Errorf("%w status", ErrInvalidDevice)

	// ErrInvalidCount is returned when a port or VLAN count is negative or non-numeric.
	ErrInvalidCount = fmt.Errorf("%w count", ErrInvalidDevice)

	// ErrInvalidService is returned when a server's primary service is missing.
	ErrInvalidService = fmt.Errorf("%w service", ErrInvalidDevice)

	// ErrParse is returned when a persisted inventory line cannot be decoded.
	ErrParse = errors.New("device: parse error")
)
