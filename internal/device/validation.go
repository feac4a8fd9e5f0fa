package device

import (
	"fmt"
	"strconv"
	"strings"
)

// Validation constants.
const (
	maxNameLength = 100
)

// Pre-computed validation sets for O(1) lookups.
var (
	validKinds    map[Kind]struct{}
	validStatuses map[Status]struct{}
)

func init() {
	validKinds = make(map[Kind]struct{}, len(AllKinds()))
	for _, k := range AllKinds() {
		validKinds[k] = struct{}{}
	}

	validStatuses = make(map[Status]struct{}, len(AllStatuses()))
	for _, s := range AllStatuses() {
		validStatuses[s] = struct{}{}
	}
}

// ValidateName checks that a device name is non-empty, within length limits,
// and free of characters that would corrupt the line-oriented inventory file.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidName)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidName, maxNameLength)
	}
	if strings.ContainsAny(name, "\n\r") {
		return fmt.Errorf("%w: name must not contain newlines", ErrInvalidName)
	}
	return nil
}

// ValidateIPAddress checks that an address looks like dotted-decimal IPv4:
// four dot-separated octets in the 0-255 range. This is a shape check only;
// no reachability or subnet semantics are implied.
func ValidateIPAddress(ip string) error {
	if strings.TrimSpace(ip) == "" {
		return fmt.Errorf("%w: ip address is required", ErrInvalidAddress)
	}

	octets := strings.Split(ip, ".")
	if len(octets) != 4 {
		return fmt.Errorf("%w: %q is not dotted-decimal", ErrInvalidAddress, ip)
	}
	for _, o := range octets {
		n, err := strconv.Atoi(o)
		if err != nil || o == "" {
			return fmt.Errorf("%w: %q is not dotted-decimal", ErrInvalidAddress, ip)
		}
		if n < 0 || n > 255 {
			return fmt.Errorf("%w: octet %q out of range in %q", ErrInvalidAddress, o, ip)
		}
	}
	return nil
}

// ValidateKind checks that a kind value is one of the known variants.
func ValidateKind(k Kind) error {
	if _, ok := validKinds[k]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidKind, k)
	}
	return nil
}

// ValidateStatus checks that a status value is recognised.
func ValidateStatus(s Status) error {
	if _, ok := validStatuses[s]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return nil
}

// Validate performs full validation on a device: shared fields, kind,
// status, and the variant payload matching the kind.
func Validate(d *Device) error {
	if d == nil {
		return ErrInvalidDevice
	}
	if err := ValidateName(d.Name); err != nil {
		return err
	}
	if err := ValidateIPAddress(d.IPAddress); err != nil {
		return err
	}
	if err := ValidateKind(d.Kind); err != nil {
		return err
	}
	if d.Status != "" {
		if err := ValidateStatus(d.Status); err != nil {
			return err
		}
	}

	switch d.Kind {
	case KindRouter:
		if d.PortCount < 0 {
			return fmt.Errorf("%w: port count %d is negative", ErrInvalidCount, d.PortCount)
		}
	case KindSwitch:
		if d.VLANCount < 0 {
			return fmt.Errorf("%w: VLAN count %d is negative", ErrInvalidCount, d.VLANCount)
		}
	case KindServer:
		if d.PrimaryService == "" {
			return fmt.Errorf("%w: primary service is required", ErrInvalidService)
		}
	}

	return nil
}
