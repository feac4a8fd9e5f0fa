package device

import (
	"fmt"
	"strconv"
)

// Device represents one managed network device in the inventory.
//
// A device is a tagged variant: Kind selects which of the payload fields
// (PortCount, VLANCount, PrimaryService) is meaningful. The constructors
// guarantee that exactly the payload matching Kind is populated; the other
// payload fields stay at their zero value.
type Device struct {
	// Identity
	Name      string
	IPAddress string

	// Optional hardware metadata
	Brand string
	Model string

	// Classification
	Kind Kind

	// Current state
	Status Status

	// Variant payload; exactly one is meaningful, selected by Kind.
	PortCount      int    // routers
	VLANCount      int    // switches
	PrimaryService string // servers
}

// Connect marks the device as connected. Idempotent.
func (d *Device) Connect() {
	d.Status = StatusConnected
}

// Disconnect marks the device as disconnected. Idempotent.
func (d *Device) Disconnect() {
	d.Status = StatusDisconnected
}

// Extra renders the variant payload as text: the port count for routers,
// the VLAN count for switches, and the primary service for servers.
func (d *Device) Extra() string {
	switch d.Kind {
	case KindRouter:
		return strconv.Itoa(d.PortCount)
	case KindSwitch:
		return strconv.Itoa(d.VLANCount)
	case KindServer:
		return d.PrimaryService
	default:
		return ""
	}
}

// Describe returns a one-line human-readable summary of the device.
// It always contains the name, IP address, status, and the variant payload.
func (d *Device) Describe() string {
	var extra string
	switch d.Kind {
	case KindRouter:
		extra = fmt.Sprintf("%d ports", d.PortCount)
	case KindSwitch:
		extra = fmt.Sprintf("%d VLANs", d.VLANCount)
	case KindServer:
		extra = "service " + d.PrimaryService
	}

	s := fmt.Sprintf("%s %q at %s is %s (%s)", d.Kind, d.Name, d.IPAddress, d.Status, extra)
	if d.Brand != "" || d.Model != "" {
		s += fmt.Sprintf(" [%s %s]", d.Brand, d.Model)
	}
	return s
}

// DeepCopy returns an independent copy of the Device.
// Device currently has no reference fields, so this is a value copy, but
// callers should use it wherever isolation from registry state matters.
func (d *Device) DeepCopy() *Device {
	if d == nil {
		return nil
	}
	cpy := *d
	return &cpy
}

// Kind identifies the device variant.
type Kind string

// Kind constants.
const (
	KindRouter Kind = "router"
	KindSwitch Kind = "switch"
	KindServer Kind = "server"
)

// AllKinds returns all valid kind values.
func AllKinds() []Kind {
	return []Kind{KindRouter, KindSwitch, KindServer}
}

// Status is the connection state of a device.
//
// Devices move freely between the two states; a freshly constructed device
// is disconnected.
type Status string

// Status constants.
const (
	StatusConnected    Status = "connected"
	StatusDisconnected Status = "disconnected"
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{StatusConnected, StatusDisconnected}
}

// NewRouter constructs a router device with the given port count.
// The device starts disconnected. Shared fields are validated before the
// variant payload is attached.
func NewRouter(name, ip string, portCount int) (*Device, error) {
	d, err := newBase(KindRouter, name, ip)
	if err != nil {
		return nil, err
	}
	if portCount < 0 {
		return nil, fmt.Errorf("%w: port count %d is negative", ErrInvalidCount, portCount)
	}
	d.PortCount = portCount
	return d, nil
}

// NewSwitch constructs a switch device with the given VLAN count.
// The device starts disconnected.
func NewSwitch(name, ip string, vlanCount int) (*Device, error) {
	d, err := newBase(KindSwitch, name, ip)
	if err != nil {
		return nil, err
	}
	if vlanCount < 0 {
		return nil, fmt.Errorf("%w: VLAN count %d is negative", ErrInvalidCount, vlanCount)
	}
	d.VLANCount = vlanCount
	return d, nil
}

// NewServer constructs a server device with the given primary service.
// The device starts disconnected.
func NewServer(name, ip, primaryService string) (*Device, error) {
	d, err := newBase(KindServer, name, ip)
	if err != nil {
		return nil, err
	}
	if primaryService == "" {
		return nil, fmt.Errorf("%w: primary service is required", ErrInvalidService)
	}
	d.PrimaryService = primaryService
	return d, nil
}

// newBase applies the validation shared by every variant and returns a
// device with the common fields set. Variant constructors attach their
// payload afterwards.
func newBase(kind Kind, name, ip string) (*Device, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if err := ValidateIPAddress(ip); err != nil {
		return nil, err
	}
	return &Device{
		Name:      name,
		IPAddress: ip,
		Kind:      kind,
		Status:    StatusDisconnected,
	}, nil
}
