package device

import (
	"fmt"
	"strconv"
	"strings"
)

// Inventory file line format.
//
// One device per line, pipe-delimited:
//
//	kind|name|ip_address|status|extra[|brand|model]
//
// extra is the variant payload: the port count for routers, the VLAN count
// for switches, and the primary service for servers. The trailing brand and
// model fields are optional; a five-field line decodes with both empty.
// Blank lines and lines starting with '#' are ignored by the store.
const (
	// Separator delimits fields within a line. Pipe rather than comma so
	// free-text values such as a server's primary service may contain commas.
	Separator = "|"

	minFields  = 5
	fullFields = 7
)

// EncodeLine serialises a device as one inventory file line.
// Field values containing the separator or newlines are rejected, since
// they cannot round-trip through the line format.
func EncodeLine(d *Device) (string, error) {
	if err := Validate(d); err != nil {
		return "", err
	}

	fields := []string{
		string(d.Kind),
		d.Name,
		d.IPAddress,
		string(d.Status),
		d.Extra(),
		d.Brand,
		d.Model,
	}
	for _, f := range fields {
		if strings.Contains(f, Separator) {
			return "", fmt.Errorf("%w: field %q contains separator %q", ErrInvalidDevice, f, Separator)
		}
		if strings.ContainsAny(f, "\n\r") {
			return "", fmt.Errorf("%w: field %q contains a newline", ErrInvalidDevice, f)
		}
	}

	return strings.Join(fields, Separator), nil
}

// DecodeLine parses one inventory file line into a device.
// Errors wrap ErrParse and describe the offending field.
func DecodeLine(line string) (*Device, error) {
	fields := strings.Split(line, Separator)
	if len(fields) != minFields && len(fields) != fullFields {
		return nil, fmt.Errorf("%w: expected %d or %d fields, got %d", ErrParse, minFields, fullFields, len(fields))
	}

	kind := Kind(strings.TrimSpace(fields[0]))
	if err := ValidateKind(kind); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	name := strings.TrimSpace(fields[1])
	ip := strings.TrimSpace(fields[2])
	extra := strings.TrimSpace(fields[4])

	status := Status(strings.TrimSpace(fields[3]))
	if err := ValidateStatus(status); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	var (
		d   *Device
		err error
	)
	switch kind {
	case KindRouter:
		var ports int
		ports, err = parseCount(extra)
		if err == nil {
			d, err = NewRouter(name, ip, ports)
		}
	case KindSwitch:
		var vlans int
		vlans, err = parseCount(extra)
		if err == nil {
			d, err = NewSwitch(name, ip, vlans)
		}
	case KindServer:
		d, err = NewServer(name, ip, extra)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	d.Status = status
	if len(fields) == fullFields {
		d.Brand = strings.TrimSpace(fields[5])
		d.Model = strings.TrimSpace(fields[6])
	}

	return d, nil
}

// parseCount parses a non-negative integer payload field.
func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidCount, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrInvalidCount, n)
	}
	return n, nil
}
