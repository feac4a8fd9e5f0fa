package device

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "valid", input: "core-router-01"},
		{name: "single char", input: "a"},
		{name: "empty", input: "", wantErr: ErrInvalidName},
		{name: "whitespace only", input: "   ", wantErr: ErrInvalidName},
		{name: "too long", input: strings.Repeat("x", maxNameLength+1), wantErr: ErrInvalidName},
		{name: "embedded newline", input: "bad\nname", wantErr: ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateName(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateIPAddress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "valid", input: "192.168.1.1"},
		{name: "zeros", input: "0.0.0.0"},
		{name: "max octets", input: "255.255.255.255"},
		{name: "empty", input: "", wantErr: ErrInvalidAddress},
		{name: "three octets", input: "192.168.1", wantErr: ErrInvalidAddress},
		{name: "five octets", input: "1.2.3.4.5", wantErr: ErrInvalidAddress},
		{name: "octet out of range", input: "192.168.1.256", wantErr: ErrInvalidAddress},
		{name: "non-numeric octet", input: "192.168.one.1", wantErr: ErrInvalidAddress},
		{name: "empty octet", input: "192.168..1", wantErr: ErrInvalidAddress},
		{name: "plain text", input: "not-an-ip", wantErr: ErrInvalidAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIPAddress(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateIPAddress(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateKind(t *testing.T) {
	for _, k := range AllKinds() {
		if err := ValidateKind(k); err != nil {
			t.Errorf("ValidateKind(%q) = %v, want nil", k, err)
		}
	}
	if err := ValidateKind("firewall"); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("ValidateKind(firewall) = %v, want ErrInvalidKind", err)
	}
	if err := ValidateKind(""); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("ValidateKind(empty) = %v, want ErrInvalidKind", err)
	}
}

func TestValidateStatus(t *testing.T) {
	for _, s := range AllStatuses() {
		if err := ValidateStatus(s); err != nil {
			t.Errorf("ValidateStatus(%q) = %v, want nil", s, err)
		}
	}
	if err := ValidateStatus("powered"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("ValidateStatus(powered) = %v, want ErrInvalidStatus", err)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Device {
		return &Device{
			Name:      "R1",
			IPAddress: "192.168.1.1",
			Kind:      KindRouter,
			Status:    StatusDisconnected,
			PortCount: 4,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Device)
		wantErr error
	}{
		{name: "valid router", mutate: func(*Device) {}},
		{name: "empty status allowed", mutate: func(d *Device) { d.Status = "" }},
		{name: "bad kind", mutate: func(d *Device) { d.Kind = "hub" }, wantErr: ErrInvalidKind},
		{name: "bad status", mutate: func(d *Device) { d.Status = "sleeping" }, wantErr: ErrInvalidStatus},
		{name: "negative ports", mutate: func(d *Device) { d.PortCount = -3 }, wantErr: ErrInvalidCount},
		{
			name: "server without service",
			mutate: func(d *Device) {
				d.Kind = KindServer
				d.PrimaryService = ""
			},
			wantErr: ErrInvalidService,
		},
		{
			name: "negative vlans",
			mutate: func(d *Device) {
				d.Kind = KindSwitch
				d.VLANCount = -1
			},
			wantErr: ErrInvalidCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid()
			tt.mutate(d)
			err := Validate(d)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if err := Validate(nil); !errors.Is(err, ErrInvalidDevice) {
		t.Errorf("Validate(nil) = %v, want ErrInvalidDevice", err)
	}
}
