package device

import (
	"errors"
	"strings"
	"testing"
)

func TestNewRouter(t *testing.T) {
	tests := []struct {
		name      string
		devName   string
		ip        string
		ports     int
		wantErr   error
		wantPorts int
	}{
		{name: "valid", devName: "R1", ip: "192.168.1.1", ports: 2, wantPorts: 2},
		{name: "zero ports", devName: "R2", ip: "10.0.0.1", ports: 0, wantPorts: 0},
		{name: "empty name", devName: "", ip: "192.168.1.1", ports: 2, wantErr: ErrInvalidName},
		{name: "empty ip", devName: "R1", ip: "", ports: 2, wantErr: ErrInvalidAddress},
		{name: "negative ports", devName: "R1", ip: "192.168.1.1", ports: -1, wantErr: ErrInvalidCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewRouter(tt.devName, tt.ip, tt.ports)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewRouter() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewRouter() unexpected error: %v", err)
			}
			if d.Kind != KindRouter {
				t.Errorf("Kind = %q, want %q", d.Kind, KindRouter)
			}
			if d.Status != StatusDisconnected {
				t.Errorf("Status = %q, want %q (new devices start disconnected)", d.Status, StatusDisconnected)
			}
			if d.PortCount != tt.wantPorts {
				t.Errorf("PortCount = %d, want %d", d.PortCount, tt.wantPorts)
			}
			// Only the router payload may be populated.
			if d.VLANCount != 0 || d.PrimaryService != "" {
				t.Errorf("foreign variant payload populated: vlans=%d service=%q", d.VLANCount, d.PrimaryService)
			}
		})
	}
}

func TestNewSwitch(t *testing.T) {
	d, err := NewSwitch("SW1", "192.168.1.2", 12)
	if err != nil {
		t.Fatalf("NewSwitch() unexpected error: %v", err)
	}
	if d.Kind != KindSwitch || d.VLANCount != 12 {
		t.Errorf("got kind=%q vlans=%d, want switch/12", d.Kind, d.VLANCount)
	}
	if d.PortCount != 0 || d.PrimaryService != "" {
		t.Errorf("foreign variant payload populated: ports=%d service=%q", d.PortCount, d.PrimaryService)
	}

	if _, err := NewSwitch("SW1", "192.168.1.2", -5); !errors.Is(err, ErrInvalidCount) {
		t.Errorf("negative VLAN count error = %v, want ErrInvalidCount", err)
	}
}

func TestNewServer(t *testing.T) {
	d, err := NewServer("SRV1", "10.0.0.5", "dns")
	if err != nil {
		t.Fatalf("NewServer() unexpected error: %v", err)
	}
	if d.Kind != KindServer || d.PrimaryService != "dns" {
		t.Errorf("got kind=%q service=%q, want server/dns", d.Kind, d.PrimaryService)
	}

	if _, err := NewServer("SRV1", "10.0.0.5", ""); !errors.Is(err, ErrInvalidService) {
		t.Errorf("empty service error = %v, want ErrInvalidService", err)
	}
}

func TestConnectDisconnectInvolution(t *testing.T) {
	d, err := NewRouter("R1", "192.168.1.1", 4)
	if err != nil {
		t.Fatalf("NewRouter() unexpected error: %v", err)
	}

	// From disconnected: connect then disconnect returns to the start.
	d.Connect()
	if d.Status != StatusConnected {
		t.Fatalf("after Connect: status = %q", d.Status)
	}
	d.Disconnect()
	if d.Status != StatusDisconnected {
		t.Fatalf("after Disconnect: status = %q", d.Status)
	}

	// From connected: disconnect then connect returns to the start.
	d.Connect()
	d.Disconnect()
	d.Connect()
	if d.Status != StatusConnected {
		t.Fatalf("after Disconnect+Connect: status = %q", d.Status)
	}

	// Idempotence: repeating a transition changes nothing.
	d.Connect()
	if d.Status != StatusConnected {
		t.Fatalf("Connect is not idempotent: status = %q", d.Status)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name     string
		build    func() (*Device, error)
		contains []string
	}{
		{
			name:     "router",
			build:    func() (*Device, error) { return NewRouter("R1", "192.168.1.1", 2) },
			contains: []string{"R1", "192.168.1.1", "disconnected", "2"},
		},
		{
			name:     "switch",
			build:    func() (*Device, error) { return NewSwitch("SW1", "192.168.1.2", 24) },
			contains: []string{"SW1", "192.168.1.2", "disconnected", "24"},
		},
		{
			name:     "server",
			build:    func() (*Device, error) { return NewServer("SRV1", "10.0.0.5", "http") },
			contains: []string{"SRV1", "10.0.0.5", "disconnected", "http"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := tt.build()
			if err != nil {
				t.Fatalf("constructor error: %v", err)
			}
			got := d.Describe()
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Describe() = %q, missing %q", got, want)
				}
			}
		})
	}
}

func TestDescribeIncludesBrandModel(t *testing.T) {
	d, err := NewServer("SRV1", "10.0.0.5", "http")
	if err != nil {
		t.Fatalf("NewServer() unexpected error: %v", err)
	}
	d.Brand = "Dell"
	d.Model = "R740"

	got := d.Describe()
	if !strings.Contains(got, "Dell") || !strings.Contains(got, "R740") {
		t.Errorf("Describe() = %q, missing brand/model", got)
	}
}

func TestDeepCopy(t *testing.T) {
	d, err := NewRouter("R1", "192.168.1.1", 2)
	if err != nil {
		t.Fatalf("NewRouter() unexpected error: %v", err)
	}

	cpy := d.DeepCopy()
	cpy.Name = "changed"
	cpy.Connect()

	if d.Name != "R1" || d.Status != StatusDisconnected {
		t.Errorf("mutating the copy changed the original: %+v", d)
	}

	var nilDev *Device
	if nilDev.DeepCopy() != nil {
		t.Error("DeepCopy of nil should be nil")
	}
}

func TestExtra(t *testing.T) {
	r, _ := NewRouter("R1", "192.168.1.1", 8)
	sw, _ := NewSwitch("SW1", "192.168.1.2", 16)
	srv, _ := NewServer("SRV1", "10.0.0.5", "smtp")

	if got := r.Extra(); got != "8" {
		t.Errorf("router Extra() = %q, want %q", got, "8")
	}
	if got := sw.Extra(); got != "16" {
		t.Errorf("switch Extra() = %q, want %q", got, "16")
	}
	if got := srv.Extra(); got != "smtp" {
		t.Errorf("server Extra() = %q, want %q", got, "smtp")
	}
}
