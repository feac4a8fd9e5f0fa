// Package device provides the device inventory core for netinv.
//
// The inventory is an ordered collection of network devices — routers,
// switches, and servers — held in memory and persisted to a flat
// line-oriented text file. It backs the terminal UI, which drives it
// through a small set of operations.
//
// # Architecture
//
//	┌────────────────────────────────────────────────────────────────────┐
//	│                         Device Inventory                           │
//	│                                                                    │
//	│  ┌────────────────┐   ┌────────────────┐   ┌────────────────┐     │
//	│  │    Registry    │   │  Codec/Store   │   │   Validation   │     │
//	│  │ (registry.go)  │──▶│ (codec.go,     │   │ (validation.go)│     │
//	│  │                │   │  store.go)     │   │                │     │
//	│  │ • ordered list │   │ • line format  │   │ • field checks │     │
//	│  │ • CRUD + state │   │ • atomic save  │   │ • kind/status  │     │
//	│  │ • save/load    │   │ • skip bad rows│   │   sets         │     │
//	│  └────────────────┘   └────────────────┘   └────────────────┘     │
//	│          │                                                         │
//	└──────────│─────────────────────────────────────────────────────────┘
//	           ▼
//	┌──────────────────────┐
//	│  Terminal UI (forms, │
//	│  list, key bindings) │
//	└──────────────────────┘
//
// # Key Types
//
//   - Device: one managed network device, a tagged variant over Kind
//   - Kind: router, switch, or server; selects the variant payload
//   - Status: connected or disconnected; new devices start disconnected
//   - Registry: the ordered inventory plus its persistence operations
//
// # Usage
//
//	reg := device.NewRegistry()
//	reg.SetLogger(log)
//
//	r, err := device.NewRouter("R1", "192.168.1.1", 2)
//	if err != nil {
//	    return err
//	}
//	if err := reg.Add(r); err != nil {
//	    return err
//	}
//
//	if err := reg.Connect("R1"); err != nil {
//	    return err
//	}
//
//	if err := reg.Save(ctx, "data/devices.txt"); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// The Registry is safe for concurrent use; all operations are protected by
// a read-write mutex. The application itself is single-user and
// event-driven, so the lock is uncontended in practice.
package device
