// Package ui implements the interactive terminal front end for netinv.
//
// # Architecture
//
//	┌──────────────────────────────────────────────┐
//	│                  Model (bubbletea)           │
//	│                                              │
//	│   list ──a/e──▶ form ──Enter──▶ registry     │
//	│     │                                        │
//	│     ├──x──▶ confirm ──y──▶ registry.Remove   │
//	│     └──/──▶ filter input ──▶ registry.Filter │
//	└──────────────────────┬───────────────────────┘
//	                       │
//	                       ▼
//	              device.Registry
//
// The model owns no device state of its own: every operation goes through
// the registry and the visible list is rebuilt from it afterwards, so the
// registry remains the single source of truth.
//
// Key bindings are listed in the help line of each screen.
//
// Row operations address devices by name. The registry allows duplicate
// names and its name-addressed operations act on the first match in
// insertion order, so with duplicates the affected device may not be the
// highlighted row.
package ui
