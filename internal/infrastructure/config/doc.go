// Package config loads and validates netinv configuration.
//
// Configuration comes from three layers, each overriding the last:
// hardcoded defaults, an optional YAML file, and NETINV_* environment
// variables. A missing config file is fine — the tool is a single-user
// desktop utility and must start with zero setup.
package config
