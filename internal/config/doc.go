// Package config manages persistent CLI settings stored in
// ~/.vitegen/config.yaml, with VITEGEN_* environment variable overrides.
package config
