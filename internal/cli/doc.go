// Package cli formats command results for the terminal as go-pretty tables,
// JSON or YAML.
package cli
