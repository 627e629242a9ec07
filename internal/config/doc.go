// Package config loads the server's settings from defaults, an optional
// config.yaml, and CLEANTASKS_-prefixed environment variables, then
// validates the result before any component is built from it.
package config
