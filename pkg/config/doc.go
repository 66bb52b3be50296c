// Package config loads wspackager configuration.
//
// Values are layered, later sources winning: embedded defaults, the
// project file in the working root (.wspackager.toml, wspackager.toml,
// .wspackager.yaml or wspackager.yaml), WSPACKAGER_ environment
// variables and finally command-line overrides.
package config
