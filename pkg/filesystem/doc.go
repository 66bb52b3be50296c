// Package filesystem provides the afero filesystems the packager runs against.
//
// The working root is exposed as an afero.Fs whose paths are relative to the
// root directory, so every pipeline stage works with the same slash-separated
// relative paths whether it runs on disk or on an in-memory test filesystem.
package filesystem
