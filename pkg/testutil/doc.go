// Package testutil provides utilities for testing wspackager components.
//
// Key components:
//   - Fixture: declarative working-root builder over an in-memory or on-disk afero filesystem
//   - Archive helpers: list and read the entries of produced .tar / .tar.gz files
//
// Usage guidelines:
//   - Most tests should use NewFixture (in-memory) for speed and isolation
//   - End-to-end tests that exercise the OS filesystem use NewDiskFixture
//   - All test data should be defined inline, not in external files
package testutil
