// Package prepack rolls prepack directories into nested "<dir>.tar"
// archives before the final package is assembled, and removes those
// temporary archives afterwards.
package prepack
