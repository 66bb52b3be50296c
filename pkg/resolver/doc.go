// Package resolver expands declared inputs into concrete paths.
//
// A declaration without glob metacharacters resolves to itself, unchecked;
// a missing literal path surfaces later as a walk error. Glob declarations
// are expanded with doublestar against the working root, and an empty match
// set is not an error.
package resolver
