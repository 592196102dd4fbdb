// Package filesystem provides implementations of the types.FS
// interface: one backed by the os package for production use and one
// backed by afero for tests.
package filesystem
