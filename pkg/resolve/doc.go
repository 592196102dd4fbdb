// Package resolve is the public entry point of the pairing engine. A
// Config describes how output names are synthesized, Parse classifies
// the SRC and DST specifiers and selects a pairing strategy, and the
// returned Iterator lazily yields (input, output) locator pairs.
//
// The engine only decides which input maps to which output; it never
// reads or writes file contents.
package resolve
