// Package pattern implements the matching sublanguage used to select
// directory entries: glob wildcards (`*`, `?`) and numeric range
// segments (`{1..=999:04d}`), freely interleaved with literal text.
// Parsing and matching are pure; a parsed Expression is immutable.
package pattern
