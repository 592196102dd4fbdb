// Package types holds the core data model shared across the engine:
// path shapes, locators, resolved pairs and the filesystem interface
// the engine talks through.
package types
