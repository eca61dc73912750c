// Package modifiers registers named icon modifiers. A modifier mutates a
// base-resolution and double-resolution mask image pair in place before
// atlas composition.
package modifiers
