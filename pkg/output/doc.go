// Package output writes generated artifacts atomically, so a failed
// generation never leaves a partially-written file in place.
package output
