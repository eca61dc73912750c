// Package styerrors defines common error types used across stylegen packages.
package styerrors
