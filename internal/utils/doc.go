// Package utils provides small helpers shared by the command implementations:
// safe integer conversion, file name sanitizing and extension handling.
package utils
