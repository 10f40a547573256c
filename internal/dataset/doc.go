// Package dataset loads JSON and YAML record files into record datasets.
// Parsed files are cached by path, size and modification time, so repeated
// commands over the same unchanged file skip decoding.
package dataset
