// Package file converts binary files to and from base64 data URIs
// and validates them against size, extension and name constraints.
// Media types are resolved through a fixed extension table.
package file
