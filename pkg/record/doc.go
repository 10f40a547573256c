// Package record models schemaless records as maps from field names to tagged scalars
// and exposes the collection operations keyed by field name.
package record
