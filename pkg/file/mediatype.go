package file

import (
	"slices"
	"strings"

	"github.com/oshokin/recordkit/pkg/collection"
)

// MediaTypeEntry pairs a file extension with its media type.
type MediaTypeEntry struct {
	// Extension is the extension token without the leading dot, e.g. "png".
	Extension string `json:"extension" yaml:"extension"`
	// MediaType is the media type, e.g. "image/png".
	MediaType string `json:"media_type" yaml:"media_type"`
}

// mediaTypes is the extension to media type table.
// Several extensions may share one media type; lookups by media type return the first entry.
//
//nolint:gochecknoglobals // Immutable lookup table, only exposed through copying accessors.
var mediaTypes = []MediaTypeEntry{
	{Extension: "txt", MediaType: "text/plain"},
	{Extension: "csv", MediaType: "text/csv"},
	{Extension: "html", MediaType: "text/html"},
	{Extension: "xml", MediaType: "text/xml"},
	{Extension: "css", MediaType: "text/css"},
	{Extension: "json", MediaType: "application/json"},
	{Extension: "js", MediaType: "application/javascript"},
	{Extension: "jpg", MediaType: "image/jpeg"},
	{Extension: "jpeg", MediaType: "image/jpeg"},
	{Extension: "png", MediaType: "image/png"},
	{Extension: "gif", MediaType: "image/gif"},
	{Extension: "bmp", MediaType: "image/bmp"},
	{Extension: "svg", MediaType: "image/svg+xml"},
	{Extension: "tiff", MediaType: "image/tiff"},
	{Extension: "mp3", MediaType: "audio/mpeg"},
	{Extension: "wav", MediaType: "audio/wav"},
	{Extension: "ogg", MediaType: "audio/ogg"},
	{Extension: "aac", MediaType: "audio/aac"},
	{Extension: "flac", MediaType: "audio/flac"},
	{Extension: "mp4", MediaType: "video/mp4"},
	{Extension: "avi", MediaType: "video/x-msvideo"},
	{Extension: "mov", MediaType: "video/quicktime"},
	{Extension: "mkv", MediaType: "video/x-matroska"},
	{Extension: "webm", MediaType: "video/webm"},
	{Extension: "pdf", MediaType: "application/pdf"},
	{Extension: "docx", MediaType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	{Extension: "xlsx", MediaType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
	{Extension: "pptx", MediaType: "application/vnd.openxmlformats-officedocument.presentationml.presentation"},
}

// DefaultMediaType is used when nothing is known about the content.
const DefaultMediaType = "application/octet-stream"

func entryExtension(e MediaTypeEntry) string { return e.Extension }

func entryMediaType(e MediaTypeEntry) string { return e.MediaType }

// MediaTypes returns a copy of the extension to media type table.
func MediaTypes() []MediaTypeEntry {
	return slices.Clone(mediaTypes)
}

// LookupExtension finds the entry of an extension. A leading dot and letter case are ignored.
func LookupExtension(extension string) (MediaTypeEntry, bool) {
	extension = strings.ToLower(strings.TrimPrefix(extension, "."))

	return collection.First(mediaTypes, entryExtension, extension)
}

// LookupMediaType finds the first entry of a media type.
func LookupMediaType(mediaType string) (MediaTypeEntry, bool) {
	return collection.First(mediaTypes, entryMediaType, strings.ToLower(mediaType))
}
