package file

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/oshokin/recordkit/pkg/collection"
)

//go:generate $MOCKGEN -source=file.go -destination=mocks/source_mock.go

// Static error definitions for better error handling.
var (
	// ErrMissingMediaType indicates a data URI without a media type segment.
	ErrMissingMediaType = errors.New("please pass a valid base64 file with a media type")
	// ErrInvalidPayload indicates a data URI whose payload is missing or is not valid base64.
	ErrInvalidPayload = errors.New("invalid base64 payload")
	// ErrEmptyPayload indicates a source that produced no content to encode.
	ErrEmptyPayload = errors.New("please pass a valid file with content")
)

const (
	dataURIScheme = "data:"
	base64Marker  = ";base64,"
)

// Source is binary content with a name and a declared media type.
type Source interface {
	// Name returns the file name, possibly empty.
	Name() string
	// MediaType returns the declared media type, possibly empty.
	MediaType() string
	// Open returns a reader over the whole content.
	Open() (io.ReadCloser, error)
}

// File is an in-memory binary file.
type File struct {
	// name is the file name.
	name string
	// mediaType is the declared media type, e.g. "image/png".
	mediaType string
	// data is the file content.
	data []byte
}

// New creates an in-memory file.
func New(name, mediaType string, data []byte) *File {
	return &File{
		name:      name,
		mediaType: mediaType,
		data:      data,
	}
}

// Name returns the file name.
func (f *File) Name() string {
	return f.name
}

// MediaType returns the declared media type.
func (f *File) MediaType() string {
	return f.mediaType
}

// Data returns the file content.
func (f *File) Data() []byte {
	return f.data
}

// Size returns the content length in bytes.
func (f *File) Size() int64 {
	return int64(len(f.data))
}

// Extension returns the subtype of the media type, e.g. "png" for "image/png".
// This is the token matched against allowed extensions during validation.
func (f *File) Extension() string {
	return subtype(f.mediaType)
}

// Open returns a reader over the content.
func (f *File) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.data)), nil
}

// Decode converts a data URI of the form "data:<media type>;base64,<payload>" into a File.
func Decode(dataURI, fileName string) (*File, error) {
	// The media type sits between the first ':' and the first ';'.
	head, _, _ := strings.Cut(dataURI, ";")

	_, mediaType, found := strings.Cut(head, ":")
	mediaType = strings.TrimSpace(mediaType)

	if !found || mediaType == "" {
		return nil, ErrMissingMediaType
	}

	_, payload, found := strings.Cut(dataURI, ",")
	if !found {
		return nil, fmt.Errorf("%w: no payload after ','", ErrInvalidPayload)
	}

	data, err := decodeBase64(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	return New(fileName, mediaType, data), nil
}

// Encode reads src fully and returns it as a data URI.
// Reading stops with the context error once ctx is done.
func Encode(ctx context.Context, src Source) (string, error) {
	reader, err := src.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open source: %w", err)
	}

	defer reader.Close() //nolint:errcheck // Error on close is not critical here.

	data, err := io.ReadAll(&contextReader{ctx: ctx, reader: reader})
	if err != nil {
		return "", fmt.Errorf("failed to read source: %w", err)
	}

	if len(data) == 0 {
		return "", ErrEmptyPayload
	}

	return dataURIScheme + ResolveMediaType(src.MediaType(), src.Name()) + base64Marker +
		base64.StdEncoding.EncodeToString(data), nil
}

// ResolveMediaType picks the media type written into a data URI.
// A declared type whose subtype is a known extension is replaced by the table entry for that type,
// any other declared type is kept, and without a declared type the extension of name is looked up.
func ResolveMediaType(declared, name string) string {
	declared = strings.TrimSpace(declared)

	if declared != "" {
		if collection.Includes(mediaTypes, entryExtension, subtype(declared)) {
			if entry, ok := collection.First(mediaTypes, entryMediaType, declared); ok {
				return entry.MediaType
			}
		}

		return declared
	}

	if entry, ok := LookupExtension(filepath.Ext(name)); ok {
		return entry.MediaType
	}

	return DefaultMediaType
}

// contextReader fails reads once its context is done.
type contextReader struct {
	ctx    context.Context //nolint:containedctx // The reader is short-lived and bound to one Encode call.
	reader io.Reader
}

func (r *contextReader) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}

	return r.reader.Read(p)
}

func decodeBase64(payload string) ([]byte, error) {
	payload = strings.TrimSpace(payload)

	data, err := base64.StdEncoding.DecodeString(payload)
	if err == nil {
		return data, nil
	}

	// Some producers drop the padding.
	if data, rawErr := base64.RawStdEncoding.DecodeString(payload); rawErr == nil {
		return data, nil
	}

	return nil, err
}

func subtype(mediaType string) string {
	_, sub, _ := strings.Cut(mediaType, "/")

	return sub
}
