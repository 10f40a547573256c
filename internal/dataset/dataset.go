package dataset

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/recordkit/internal/constants"
	"github.com/oshokin/recordkit/internal/logger"
	"github.com/oshokin/recordkit/pkg/record"
)

// Static error definitions for better error handling.
var (
	// ErrUnsupportedFormat indicates that the file extension maps to no known format.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
	// ErrNotAnArray indicates that the document is not a top-level array.
	ErrNotAnArray = errors.New("dataset must be an array")
	// ErrInvalidCacheSize indicates that the cache size is not positive.
	ErrInvalidCacheSize = errors.New("cache size must be a positive integer")
)

// cacheKey identifies one version of a file on disk.
type cacheKey struct {
	path    string
	size    int64
	modTime int64
}

// Loader reads datasets from files, keeping recently parsed ones in an LRU cache.
type Loader struct {
	cache *lru.Cache[cacheKey, record.Dataset]
	stdin io.Reader
}

// NewLoader creates a loader caching up to cacheSize parsed files.
func NewLoader(cacheSize int) (*Loader, error) {
	if cacheSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCacheSize, cacheSize)
	}

	cache, err := lru.New[cacheKey, record.Dataset](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create dataset cache: %w", err)
	}

	return &Loader{
		cache: cache,
		stdin: os.Stdin,
	}, nil
}

// WithStdin replaces the reader used for the "-" path.
func (l *Loader) WithStdin(r io.Reader) *Loader {
	l.stdin = r

	return l
}

// Load reads the dataset at path. The format is chosen by the file extension,
// "-" reads JSON from standard input without caching.
func (l *Loader) Load(ctx context.Context, path string) (record.Dataset, error) {
	if path == constants.StdinPath {
		data, err := io.ReadAll(l.stdin)
		if err != nil {
			return record.Dataset{}, fmt.Errorf("failed to read standard input: %w", err)
		}

		return Decode(data, constants.FormatJSON)
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return record.Dataset{}, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return record.Dataset{}, fmt.Errorf("failed to read dataset: %w", err)
	}

	key := cacheKey{
		path:    filepath.Clean(path),
		size:    stat.Size(),
		modTime: stat.ModTime().UnixNano(),
	}

	if cached, ok := l.cache.Get(key); ok {
		logger.DebugKV(ctx, "Dataset loaded from cache", "path", path)

		return cached, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return record.Dataset{}, fmt.Errorf("failed to read dataset: %w", err)
	}

	result, err := Decode(data, format)
	if err != nil {
		return record.Dataset{}, fmt.Errorf("failed to decode '%s': %w", path, err)
	}

	l.cache.Add(key, result)
	logger.DebugKV(ctx, "Dataset loaded", "path", path, "elements", result.Len(), "format", format)

	return result, nil
}

// Len returns the number of cached datasets.
func (l *Loader) Len() int {
	return l.cache.Len()
}

// Purge drops every cached dataset.
func (l *Loader) Purge() {
	l.cache.Purge()
}

// FormatFromPath maps a file extension to a dataset format.
func FormatFromPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case constants.ExtensionJSON:
		return constants.FormatJSON, nil
	case constants.ExtensionYAML, constants.ExtensionYML:
		return constants.FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: '%s'", ErrUnsupportedFormat, ext)
	}
}

// Decode parses a JSON or YAML array into a dataset.
// Blank input is an empty dataset.
func Decode(data []byte, format string) (record.Dataset, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return record.DatasetFromSlice(nil)
	}

	var (
		raw any
		err error
	)

	switch format {
	case constants.FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()

		err = decoder.Decode(&raw)
	case constants.FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	default:
		return record.Dataset{}, fmt.Errorf("%w: '%s'", ErrUnsupportedFormat, format)
	}

	if err != nil {
		return record.Dataset{}, fmt.Errorf("failed to parse %s: %w", format, err)
	}

	items, ok := raw.([]any)
	if !ok {
		return record.Dataset{}, fmt.Errorf("%w, got %T", ErrNotAnArray, raw)
	}

	return record.DatasetFromSlice(items)
}
