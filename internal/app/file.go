package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/oshokin/recordkit/internal/constants"
	"github.com/oshokin/recordkit/internal/logger"
	"github.com/oshokin/recordkit/internal/utils"
	"github.com/oshokin/recordkit/pkg/file"
)

const (
	// dataURIPrefix marks inputs that are data URIs rather than paths.
	dataURIPrefix = "data:"
	// inputFilePrefix marks inputs naming a file that holds a data URI.
	inputFilePrefix = "@"
)

// DecodeResult describes a file written by Decode.
type DecodeResult struct {
	// Path is where the file was written.
	Path string `json:"path" yaml:"path"`
	// MediaType is the media type declared by the data URI.
	MediaType string `json:"media_type" yaml:"media_type"`
	// Size is the human-readable size of the file.
	Size string `json:"size" yaml:"size"`
}

// diskFile is a file.Source reading from disk, with a progress bar for large files.
type diskFile struct {
	path              string
	mediaType         string
	size              int64
	progressThreshold int64
}

// Name returns the base name of the file.
func (f *diskFile) Name() string {
	return filepath.Base(f.path)
}

// MediaType returns the declared media type, empty to resolve it from the name.
func (f *diskFile) MediaType() string {
	return f.mediaType
}

// Open opens the file for reading.
func (f *diskFile) Open() (io.ReadCloser, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		return nil, err
	}

	// Progress is only drawn when it does not interfere with debug output.
	if f.progressThreshold <= 0 || f.size <= f.progressThreshold || logger.Level() > zap.InfoLevel {
		return fh, nil
	}

	bar := progressbar.DefaultBytes(f.size, "Encoding")

	return struct {
		io.Reader
		io.Closer
	}{
		Reader: io.TeeReader(fh, bar),
		Closer: fh,
	}, nil
}

// Encode prints the file at path as a data URI.
// An empty mediaType makes the type follow the file extension.
func (a *App) Encode(ctx context.Context, path, mediaType string) error {
	stat, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	src := &diskFile{
		path:              path,
		mediaType:         mediaType,
		size:              stat.Size(),
		progressThreshold: a.cfg.ParsedProgressThreshold,
	}

	dataURI, err := file.Encode(ctx, src)
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "File encoded",
		"path", path,
		"size", humanize.Bytes(uint64(stat.Size())), //nolint:gosec // File sizes are never negative.
	)

	if _, err = fmt.Fprintln(a.out, dataURI); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

// Decode writes the file held by a data URI into the output directory and prints where it went.
// Without a name, a random one with the extension of the media type is generated.
func (a *App) Decode(ctx context.Context, input, name string) error {
	dataURI, err := a.readDataURI(input)
	if err != nil {
		return err
	}

	f, err := file.Decode(dataURI, name)
	if err != nil {
		return err
	}

	filename := utils.SanitizeFilename(name)
	if filename == "" {
		filename = generatedFilename(f.MediaType())
	}

	if err = os.MkdirAll(a.cfg.OutputPath, constants.DefaultFolderPermissions); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	target := filepath.Join(a.cfg.OutputPath, filename)

	exists, err := utils.IsFileExist(target)
	if err != nil {
		return fmt.Errorf("failed to check output file: %w", err)
	}

	if exists {
		return fmt.Errorf("%w: '%s'", ErrFileExists, target)
	}

	if err = os.WriteFile(target, f.Data(), constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	logger.InfoKV(ctx, "File decoded", "path", target, "media_type", f.MediaType())

	return a.renderer.Render(DecodeResult{
		Path:      target,
		MediaType: f.MediaType(),
		Size:      humanize.Bytes(uint64(f.Size())), //nolint:gosec // File sizes are never negative.
	})
}

// Validate checks a file on disk or a data URI against the configured size and extension limits
// and prints the result. A non-empty name must match the file name exactly.
// Data URIs carry no name, so they never match a given name.
func (a *App) Validate(ctx context.Context, input, name string) error {
	cfg := file.ValidationConfig{
		AllowExtensions: a.cfg.ParsedAllowExtensions,
		MaxSize:         a.cfg.ParsedMaxFileSize,
		FileName:        name,
	}

	if strings.HasPrefix(input, dataURIPrefix) || strings.HasPrefix(input, inputFilePrefix) || input == constants.StdinPath {
		dataURI, err := a.readDataURI(input)
		if err != nil {
			return err
		}

		result, err := file.ValidateEncoded(dataURI, cfg)
		if err != nil {
			return err
		}

		return a.renderer.Render(result)
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	base := filepath.Base(input)
	f := file.New(base, file.ResolveMediaType("", base), data)

	logger.DebugKV(ctx, "Validating file",
		"path", input,
		"media_type", f.MediaType(),
		"size", humanize.Bytes(uint64(f.Size())), //nolint:gosec // File sizes are never negative.
		"max_size", humanize.Bytes(uint64(cfg.MaxSize)), //nolint:gosec // Sizes are parsed from unsigned values.
	)

	return a.renderer.Render(file.Validate(f, cfg))
}

// readDataURI resolves an input to a data URI: "@path" reads it from a file, "-" from stdin.
func (a *App) readDataURI(input string) (string, error) {
	var (
		data []byte
		err  error
	)

	switch {
	case input == constants.StdinPath:
		data, err = io.ReadAll(a.stdin)
	case strings.HasPrefix(input, inputFilePrefix):
		data, err = os.ReadFile(strings.TrimPrefix(input, inputFilePrefix))
	default:
		data = []byte(input)
	}

	if err != nil {
		return "", fmt.Errorf("failed to read data URI: %w", err)
	}

	dataURI := strings.TrimSpace(string(data))
	if dataURI == "" {
		return "", ErrEmptyInput
	}

	return dataURI, nil
}

// generatedFilename returns a random file name with the extension registered for mediaType.
func generatedFilename(mediaType string) string {
	name := uuid.New().String()

	if entry, ok := file.LookupMediaType(mediaType); ok {
		return utils.SetFileExtension(name, entry.Extension, false)
	}

	return name
}
