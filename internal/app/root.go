package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/oshokin/recordkit/internal/config"
	"github.com/oshokin/recordkit/internal/dataset"
	"github.com/oshokin/recordkit/internal/render"
	"github.com/oshokin/recordkit/internal/version"
)

// Static error definitions for better error handling.
var (
	// ErrRecordsRequired indicates that a command needs a list of records but got primitive values.
	ErrRecordsRequired = errors.New("the list must contain records")
	// ErrFileExists indicates that the decoded file would overwrite an existing one.
	ErrFileExists = errors.New("file already exists")
	// ErrEmptyInput indicates that no data URI was provided.
	ErrEmptyInput = errors.New("input is empty")
)

// App executes commands with a validated configuration.
type App struct {
	cfg      *config.Config
	loader   *dataset.Loader
	renderer *render.Renderer
	out      io.Writer
	stdin    io.Reader
}

// New creates an application writing results to out and reading "-" inputs from stdin.
// The configuration must already be validated.
func New(cfg *config.Config, out io.Writer, stdin io.Reader) (*App, error) {
	loader, err := dataset.NewLoader(cfg.DatasetCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize dataset loader: %w", err)
	}

	renderer, err := render.New(cfg.OutputFormat, out)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize renderer: %w", err)
	}

	return &App{
		cfg:      cfg,
		loader:   loader.WithStdin(stdin),
		renderer: renderer,
		out:      out,
		stdin:    stdin,
	}, nil
}

// Version prints the build information.
func (a *App) Version() error {
	return a.renderer.Render(version.Get())
}
