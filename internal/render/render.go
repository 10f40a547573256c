// Package render prints command results as JSON or YAML.
package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/recordkit/internal/constants"
	"github.com/oshokin/recordkit/pkg/collection"
	"github.com/oshokin/recordkit/pkg/record"
)

// indentWidth is the indentation used by both output formats.
const indentWidth = 2

// ErrUnknownFormat indicates that the output format is not supported.
var ErrUnknownFormat = errors.New("unknown output format")

// Renderer writes values to an output in one format.
type Renderer struct {
	format string
	out    io.Writer
}

// New creates a renderer for the json or yaml format.
func New(format string, out io.Writer) (*Renderer, error) {
	switch format {
	case constants.FormatJSON, constants.FormatYAML:
		return &Renderer{format: format, out: out}, nil
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownFormat, format)
	}
}

// Format returns the output format.
func (r *Renderer) Format() string {
	return r.format
}

// Render writes v followed by a newline.
func (r *Renderer) Render(v any) error {
	if r.format == constants.FormatYAML {
		return r.renderYAML(v)
	}

	encoder := json.NewEncoder(r.out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}

	return nil
}

// RenderSearch writes the single match, or null, for single-match modes
// and the list of matches for the All mode.
func (r *Renderer) RenderSearch(result record.SearchResult) error {
	if result.Mode == collection.All {
		return r.Render(result.Matches)
	}

	return r.Render(result.Match)
}

// RenderGroups writes groups as a mapping that keeps the first-occurrence order of keys.
func RenderGroups[T any](r *Renderer, groups *collection.Groups[T]) error {
	if r.format == constants.FormatYAML {
		node, err := groupsNode(groups)
		if err != nil {
			return err
		}

		return r.renderYAML(node)
	}

	data, err := groupsJSON(groups)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("failed to indent json: %w", err)
	}

	buf.WriteByte('\n')

	if _, err = r.out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func (r *Renderer) renderYAML(v any) error {
	encoder := yaml.NewEncoder(r.out)
	encoder.SetIndent(indentWidth)

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}

	return nil
}

func groupsJSON[T any](groups *collection.Groups[T]) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	first := true

	for key, items := range groups.All() {
		if !first {
			buf.WriteByte(',')
		}

		first = false

		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("failed to encode group key '%s': %w", key, err)
		}

		encodedItems, err := json.Marshal(items)
		if err != nil {
			return nil, fmt.Errorf("failed to encode group '%s': %w", key, err)
		}

		buf.Write(encodedKey)
		buf.WriteByte(':')
		buf.Write(encodedItems)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func groupsNode[T any](groups *collection.Groups[T]) (*yaml.Node, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for key, items := range groups.All() {
		var value yaml.Node
		if err := value.Encode(items); err != nil {
			return nil, fmt.Errorf("failed to encode group '%s': %w", key, err)
		}

		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&value,
		)
	}

	return mapping, nil
}
