package uatable

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/categorizr/pkg/categorizr"
)

// Mode selects which case variants of an agent are checked.
type Mode string

const (
	// ModeSensitive checks the agent as given.
	ModeSensitive Mode = "s"
	// ModeInsensitive checks the agent as given, lower-cased and upper-cased.
	ModeInsensitive Mode = "i"
)

// Format is the encoding of a table document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Row is a single [agent, expected category, mode] entry.
type Row struct {
	Agent    string
	Expected categorizr.Category
	Mode     Mode
}

// Table is an ordered list of rows.
type Table []Row

// Decode reads a table document: a list of three-element string lists.
func Decode(r io.Reader, format Format) (Table, error) {
	var raw []any

	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&raw); err != nil {
			return nil, errors.Join(ErrDecodeFailed, err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Join(ErrDecodeFailed, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if len(raw) == 0 {
		return nil, ErrEmptyTable
	}

	table := make(Table, 0, len(raw))
	for i, item := range raw {
		cells, ok := item.([]any)
		if !ok {
			return nil, fmt.Errorf("row %d: %w: expected a list, got %T", i, ErrMalformedRow, item)
		}
		row, err := parseRow(cells)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		table = append(table, row)
	}
	return table, nil
}

// LoadFile reads a table from path, picking the format from the extension.
func LoadFile(path string) (Table, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f, format)
}

// FormatFromPath maps .json, .yaml and .yml extensions to a Format.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

func parseRow(cells []any) (Row, error) {
	if len(cells) != 3 {
		return Row{}, fmt.Errorf("%w: expected 3 cells, got %d", ErrMalformedRow, len(cells))
	}

	values := make([]string, len(cells))
	for i, c := range cells {
		s, ok := c.(string)
		if !ok {
			return Row{}, fmt.Errorf("%w: cell %d is %T, not a string", ErrMalformedRow, i, c)
		}
		values[i] = s
	}

	expected, err := categorizr.ParseCategory(values[1])
	if err != nil {
		return Row{}, fmt.Errorf("%w: %q", err, values[1])
	}

	mode := Mode(values[2])
	if mode != ModeSensitive && mode != ModeInsensitive {
		return Row{}, fmt.Errorf("%w: %q", ErrUnknownMode, values[2])
	}

	return Row{Agent: values[0], Expected: expected, Mode: mode}, nil
}
