package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/poiesic/phonemescape/catalog"
	"github.com/poiesic/phonemescape/core"
	"gopkg.in/yaml.v3"
)

// Format names a serialized form of the catalog.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatJSON, FormatCSV, FormatYAML}

// ParseFormat accepts a format name, case-insensitively. "yml" is an alias
// for yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: unsupported export format %q", core.ErrInvalidArgument, s)
	}
}

// FormatForPath picks a format from a file extension.
func FormatForPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", core.ErrInvalidArgument, path)
	}
	return ParseFormat(ext)
}

// Encode serializes c in format.
func Encode(c *catalog.Catalog, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, c, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write serializes c in format to w.
func Write(w io.Writer, c *catalog.Catalog, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(NewDocument(c))
	case FormatCSV:
		return WriteCSV(w, c)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewDocument(c)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: unsupported export format %q", core.ErrInvalidArgument, format)
	}
}

// Read parses a catalog serialized in format.
func Read(r io.Reader, format Format) (*catalog.Catalog, error) {
	switch format {
	case FormatJSON:
		var d Document
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("%w: json: %w", core.ErrInvalidArgument, err)
		}
		return d.Catalog()
	case FormatCSV:
		return ReadCSV(r)
	case FormatYAML:
		var d Document
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("%w: yaml: %w", core.ErrInvalidArgument, err)
		}
		return d.Catalog()
	default:
		return nil, fmt.Errorf("%w: unsupported export format %q", core.ErrInvalidArgument, format)
	}
}
