// Package fs adapts the local filesystem to the core ports: it loads
// datasets and templates, writes the rendered page atomically, discovers
// dataset files, and watches inputs for changes.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"zoogen/pkg/core"
)

// decoder parses one dataset format into records.
type decoder func(data []byte, out *[]core.Record) error

// decoders maps file extensions to the format that handles them.
var decoders = map[string]decoder{
	".json": func(data []byte, out *[]core.Record) error {
		return json.Unmarshal(data, out)
	},
	".yaml": decodeYAML,
	".yml":  decodeYAML,
}

func decodeYAML(data []byte, out *[]core.Record) error {
	return yaml.Unmarshal(data, out)
}

// Extensions returns the dataset file extensions this adapter understands.
func Extensions() []string {
	exts := make([]string, 0, len(decoders))
	for ext := range decoders {
		exts = append(exts, ext)
	}
	return exts
}

// Source implements core.Source on top of the local filesystem.
type Source struct {
	DataPath     string
	TemplatePath string
	Logger       *slog.Logger
}

// NewSource creates a filesystem-backed source for the given dataset and
// template files.
func NewSource(dataPath, templatePath string, logger *slog.Logger) *Source {
	return &Source{
		DataPath:     dataPath,
		TemplatePath: templatePath,
		Logger:       logger,
	}
}

// Records reads and decodes the dataset. The format is chosen by file
// extension.
func (s *Source) Records(ctx context.Context) ([]core.Record, error) {
	data, err := readSource(s.DataPath)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(s.DataPath))
	dec, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported dataset format %q", core.ErrMalformedSource, ext)
	}

	var records []core.Record
	if err := dec(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrMalformedSource, err)
	}

	if s.Logger != nil {
		s.Logger.Debug("dataset loaded", "path", s.DataPath, "records", len(records))
	}
	return records, nil
}

// Template reads the raw page template.
func (s *Source) Template(ctx context.Context) (string, error) {
	data, err := readSource(s.TemplatePath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// readSource reads a file, classifying a missing file as ErrSourceMissing so
// callers can surface it as a user-facing message instead of a raw I/O error.
func readSource(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", core.ErrSourceMissing, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
