// Package manifest reads the raw workspace manifest from a storage tree.
//
// The manifest is looked up at two fixed paths at the root of the tree:
// angular.json first, then the legacy workspace.json. Only parseability is
// checked; the shape of individual projects is left to the workspace package.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	oerrors "github.com/opmodel/wsproj/internal/errors"
	"github.com/opmodel/wsproj/internal/output"
)

const (
	// PrimaryPath is the conventional manifest location.
	PrimaryPath = "angular.json"

	// LegacyPath is checked when PrimaryPath does not exist.
	LegacyPath = "workspace.json"
)

// SearchPaths returns the manifest paths in lookup order.
func SearchPaths() []string {
	return []string{PrimaryPath, LegacyPath}
}

// Schema is the raw view of a workspace manifest.
type Schema struct {
	// Path is the manifest path the schema was read from.
	Path string `json:"-"`

	// Version is the declared manifest version, zero when absent.
	Version int `json:"version,omitempty"`

	// DefaultProject is the declared default project, empty when absent.
	DefaultProject string `json:"defaultProject,omitempty"`

	// Projects holds the undecoded project entries keyed by name.
	Projects map[string]json.RawMessage `json:"projects,omitempty"`
}

// Read returns the manifest content and the path it was found at.
func Read(fsys fs.FS) ([]byte, string, error) {
	for _, p := range SearchPaths() {
		data, err := fs.ReadFile(fsys, p)
		if err == nil {
			return data, p, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, p, fmt.Errorf("reading %s: %w", p, err)
		}
		output.Debug("workspace manifest not at path", "path", p)
	}
	return nil, "", oerrors.NewManifestNotFoundError(SearchPaths())
}

// Load reads and parses the workspace manifest.
func Load(fsys fs.FS) (*Schema, error) {
	data, path, err := Read(fsys)
	if err != nil {
		return nil, err
	}
	return Parse(path, data)
}

// Parse parses manifest content read from path.
// Any valid JSON document is accepted; fields with unexpected shapes are ignored.
func Parse(path string, data []byte) (*Schema, error) {
	s := &Schema{Path: path}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		// Valid JSON that is not an object reads as an empty manifest.
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, oerrors.NewManifestInvalidError(path, err)
		}
	}

	decodeField(fields, "defaultProject", &s.DefaultProject)
	decodeField(fields, "version", &s.Version)
	decodeField(fields, "projects", &s.Projects)

	output.Debug("loaded workspace manifest",
		"path", path,
		"version", s.Version,
		"defaultProject", s.DefaultProject,
		"projects", len(s.Projects),
	)

	return s, nil
}

// decodeField decodes fields[key] into dst, leaving dst untouched when the
// key is absent or holds a value of another shape.
func decodeField[T any](fields map[string]json.RawMessage, key string, dst *T) {
	raw, ok := fields[key]
	if !ok {
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		output.Debug("ignoring manifest field", "field", key, "error", err)
		return
	}
	*dst = v
}
