// Package workspace builds the normalized project collection of a workspace.
package workspace

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"slices"

	oerrors "github.com/opmodel/wsproj/internal/errors"
	"github.com/opmodel/wsproj/internal/manifest"
	"github.com/opmodel/wsproj/internal/output"
)

// ErrNoSuchProject is returned by Collection.Get on a miss.
var ErrNoSuchProject = errors.New("no such project")

// ProjectDefinition is the normalized view of one project entry.
type ProjectDefinition struct {
	// Name is the key the project is declared under.
	Name string `json:"name"`

	// Root is the project root relative to the workspace root.
	Root string `json:"root"`

	// SourceRoot is the explicit source root, empty when not declared.
	SourceRoot string `json:"sourceRoot,omitempty"`

	// Prefix is the selector prefix, empty when not declared.
	Prefix string `json:"prefix,omitempty"`

	// Targets are the build targets, from "architect" or "targets".
	Targets map[string]Target `json:"targets,omitempty"`

	// Extensions holds every other attribute, including projectType.
	Extensions Extensions `json:"extensions,omitempty"`
}

// Target is a single builder target of a project.
type Target struct {
	Builder              string           `json:"builder"`
	DefaultConfiguration string           `json:"defaultConfiguration,omitempty"`
	Options              map[string]Value `json:"options,omitempty"`
	Configurations       map[string]Value `json:"configurations,omitempty"`
}

// ProjectType returns the declared project kind.
func (p *ProjectDefinition) ProjectType() string {
	return p.Extensions.ProjectType()
}

// Collection is the set of projects declared in a workspace.
type Collection struct {
	projects map[string]*ProjectDefinition
}

// NewCollection returns a collection over the given definitions.
// Later definitions replace earlier ones with the same name.
func NewCollection(defs ...*ProjectDefinition) *Collection {
	c := &Collection{projects: make(map[string]*ProjectDefinition, len(defs))}
	for _, d := range defs {
		c.projects[d.Name] = d
	}
	return c
}

// Get returns the project declared under name.
func (c *Collection) Get(name string) (*ProjectDefinition, error) {
	if p, ok := c.projects[name]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNoSuchProject, name)
}

// Names returns the project names in sorted order.
func (c *Collection) Names() []string {
	return slices.Sorted(maps.Keys(c.projects))
}

// Len returns the number of projects.
func (c *Collection) Len() int {
	return len(c.projects)
}

// knownFields are decoded into ProjectDefinition fields, not Extensions.
var knownFields = map[string]bool{
	"root":       true,
	"sourceRoot": true,
	"prefix":     true,
	"architect":  true,
	"targets":    true,
}

// LoadProjects reads the workspace manifest from fsys and returns its projects.
func LoadProjects(ctx context.Context, fsys fs.FS) (*Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, path, err := manifest.Read(fsys)
	if err != nil {
		return nil, err
	}

	var doc struct {
		Projects map[string]json.RawMessage `json:"projects"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, oerrors.NewManifestInvalidError(path, err)
	}

	c := NewCollection()
	for name, raw := range doc.Projects {
		def, err := decodeProject(name, raw)
		if err != nil {
			output.Debug("skipping malformed project entry", "project", name, "error", err)
			continue
		}
		c.projects[name] = def
	}

	output.Debug("loaded project collection", "path", path, "projects", c.Len())
	return c, nil
}

func decodeProject(name string, raw json.RawMessage) (*ProjectDefinition, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, fmt.Errorf("project %q is null", name)
	}

	def := &ProjectDefinition{Name: name, Extensions: Extensions{}}

	for key, dst := range map[string]*string{
		"root":       &def.Root,
		"sourceRoot": &def.SourceRoot,
		"prefix":     &def.Prefix,
	} {
		v, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return nil, fmt.Errorf("project %q: %s: %w", name, key, err)
		}
	}

	targets := fields["targets"]
	if targets == nil {
		targets = fields["architect"]
	}
	if targets != nil {
		if err := json.Unmarshal(targets, &def.Targets); err != nil {
			return nil, fmt.Errorf("project %q: targets: %w", name, err)
		}
	}

	for key, v := range fields {
		if knownFields[key] {
			continue
		}
		var ext Value
		if err := json.Unmarshal(v, &ext); err != nil {
			return nil, fmt.Errorf("project %q: %s: %w", name, key, err)
		}
		def.Extensions[key] = ext
	}

	return def, nil
}
