// Package project resolves a loosely-cased project name against a workspace
// and locates the environment configuration of application projects.
package project

import (
	"context"
	"io/fs"

	"github.com/opmodel/wsproj/internal/casing"
	oerrors "github.com/opmodel/wsproj/internal/errors"
	"github.com/opmodel/wsproj/internal/manifest"
	"github.com/opmodel/wsproj/internal/output"
	"github.com/opmodel/wsproj/internal/workspace"
)

// Resolved is a successfully matched project.
type Resolved struct {
	// Name is the name the project matched under, after any casing transform.
	Name string `json:"name"`

	// Strategy is the casing strategy that produced Name.
	Strategy string `json:"strategy"`

	// Definition is the matched project.
	Definition *workspace.ProjectDefinition `json:"definition"`
}

// ManifestReader provides the raw manifest, used to find the default project.
type ManifestReader interface {
	ReadManifest(fsys fs.FS) (*manifest.Schema, error)
}

// Lookup finds a project by exact name.
type Lookup interface {
	Get(name string) (*workspace.ProjectDefinition, error)
}

// CollectionLoader provides the normalized project collection.
type CollectionLoader interface {
	LoadCollection(ctx context.Context, fsys fs.FS) (Lookup, error)
}

// ManifestReaderFunc adapts a function to ManifestReader.
type ManifestReaderFunc func(fsys fs.FS) (*manifest.Schema, error)

// ReadManifest calls f.
func (f ManifestReaderFunc) ReadManifest(fsys fs.FS) (*manifest.Schema, error) { return f(fsys) }

// CollectionLoaderFunc adapts a function to CollectionLoader.
type CollectionLoaderFunc func(ctx context.Context, fsys fs.FS) (Lookup, error)

// LoadCollection calls f.
func (f CollectionLoaderFunc) LoadCollection(ctx context.Context, fsys fs.FS) (Lookup, error) {
	return f(ctx, fsys)
}

// DefaultManifestReader reads the manifest with manifest.Load.
var DefaultManifestReader ManifestReader = ManifestReaderFunc(manifest.Load)

// DefaultCollectionLoader loads projects with workspace.LoadProjects.
var DefaultCollectionLoader CollectionLoader = CollectionLoaderFunc(
	func(ctx context.Context, fsys fs.FS) (Lookup, error) {
		c, err := workspace.LoadProjects(ctx, fsys)
		if err != nil {
			return nil, err
		}
		return c, nil
	},
)

// Resolver matches names against a workspace.
type Resolver struct {
	manifests   ManifestReader
	collections CollectionLoader
	strategies  []casing.Strategy
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithManifestReader sets the reader used to discover the default project.
func WithManifestReader(r ManifestReader) Option {
	return func(res *Resolver) { res.manifests = r }
}

// WithCollectionLoader sets the project collection source.
func WithCollectionLoader(l CollectionLoader) Option {
	return func(res *Resolver) { res.collections = l }
}

// WithStrategies replaces the casing strategy sequence.
func WithStrategies(s ...casing.Strategy) Option {
	return func(res *Resolver) { res.strategies = s }
}

// NewResolver creates a Resolver using the default collaborators and
// the default casing sequence unless overridden.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		manifests:   DefaultManifestReader,
		collections: DefaultCollectionLoader,
		strategies:  casing.DefaultSequence(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve finds the project named name in the workspace stored in fsys.
// An empty name resolves the manifest's default project. Strategies run
// strictly in order, each transforming the name produced by the previous
// successful transform, and the first match wins. A failing transform keeps
// the previous name; a failing lookup only moves on to the next strategy.
func (r *Resolver) Resolve(ctx context.Context, fsys fs.FS, name string) (*Resolved, error) {
	if name == "" {
		schema, err := r.manifests.ReadManifest(fsys)
		if err != nil {
			return nil, err
		}
		name = schema.DefaultProject
		output.Debug("using default project", "project", name)
	}

	projects, err := r.collections.LoadCollection(ctx, fsys)
	if err != nil {
		return nil, err
	}

	log := output.ProjectLogger(name)
	var tried []string
	seen := make(map[string]bool, len(r.strategies))

	current := name
	for _, s := range r.strategies {
		candidate, err := s.Apply(current)
		if err != nil {
			log.Debug("casing strategy failed", "strategy", s.Name, "input", current, "error", err)
			continue
		}
		current = candidate
		if !seen[candidate] {
			seen[candidate] = true
			tried = append(tried, candidate)
		}

		def, err := lookup(projects, candidate)
		if err != nil {
			log.Debug("casing strategy missed", "strategy", s.Name, "candidate", candidate, "error", err)
			continue
		}
		log.Debug("project resolved", "strategy", s.Name, "name", candidate)
		return &Resolved{Name: candidate, Strategy: s.Name, Definition: def}, nil
	}

	suggestion := suggestFrom(name, projects)
	if suggestion != "" {
		log.Debug("closest project", "name", suggestion)
	}
	return nil, oerrors.NewProjectNotFoundError(name, tried, suggestion)
}

// lookup treats lookup errors and nil results alike as a miss.
func lookup(projects Lookup, name string) (*workspace.ProjectDefinition, error) {
	def, err := projects.Get(name)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, workspace.ErrNoSuchProject
	}
	return def, nil
}

// Resolve resolves name with a default Resolver.
func Resolve(ctx context.Context, fsys fs.FS, name string) (*Resolved, error) {
	return NewResolver().Resolve(ctx, fsys, name)
}
