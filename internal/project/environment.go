package project

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/opmodel/wsproj/internal/ast"
	oerrors "github.com/opmodel/wsproj/internal/errors"
	"github.com/opmodel/wsproj/internal/output"
	"github.com/opmodel/wsproj/internal/workspace"
)

// DefaultSourceExt is the extension of the environment source file.
const DefaultSourceExt = "ts"

var (
	// ErrEnvironmentNotFound indicates the environment source file does not exist.
	ErrEnvironmentNotFound = fmt.Errorf("environment file %w", oerrors.ErrNotFound)

	// ErrNoDefinition is returned when no project definition is given.
	ErrNoDefinition = errors.New("no project definition")

	// ErrPathEscapesWorkspace indicates a project path that leaves the workspace root.
	ErrPathEscapesWorkspace = fmt.Errorf("path escapes workspace: %w", oerrors.ErrValidation)
)

// SourceRoot returns the declared source root, or {root}/src. def must not be nil.
func SourceRoot(def *workspace.ProjectDefinition) string {
	if def.SourceRoot != "" {
		return def.SourceRoot
	}
	return def.Root + "/src"
}

// EnvironmentPath returns {sourceRoot}/environments/environment.<ext> as a
// slash-separated path relative to the workspace root. An empty ext means
// DefaultSourceExt. Paths that leave the workspace keep their leading "..";
// fs.ValidPath rejects them.
func EnvironmentPath(def *workspace.ProjectDefinition, ext string) string {
	if ext == "" {
		ext = DefaultSourceExt
	}
	ext = strings.TrimPrefix(ext, ".")
	p := SourceRoot(def) + "/environments/environment." + ext
	return cleanFSPath(p)
}

// cleanFSPath treats p as relative to the workspace root and cleans it.
func cleanFSPath(p string) string {
	return path.Clean(strings.TrimLeft(p, "/"))
}

type envOptions struct {
	ext string
	ctx context.Context
}

// EnvOption configures ReadEnvironment.
type EnvOption func(*envOptions)

// WithSourceExt sets the environment file extension.
func WithSourceExt(ext string) EnvOption {
	return func(o *envOptions) { o.ext = ext }
}

// WithContext sets the context used for parsing.
func WithContext(ctx context.Context) EnvOption {
	return func(o *envOptions) { o.ctx = ctx }
}

// ReadEnvironment returns the environment expression of def. Libraries
// return nil without touching fsys. A nil expression with a nil error means
// the file exists but declares no environment object.
func ReadEnvironment(fsys fs.FS, def *workspace.ProjectDefinition, opts ...EnvOption) (*ast.EnvironmentExpression, error) {
	if def == nil {
		return nil, ErrNoDefinition
	}
	if IsLibrary(def) {
		return nil, nil
	}

	o := envOptions{ext: DefaultSourceExt, ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	envPath := EnvironmentPath(def, o.ext)
	log := output.ProjectLogger(def.Name)

	if !fs.ValidPath(envPath) {
		log.Warn("environment path is outside the workspace", "path", envPath)
		return nil, &oerrors.DetailError{
			Type:     "invalid project path",
			Message:  "The environment file of the project lies outside the workspace root.",
			Location: envPath,
			Hint:     "Declare root and sourceRoot relative to the workspace root.",
			Cause:    ErrPathEscapesWorkspace,
		}
	}

	src, err := fs.ReadFile(fsys, envPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &oerrors.DetailError{
				Type:     "environment file not found",
				Message:  "The project does not have an environment file.",
				Location: envPath,
				Cause:    ErrEnvironmentNotFound,
			}
		}
		return nil, fmt.Errorf("reading %s: %w", envPath, err)
	}

	expr, err := ast.FindEnvironmentExpressionCtx(o.ctx, src)
	if err != nil {
		return nil, err
	}
	if expr == nil {
		log.Debug("no environment expression", "path", envPath)
		return nil, nil
	}

	log.Debug("found environment expression", "path", envPath, "keys", len(expr.Properties))
	return expr, nil
}
