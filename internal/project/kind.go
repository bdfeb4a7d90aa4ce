package project

import "github.com/opmodel/wsproj/internal/workspace"

// Project kinds declared under the projectType extension.
const (
	TypeLibrary     = "library"
	TypeApplication = "application"
)

// IsLibrary reports whether def declares itself a library.
// A missing or non-string projectType is not a library.
func IsLibrary(def *workspace.ProjectDefinition) bool {
	if def == nil {
		return false
	}
	return def.Extensions.ProjectType() == TypeLibrary
}
