// Package errors provides sentinel errors for the wsproj CLI.
package errors

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrNotFound indicates a manifest, project, or file was not found.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates content that could not be parsed or accepted.
	ErrValidation = errors.New("validation error")

	// ErrManifestNotFound indicates no workspace manifest exists at any known path.
	ErrManifestNotFound = fmt.Errorf("workspace manifest %w", ErrNotFound)

	// ErrManifestInvalid indicates the workspace manifest is not parseable JSON.
	ErrManifestInvalid = fmt.Errorf("workspace manifest invalid: %w", ErrValidation)

	// ErrProjectNotFound indicates no project matched under any casing strategy.
	ErrProjectNotFound = fmt.Errorf("project %w", ErrNotFound)
)

// Fixed messages attached to the typed failures.
const (
	MsgManifestNotFound = "Could not find the workspace manifest (angular.json or workspace.json)."
	MsgManifestInvalid  = "The workspace manifest is not valid JSON."
	MsgProjectNotFound  = "Unfortunately, the project you specified was not found in the workspace."
)

// DetailError captures structured error information for terminal output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path the error refers to (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	for _, k := range slices.Sorted(maps.Keys(e.Context)) {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewManifestNotFoundError reports that none of the searched paths exist.
func NewManifestNotFoundError(searched []string) error {
	return &DetailError{
		Type:    "workspace manifest not found",
		Message: MsgManifestNotFound,
		Context: map[string]string{"Searched": strings.Join(searched, ", ")},
		Hint:    "Run the command from the workspace root or pass --workspace.",
		Cause:   ErrManifestNotFound,
	}
}

// NewManifestInvalidError reports a manifest that failed to parse.
func NewManifestInvalidError(location string, cause error) error {
	return &DetailError{
		Type:     "workspace manifest invalid",
		Message:  MsgManifestInvalid,
		Location: location,
		Cause:    errors.Join(ErrManifestInvalid, cause),
	}
}

// NewProjectNotFoundError reports a name that matched no project. tried lists
// the candidate names that were looked up; suggestion, when not empty, is the
// closest existing project name.
func NewProjectNotFoundError(name string, tried []string, suggestion string) error {
	ctx := map[string]string{"Project": name}
	if len(tried) > 0 {
		ctx["Tried"] = strings.Join(tried, ", ")
	}
	hint := "Run 'wsproj projects' to list the projects of the workspace."
	if suggestion != "" {
		hint = fmt.Sprintf("Did you mean %q? %s", suggestion, hint)
	}
	return &DetailError{
		Type:    "project not found",
		Message: MsgProjectNotFound,
		Context: ctx,
		Hint:    hint,
		Cause:   ErrProjectNotFound,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
