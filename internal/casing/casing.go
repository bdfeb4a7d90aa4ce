// Package casing provides the ordered name transforms used to match
// loosely-cased project names against a workspace.
package casing

import (
	"errors"
	"strings"

	"github.com/ettle/strcase"
)

// ErrEmptyName is returned by transforms given an empty name.
var ErrEmptyName = errors.New("empty name")

// Strategy is a named name transform.
type Strategy struct {
	Name      string
	Transform func(string) (string, error)
}

// Apply runs the transform.
func (s Strategy) Apply(name string) (string, error) {
	return s.Transform(name)
}

// Dash and camel casers split on case changes but keep acronyms whole,
// so "myAPIApp" becomes "my-apiapp" like the devkit string helpers.
var (
	dashCaser  = strcase.NewCaser(false, nil, strcase.NewSplitFn([]rune{'-', '_', ' '}, strcase.SplitCase))
	camelCaser = strcase.NewCaser(false, nil, strcase.NewSplitFn([]rune{'-', '_', '.', ' '}, strcase.SplitCase))
)

// The fixed strategies, in resolution order. The resolver chains them, so
// each one receives the previous strategy's output.
var (
	Identity  = Strategy{Name: "identity", Transform: identity}
	Dasherize = Strategy{Name: "dash-case", Transform: dasherize}
	Camelize  = Strategy{Name: "camel-case", Transform: camelize}
	Classify  = Strategy{Name: "pascal-case", Transform: classify}
)

// DefaultSequence returns identity, dash-case, camel-case and pascal-case, in that order.
func DefaultSequence() []Strategy {
	return []Strategy{Identity, Dasherize, Camelize, Classify}
}

func identity(name string) (string, error) {
	return name, nil
}

func dasherize(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrEmptyName
	}
	return dashCaser.ToKebab(name), nil
}

func camelize(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrEmptyName
	}
	return camelCaser.ToCamel(name), nil
}

// classify pascal-cases each dot-separated segment and keeps the dots.
func classify(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrEmptyName
	}
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = camelCaser.ToPascal(p)
	}
	return strings.Join(parts, "."), nil
}
