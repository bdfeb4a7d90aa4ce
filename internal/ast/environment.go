// Package ast locates the environment configuration object in TypeScript sources.
package ast

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// EnvironmentVariable is the binding name searched for first.
const EnvironmentVariable = "environment"

// EnvironmentExpression is the object literal holding a project's environment.
type EnvironmentExpression struct {
	// Text is the source text of the object literal.
	Text string `json:"text"`

	// StartLine and EndLine are 1-based.
	StartLine int `json:"startLine"`
	EndLine   int `json:"endLine"`

	// Properties are the top-level members in source order.
	Properties []Property `json:"properties"`
}

// Property is one top-level member of the object literal.
type Property struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Get returns the source text of the value stored under key.
func (e *EnvironmentExpression) Get(key string) (string, bool) {
	for _, p := range e.Properties {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Keys returns the property keys in source order.
func (e *EnvironmentExpression) Keys() []string {
	keys := make([]string, len(e.Properties))
	for i, p := range e.Properties {
		keys[i] = p.Key
	}
	return keys
}

// FindEnvironmentExpression parses src as TypeScript and returns the object
// literal bound to the environment variable. When no such binding exists the
// first object literal declaring a production key is returned. A nil result
// with a nil error means no expression was found.
func FindEnvironmentExpression(src []byte) (*EnvironmentExpression, error) {
	return FindEnvironmentExpressionCtx(context.Background(), src)
}

// FindEnvironmentExpressionCtx is FindEnvironmentExpression with a context.
func FindEnvironmentExpressionCtx(ctx context.Context, src []byte) (*EnvironmentExpression, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(typescript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parsing environment source: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()

	if obj := findBoundObject(root, src, EnvironmentVariable); obj != nil {
		return newExpression(obj, src), nil
	}
	if obj := findObjectWithKey(root, src, "production"); obj != nil {
		return newExpression(obj, src), nil
	}
	return nil, nil
}

// findBoundObject returns the object literal assigned to a variable named name.
func findBoundObject(node *sitter.Node, src []byte, name string) *sitter.Node {
	if node.Type() == "variable_declarator" {
		id := node.ChildByFieldName("name")
		if id != nil && id.Content(src) == name {
			if obj := unwrapObject(node.ChildByFieldName("value")); obj != nil {
				return obj
			}
		}
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if found := findBoundObject(node.NamedChild(i), src, name); found != nil {
			return found
		}
	}
	return nil
}

// unwrapObject strips type assertions and parentheses around an object literal.
func unwrapObject(node *sitter.Node) *sitter.Node {
	for node != nil {
		switch node.Type() {
		case "object":
			return node
		case "as_expression", "satisfies_expression", "parenthesized_expression", "non_null_expression":
			node = node.NamedChild(0)
		default:
			return nil
		}
	}
	return nil
}

// findObjectWithKey returns the first object literal, in document order, with a top-level key.
func findObjectWithKey(node *sitter.Node, src []byte, key string) *sitter.Node {
	if node.Type() == "object" {
		for _, p := range properties(node, src) {
			if p.Key == key {
				return node
			}
		}
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if found := findObjectWithKey(node.NamedChild(i), src, key); found != nil {
			return found
		}
	}
	return nil
}

func newExpression(obj *sitter.Node, src []byte) *EnvironmentExpression {
	return &EnvironmentExpression{
		Text:       obj.Content(src),
		StartLine:  int(obj.StartPoint().Row) + 1,
		EndLine:    int(obj.EndPoint().Row) + 1,
		Properties: properties(obj, src),
	}
}

func properties(obj *sitter.Node, src []byte) []Property {
	var props []Property
	for i := 0; i < int(obj.NamedChildCount()); i++ {
		member := obj.NamedChild(i)
		switch member.Type() {
		case "pair":
			key := member.ChildByFieldName("key")
			value := member.ChildByFieldName("value")
			if key == nil || value == nil {
				continue
			}
			props = append(props, Property{Key: keyText(key, src), Value: value.Content(src)})
		case "shorthand_property_identifier":
			name := member.Content(src)
			props = append(props, Property{Key: name, Value: name})
		case "method_definition":
			if name := member.ChildByFieldName("name"); name != nil {
				props = append(props, Property{Key: keyText(name, src), Value: member.Content(src)})
			}
		}
	}
	return props
}

func keyText(key *sitter.Node, src []byte) string {
	text := key.Content(src)
	if key.Type() == "string" {
		text = strings.Trim(text, `"'`)
	}
	return text
}
