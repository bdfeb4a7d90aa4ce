package cmd

import (
	"github.com/opmodel/wsproj/internal/ast"
	"github.com/opmodel/wsproj/internal/output"
	"github.com/opmodel/wsproj/internal/project"
	"github.com/opmodel/wsproj/internal/workspace"
)

// projectView is the printable form of a project.
type projectView struct {
	Name            string `json:"name"`
	Strategy        string `json:"strategy,omitempty"`
	Kind            string `json:"kind"`
	Root            string `json:"root"`
	SourceRoot      string `json:"sourceRoot"`
	EnvironmentPath string `json:"environmentPath,omitempty"`
}

func newProjectView(def *workspace.ProjectDefinition, strategy, ext string) projectView {
	v := projectView{
		Name:       def.Name,
		Strategy:   strategy,
		Kind:       kindOf(def),
		Root:       def.Root,
		SourceRoot: project.SourceRoot(def),
	}
	if !project.IsLibrary(def) {
		v.EnvironmentPath = project.EnvironmentPath(def, ext)
	}
	return v
}

func kindOf(def *workspace.ProjectDefinition) string {
	if t := def.ProjectType(); t != "" {
		return t
	}
	return "-"
}

// Table implements output.Tabular.
func (v projectView) Table() *output.Table {
	return output.NewTable("NAME", "STRATEGY", "KIND", "ROOT", "SOURCE ROOT").
		Row(output.StyleNoun.Render(v.Name), v.Strategy, output.KindStyle(v.Kind).Render(v.Kind), v.Root, v.SourceRoot)
}

type projectList []projectView

// Table implements output.Tabular.
func (l projectList) Table() *output.Table {
	t := output.NewTable("NAME", "KIND", "ROOT", "SOURCE ROOT")
	for _, v := range l {
		t.Row(output.StyleNoun.Render(v.Name), output.KindStyle(v.Kind).Render(v.Kind), v.Root, v.SourceRoot)
	}
	return t
}

// environmentView is the printable form of an environment expression.
type environmentView struct {
	Project    string                     `json:"project"`
	Path       string                     `json:"path"`
	Expression *ast.EnvironmentExpression `json:"expression"`
}

// Table implements output.Tabular.
func (v environmentView) Table() *output.Table {
	t := output.NewTable("KEY", "VALUE")
	if v.Expression == nil {
		return t
	}
	for _, p := range v.Expression.Properties {
		t.Row(p.Key, p.Value)
	}
	return t
}
