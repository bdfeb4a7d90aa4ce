package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/wsproj/internal/output"
	"github.com/opmodel/wsproj/internal/project"
)

// NewResolveCmd creates the resolve command.
func NewResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [name]",
		Short: "Resolve a project name",
		Long: `Resolve a project name against the workspace manifest.

The name is tried as given, then dash-cased, camel-cased and pascal-cased.
The first match wins. Without a name, the manifest's defaultProject is used.

Examples:
  # Resolve the default project
  wsproj resolve

  # Resolve a differently-cased name
  wsproj resolve myApp -w ./my-workspace -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withExitCode(runResolve(cmd, args))
		},
	}
}

func runResolve(cmd *cobra.Command, args []string) error {
	fsys, _, err := openWorkspace()
	if err != nil {
		return err
	}

	resolved, err := project.Resolve(cmd.Context(), fsys, nameArg(args))
	if err != nil {
		return err
	}

	view := newProjectView(resolved.Definition, resolved.Strategy, GetSourceExt())
	view.Name = resolved.Name
	return output.Write(cmd.OutOrStdout(), GetOutputFormat(), view)
}

func nameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
