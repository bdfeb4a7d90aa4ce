package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/wsproj/internal/output"
	"github.com/opmodel/wsproj/internal/workspace"
)

// NewProjectsCmd creates the projects command.
func NewProjectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List the projects of the workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withExitCode(runProjects(cmd, args))
		},
	}
}

func runProjects(cmd *cobra.Command, _ []string) error {
	fsys, dir, err := openWorkspace()
	if err != nil {
		return err
	}

	projects, err := workspace.LoadProjects(cmd.Context(), fsys)
	if err != nil {
		return err
	}

	ext := GetSourceExt()
	list := make(projectList, 0, projects.Len())
	for _, name := range projects.Names() {
		def, err := projects.Get(name)
		if err != nil {
			return err
		}
		list = append(list, newProjectView(def, "", ext))
	}

	if len(list) == 0 {
		output.Warn("workspace declares no projects", "workspace", dir)
	}
	return output.Write(cmd.OutOrStdout(), GetOutputFormat(), list)
}
