package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/wsproj/internal/output"
	"github.com/opmodel/wsproj/internal/project"
)

// NewEnvCmd creates the env command.
func NewEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env [name]",
		Short: "Print the environment configuration of a project",
		Long: `Print the environment object of an application project.

The object is read from {sourceRoot}/environments/environment.<ext>, where
sourceRoot defaults to {root}/src. Library projects have no environment.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withExitCode(runEnv(cmd, args))
		},
	}
}

func runEnv(cmd *cobra.Command, args []string) error {
	fsys, _, err := openWorkspace()
	if err != nil {
		return err
	}

	resolved, err := project.Resolve(cmd.Context(), fsys, nameArg(args))
	if err != nil {
		return err
	}

	log := output.ProjectLogger(resolved.Name)
	if project.IsLibrary(resolved.Definition) {
		log.Info("library project has no environment")
		return nil
	}

	ext := GetSourceExt()
	expr, err := project.ReadEnvironment(fsys, resolved.Definition,
		project.WithSourceExt(ext),
		project.WithContext(cmd.Context()),
	)
	if err != nil {
		return err
	}
	if expr == nil {
		log.Warn("no environment object found", "path", project.EnvironmentPath(resolved.Definition, ext))
	}

	return output.Write(cmd.OutOrStdout(), GetOutputFormat(), environmentView{
		Project:    resolved.Name,
		Path:       project.EnvironmentPath(resolved.Definition, ext),
		Expression: expr,
	})
}
