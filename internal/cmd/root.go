// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/opmodel/wsproj/internal/config"
	oerrors "github.com/opmodel/wsproj/internal/errors"
	"github.com/opmodel/wsproj/internal/output"
)

var (
	// Global flags
	workspaceFlag    string
	configFlag       string
	outputFormatFlag string
	sourceExtFlag    string
	verboseFlag      bool
	timestampsFlag   bool

	// Resolved configuration (loaded during PersistentPreRunE)
	resolvedConfig *config.ResolvedConfig
)

// NewRootCmd creates the root command for the wsproj CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wsproj",
		Short: "Workspace project resolver",
		Long: `wsproj resolves projects in an Angular-style workspace manifest.

It provides commands to:
  - Resolve a loosely-cased project name to its manifest entry
  - Print the environment configuration of an application project
  - List the projects of a workspace`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&workspaceFlag, "workspace", "w", "", "Workspace root directory (env: WSPROJ_WORKSPACE)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: WSPROJ_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&outputFormatFlag, "output", "o", "", "Output format: table, json, yaml (env: WSPROJ_OUTPUT)")
	rootCmd.PersistentFlags().StringVar(&sourceExtFlag, "ext", "", "Environment source file extension (env: WSPROJ_SOURCE_EXT)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewResolveCmd())
	rootCmd.AddCommand(NewEnvCmd())
	rootCmd.AddCommand(NewProjectsCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	cfgPath, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{FlagValue: configFlag})
	if err != nil {
		return err
	}

	cfg, err := config.NewLoader().Load(cfgPath.Value)
	if err != nil {
		output.Debug("config load error", "error", err)
		// Don't fail here - allow commands that don't need config to work
		cfg = nil
	}

	resolved, err := config.ResolveAll(config.ResolveAllOptions{
		ConfigFlag:    configFlag,
		WorkspaceFlag: workspaceFlag,
		SourceExtFlag: sourceExtFlag,
		OutputFlag:    outputFormatFlag,
		Config:        cfg,
	})
	if err != nil {
		return err
	}
	resolvedConfig = resolved

	// Build LogConfig with precedence: flag > config > default(true)
	logCfg := output.LogConfig{Verbose: verboseFlag}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if cfg != nil && cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLoggingTo(cmd.ErrOrStderr(), logCfg)
	output.ConfigureColor(cmd.OutOrStdout())

	config.LogResolvedValues(resolved.Values())

	if _, ok := output.ParseFormat(resolved.Output.Value); !ok {
		return oerrors.Wrap(oerrors.ErrValidation,
			fmt.Sprintf("invalid output format %q (valid: %v)", resolved.Output.Value, output.ValidFormats()))
	}

	return nil
}

// GetResolvedConfig returns the resolved configuration.
func GetResolvedConfig() *config.ResolvedConfig {
	return resolvedConfig
}

// GetWorkspace returns the resolved workspace root.
func GetWorkspace() string {
	if resolvedConfig != nil {
		return resolvedConfig.Workspace.Value
	}
	if workspaceFlag != "" {
		return workspaceFlag
	}
	return config.DefaultWorkspace
}

// GetSourceExt returns the resolved environment file extension.
func GetSourceExt() string {
	if resolvedConfig != nil {
		return resolvedConfig.SourceExt.Value
	}
	return config.DefaultSourceExt
}

// GetOutputFormat returns the resolved output format.
func GetOutputFormat() output.Format {
	value := outputFormatFlag
	if resolvedConfig != nil {
		value = resolvedConfig.Output.Value
	}
	f, _ := output.ParseFormat(value)
	return f
}

// withExitCode attaches the exit code matching the kind of err.
func withExitCode(err error) error {
	if err == nil {
		return nil
	}
	code := oerrors.ExitCodeFromError(err)
	output.Debug("command failed", "exit", code, "reason", oerrors.ExitCodeName(code))
	return oerrors.NewExitError(err, code)
}

// openWorkspace returns the workspace root as a storage tree.
func openWorkspace() (fs.FS, string, error) {
	dir, err := config.ExpandPath(GetWorkspace())
	if err != nil {
		return nil, "", err
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, dir, oerrors.NewNotFoundError(
			"workspace directory does not exist",
			dir,
			"Pass an existing directory with --workspace.",
		)
	}
	return os.DirFS(dir), dir, nil
}
