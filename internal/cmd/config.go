package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/wsproj/internal/config"
	oerrors "github.com/opmodel/wsproj/internal/errors"
	"github.com/opmodel/wsproj/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration operations",
	}
	cmd.AddCommand(NewConfigInitCmd())
	return cmd
}

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write the default configuration to ~/.wsproj/config.yaml,
or to the path given by --config / WSPROJ_CONFIG.

Examples:
  # Initialize configuration
  wsproj config init

  # Overwrite existing configuration
  wsproj config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withExitCode(runConfigInit(cmd, force))
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, force bool) error {
	target := ""
	if rc := GetResolvedConfig(); rc != nil {
		target = rc.ConfigPath.Value
	}
	if target == "" {
		paths, err := config.DefaultPaths()
		if err != nil {
			return oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
		}
		target = paths.ConfigFile
	}

	exists, err := config.ConfigFileExists(target)
	if err != nil {
		return err
	}
	if exists && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: target,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	if err := config.WriteConfig(target, config.DefaultConfig(), true); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark("Configuration written to "+target))
	return nil
}
