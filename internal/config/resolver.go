package config

import (
	"os"

	"github.com/opmodel/wsproj/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value with its source.
type ResolvedValue struct {
	// Key is the configuration key.
	Key string
	// Value is the resolved value.
	Value string
	// Source indicates where the value came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// resolveString resolves one value using precedence: flag > env > config > default.
func resolveString(key, flagValue, envName, configValue, defaultValue string) ResolvedValue {
	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, flagValue},
		{SourceEnv, os.Getenv(envName)},
		{SourceConfig, configValue},
		{SourceDefault, defaultValue},
	}

	result := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}
	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		result.Shadowed[c.source] = c.value
	}
	return result
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) WSPROJ_CONFIG env, (3) ~/.wsproj/config.yaml default
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}
	return resolveString("config", opts.FlagValue, EnvConfig, "", paths.ConfigFile), nil
}

// ResolveAllOptions holds the inputs for ResolveAll.
type ResolveAllOptions struct {
	ConfigFlag    string
	WorkspaceFlag string
	SourceExtFlag string
	OutputFlag    string

	// Config is the loaded config file, may be nil.
	Config *Config
}

// ResolvedConfig holds every resolved configuration value.
type ResolvedConfig struct {
	ConfigPath ResolvedValue
	Workspace  ResolvedValue
	SourceExt  ResolvedValue
	Output     ResolvedValue
}

// Values returns all resolved values in a fixed order.
func (r *ResolvedConfig) Values() []ResolvedValue {
	return []ResolvedValue{r.ConfigPath, r.Workspace, r.SourceExt, r.Output}
}

// ResolveAll resolves every configuration value.
func ResolveAll(opts ResolveAllOptions) (*ResolvedConfig, error) {
	cfgPath, err := ResolveConfigPath(ResolveConfigPathOptions{FlagValue: opts.ConfigFlag})
	if err != nil {
		return nil, err
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}

	return &ResolvedConfig{
		ConfigPath: cfgPath,
		Workspace:  resolveString("workspace", opts.WorkspaceFlag, EnvWorkspace, cfg.Workspace, DefaultWorkspace),
		SourceExt:  resolveString("sourceExt", opts.SourceExtFlag, EnvSourceExt, cfg.SourceExt, DefaultSourceExt),
		Output:     resolveString("output", opts.OutputFlag, EnvOutput, cfg.Output, DefaultOutput),
	}, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
