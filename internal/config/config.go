// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the wsproj configuration.
// Loaded from ~/.wsproj/config.yaml.
type Config struct {
	// Workspace is the default workspace root directory.
	// Env: WSPROJ_WORKSPACE, Default: "."
	Workspace string `mapstructure:"workspace" yaml:"workspace,omitempty"`

	// SourceExt is the extension of environment source files.
	// Env: WSPROJ_SOURCE_EXT, Default: "ts"
	SourceExt string `mapstructure:"sourceExt" yaml:"sourceExt,omitempty"`

	// Output is the default output format.
	// Env: WSPROJ_OUTPUT, Default: "table"
	Output string `mapstructure:"output" yaml:"output,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// Defaults for unset configuration values.
const (
	DefaultWorkspace = "."
	DefaultSourceExt = "ts"
	DefaultOutput    = "table"
)

// DefaultConfig returns a Config with all default values populated.
// Used by `wsproj config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		Workspace: DefaultWorkspace,
		SourceExt: DefaultSourceExt,
		Output:    DefaultOutput,
		Log:       LogConfig{Timestamps: &timestamps},
	}
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Workspace == "" {
		out.Workspace = DefaultWorkspace
	}
	if out.SourceExt == "" {
		out.SourceExt = DefaultSourceExt
	}
	if out.Output == "" {
		out.Output = DefaultOutput
	}
	return &out
}
