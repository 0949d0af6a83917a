package config

const (
	defaultConfigPath     = "~/.config/vccd/config.toml"
	defaultOutputDir      = "."
	defaultStateDir       = "~/.local/share/vccd"
	defaultOutputPattern  = "closecaption_{language}.dat"
	defaultSourceEncoding = "auto"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			StateDir:  defaultStateDir,
		},
		Compile: Compile{
			OutputPattern:  defaultOutputPattern,
			SourceEncoding: defaultSourceEncoding,
			History:        true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
