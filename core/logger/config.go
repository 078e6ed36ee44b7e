package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level to log (debug, info, warn, error).
	Level string `mapstructure:"level" default:"debug"`
	// Format is the log encoding (json, console).
	Format string `mapstructure:"format" default:"console"`
	// File is a log file the entries are appended to, relative to the working directory.
	// An empty value logs to stderr only.
	File string `mapstructure:"file" default:"config_server.log"`
}
