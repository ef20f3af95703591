package config

// Storage drivers.
const (
	DriverFile     = "file"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// ConfigStorage selects where contacts and notes are kept.
type ConfigStorage struct {
	Driver  string `mapstructure:"driver"   validate:"oneof=file mysql postgres"`
	DataDir string `mapstructure:"data_dir" validate:"required_if=Driver file"`
	DSN     string `mapstructure:"dsn"`
}

// ConfigLogger configures the log output. An empty path discards all log output and "-" writes
// to stderr.
type ConfigLogger struct {
	Level string `mapstructure:"level" validate:"oneof=trace debug info warn error disabled"`
	Path  string `mapstructure:"path"`
}

// ConfigUI configures the console.
type ConfigUI struct {
	Color               bool   `mapstructure:"color"`
	SuggestionThreshold int    `mapstructure:"suggestion_threshold" validate:"min=0,max=100"`
	Prompt              string `mapstructure:"prompt"`
}

// Config is the complete configuration of the assistant.
type Config struct {
	Storage *ConfigStorage `mapstructure:"storage"`
	Logger  *ConfigLogger  `mapstructure:"logger"`
	UI      *ConfigUI      `mapstructure:"ui"`
}
