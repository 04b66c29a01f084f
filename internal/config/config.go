package config

type Config struct {
	Source     SourceConfig   `mapstructure:"source"`
	Database   DatabaseConfig `mapstructure:"database"`
	Log        LogConfig      `mapstructure:"log"`
	Output     OutputConfig   `mapstructure:"output"`
	Report     ReportConfig   `mapstructure:"report"`
	Server     ServerConfig   `mapstructure:"server"`
	ConfigPath string         `mapstructure:"-"`
}

// SourceConfig selects where transactions are loaded from.
// Driver is "json" (Path points to a fixture file) or "sqlite" (Database.Path).
type SourceConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text|json
}

type OutputConfig struct {
	Format string `mapstructure:"format"` // table|json
}

// ReportConfig holds the names the full report asks about when no flag is given.
type ReportConfig struct {
	Sender string `mapstructure:"sender"`
	Client string `mapstructure:"client"`
	Top    int    `mapstructure:"top"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

func NewDefault() *Config {
	return &Config{
		Source:   SourceConfig{Driver: "json", Path: "transactions.json"},
		Database: DatabaseConfig{Path: ""},
		Log:      LogConfig{Level: "warn", Format: "text"},
		Output:   OutputConfig{Format: "table"},
		Report:   ReportConfig{Sender: "Aunt Polly", Client: "Tom Shelby", Top: 3},
		Server:   ServerConfig{Addr: ":8080"},
	}
}
