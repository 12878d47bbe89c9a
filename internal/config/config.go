package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all grid service configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Limits  LimitsConfig  `mapstructure:"limits"`
	Logging LoggingConfig `mapstructure:"logging"`
	Tracing TracingConfig `mapstructure:"tracing"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Addr         string `mapstructure:"addr"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // seconds
	BodyLimit    int    `mapstructure:"body_limit"`    // bytes
}

// LimitsConfig bounds the size of grid operations a single request may ask
// for. Requests exceeding a limit are rejected before touching the engine.
type LimitsConfig struct {
	MaxGridDistance    int `mapstructure:"max_grid_distance"`
	MaxFillCells       int `mapstructure:"max_fill_cells"`
	MaxPolygonVertices int `mapstructure:"max_polygon_vertices"`
	MaxUncompactCells  int `mapstructure:"max_uncompact_cells"`
	MaxBatchCells      int `mapstructure:"max_batch_cells"`
}

// LoggingConfig mirrors the logging package's configuration surface.
type LoggingConfig struct {
	Level     string `mapstructure:"level"`
	Format    string `mapstructure:"format"`
	AddSource bool   `mapstructure:"add_source"`
}

// TracingConfig mirrors the observability package's tracing configuration.
type TracingConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	ServiceName string  `mapstructure:"service_name"`
	Exporter    string  `mapstructure:"exporter"`
	Endpoint    string  `mapstructure:"endpoint"`
	SampleRatio float64 `mapstructure:"sample_ratio"`
}

// Default returns the built-in configuration used when no file or environment
// overrides are present.
func Default(service string) *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  10,
			WriteTimeout: 10,
			BodyLimit:    4 * 1024 * 1024,
		},
		Limits: LimitsConfig{
			MaxGridDistance:    100,
			MaxFillCells:       1_000_000,
			MaxPolygonVertices: 10_000,
			MaxUncompactCells:  1_000_000,
			MaxBatchCells:      50_000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Tracing: TracingConfig{
			ServiceName: service,
			Exporter:    "stdout",
			SampleRatio: 1.0,
		},
	}
}

// Load reads configuration from file and environment variables.
func Load(service string) (*Config, error) {
	v := viper.New()

	// Defaults
	def := Default(service)
	v.SetDefault("server.addr", def.Server.Addr)
	v.SetDefault("server.read_timeout", def.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", def.Server.WriteTimeout)
	v.SetDefault("server.body_limit", def.Server.BodyLimit)
	v.SetDefault("limits.max_grid_distance", def.Limits.MaxGridDistance)
	v.SetDefault("limits.max_fill_cells", def.Limits.MaxFillCells)
	v.SetDefault("limits.max_polygon_vertices", def.Limits.MaxPolygonVertices)
	v.SetDefault("limits.max_uncompact_cells", def.Limits.MaxUncompactCells)
	v.SetDefault("limits.max_batch_cells", def.Limits.MaxBatchCells)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.add_source", def.Logging.AddSource)
	v.SetDefault("tracing.enabled", def.Tracing.Enabled)
	v.SetDefault("tracing.service_name", def.Tracing.ServiceName)
	v.SetDefault("tracing.exporter", def.Tracing.Exporter)
	v.SetDefault("tracing.endpoint", def.Tracing.Endpoint)
	v.SetDefault("tracing.sample_ratio", def.Tracing.SampleRatio)

	// Config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	_ = v.ReadInConfig() // OK if missing

	// Environment variables: HEXSPHERE_LIMITS_MAX_FILL_CELLS → limits.max_fill_cells
	v.SetEnvPrefix("HEXSPHERE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Addr == "" {
		errs = append(errs, "server.addr is required")
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, "server.read_timeout must be positive")
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, "server.write_timeout must be positive")
	}
	if c.Server.BodyLimit <= 0 {
		errs = append(errs, "server.body_limit must be positive")
	}
	if c.Limits.MaxGridDistance <= 0 {
		errs = append(errs, "limits.max_grid_distance must be positive")
	}
	if c.Limits.MaxFillCells <= 0 {
		errs = append(errs, "limits.max_fill_cells must be positive")
	}
	if c.Limits.MaxPolygonVertices < 3 {
		errs = append(errs, "limits.max_polygon_vertices must be at least 3")
	}
	if c.Limits.MaxUncompactCells <= 0 {
		errs = append(errs, "limits.max_uncompact_cells must be positive")
	}
	if c.Limits.MaxBatchCells <= 0 {
		errs = append(errs, "limits.max_batch_cells must be positive")
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "text", "":
	default:
		errs = append(errs, fmt.Sprintf("logging.format must be json or text, got %q", c.Logging.Format))
	}

	switch strings.ToLower(c.Tracing.Exporter) {
	case "stdout", "otlp", "otlpgrpc", "":
	default:
		errs = append(errs, fmt.Sprintf("tracing.exporter must be stdout or otlp, got %q", c.Tracing.Exporter))
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		errs = append(errs, fmt.Sprintf("tracing.sample_ratio must be in [0, 1], got %v", c.Tracing.SampleRatio))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
