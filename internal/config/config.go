package config

import (
	"encoding/json"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/vango-dev/attrs/internal/errors"
	"github.com/vango-dev/attrs/pkg/attr"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "attrs.json"

	// DefaultPort is the default HTTP port.
	DefaultPort = 8080

	// DefaultHost is the default HTTP host.
	DefaultHost = "localhost"

	// DefaultMaxBodyBytes caps request bodies accepted by the server.
	DefaultMaxBodyBytes = 1 << 20

	// DefaultMetricsNamespace prefixes Prometheus metric names.
	DefaultMetricsNamespace = "attrs"

	// DefaultTracerName names the OpenTelemetry tracer.
	DefaultTracerName = "attrs"
)

// Config represents the complete attrs.json configuration.
type Config struct {
	// Server contains HTTP server configuration.
	Server ServerConfig `json:"server,omitempty"`

	// Normalize contains attribute normalizer configuration.
	Normalize NormalizeConfig `json:"normalize,omitempty"`

	// Log contains logging configuration.
	Log LogConfig `json:"log,omitempty"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// Tracing contains OpenTelemetry configuration.
	Tracing TracingConfig `json:"tracing,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Port is the port to listen on.
	Port int `json:"port,omitempty" env:"ATTRS_SERVER_PORT"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty" env:"ATTRS_SERVER_HOST"`

	// ReadTimeout is the request read timeout (e.g., "10s").
	ReadTimeout string `json:"readTimeout,omitempty" env:"ATTRS_SERVER_READ_TIMEOUT"`

	// WriteTimeout is the response write timeout (e.g., "10s").
	WriteTimeout string `json:"writeTimeout,omitempty" env:"ATTRS_SERVER_WRITE_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown (e.g., "5s").
	ShutdownTimeout string `json:"shutdownTimeout,omitempty" env:"ATTRS_SERVER_SHUTDOWN_TIMEOUT"`

	// MaxBodyBytes is the largest accepted request body.
	MaxBodyBytes int64 `json:"maxBodyBytes,omitempty" env:"ATTRS_SERVER_MAX_BODY_BYTES"`
}

// NormalizeConfig contains normalizer settings.
type NormalizeConfig struct {
	// MaxDepth limits nesting of attribute values.
	MaxDepth int `json:"maxDepth,omitempty" env:"ATTRS_NORMALIZE_MAX_DEPTH"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty" env:"ATTRS_LOG_LEVEL"`

	// Format is text or json.
	Format string `json:"format,omitempty" env:"ATTRS_LOG_FORMAT"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Enabled exposes the metrics endpoint.
	Enabled bool `json:"enabled" env:"ATTRS_METRICS_ENABLED"`

	// Namespace prefixes metric names.
	Namespace string `json:"namespace,omitempty" env:"ATTRS_METRICS_NAMESPACE"`

	// Path is the metrics endpoint path.
	Path string `json:"path,omitempty" env:"ATTRS_METRICS_PATH"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	// Enabled creates a span per request.
	Enabled bool `json:"enabled" env:"ATTRS_TRACING_ENABLED"`

	// TracerName is the name passed to otel.Tracer.
	TracerName string `json:"tracerName,omitempty" env:"ATTRS_TRACING_TRACER_NAME"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            DefaultPort,
			Host:            DefaultHost,
			ReadTimeout:     "10s",
			WriteTimeout:    "10s",
			ShutdownTimeout: "5s",
			MaxBodyBytes:    DefaultMaxBodyBytes,
		},
		Normalize: NormalizeConfig{
			MaxDepth: attr.DefaultMaxDepth,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: DefaultMetricsNamespace,
			Path:      "/metrics",
		},
		Tracing: TracingConfig{
			Enabled:    true,
			TracerName: DefaultTracerName,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for attrs.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("C121").
				WithDetail("No " + ConfigFileName + " found at " + path)
		}
		return nil, errors.New("C120").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		ae := errors.New("C120").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that the file is valid JSON")
		if syntaxErr, ok := err.(*json.SyntaxError); ok {
			ae.WithOffset(path, data, syntaxErr.Offset)
		}
		return nil, ae
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// LoadOrDefault loads path if it exists and returns defaults otherwise.
// Other read or parse failures are returned.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := LoadFile(path)
	if err == nil {
		return cfg, nil
	}
	if ae, ok := err.(*errors.AttrsError); ok && ae.Code == "C121" {
		return New(), nil
	}
	return nil, err
}

// ApplyEnv overrides fields from ATTRS_* environment variables.
// Unset variables leave the current values in place; no field carries an
// env-default tag.
func (c *Config) ApplyEnv() error {
	if err := cleanenv.ReadEnv(c); err != nil {
		return errors.New("C122").
			WithDetail("Invalid ATTRS_* environment variable: " + err.Error())
	}
	return nil
}

// EnvUsage describes the supported environment variables.
func EnvUsage() (string, error) {
	var cfg Config
	header := "Environment variables:"
	return cleanenv.GetDescription(&cfg, &header)
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("C120").Wrap(err)
	}

	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("C120").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.ReadTimeout == "" {
		c.Server.ReadTimeout = "10s"
	}
	if c.Server.WriteTimeout == "" {
		c.Server.WriteTimeout = "10s"
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = "5s"
	}
	if c.Server.MaxBodyBytes == 0 {
		c.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}

	if c.Normalize.MaxDepth == 0 {
		c.Normalize.MaxDepth = attr.DefaultMaxDepth
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultMetricsNamespace
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}

	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = DefaultTracerName
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("C122").
			WithDetail("server.port must be between 0 and 65535")
	}
	if c.Server.MaxBodyBytes < 0 {
		return errors.New("C122").
			WithDetail("server.maxBodyBytes must not be negative")
	}
	if c.Normalize.MaxDepth < 0 {
		return errors.New("C122").
			WithDetail("normalize.maxDepth must not be negative")
	}
	for name, value := range map[string]string{
		"server.readTimeout":     c.Server.ReadTimeout,
		"server.writeTimeout":    c.Server.WriteTimeout,
		"server.shutdownTimeout": c.Server.ShutdownTimeout,
	} {
		if value == "" {
			continue
		}
		if _, err := time.ParseDuration(value); err != nil {
			return errors.New("C122").
				WithDetail(name + " is not a valid duration: " + value).
				WithSuggestion(`Use Go duration syntax such as "10s" or "500ms"`)
		}
	}
	if _, ok := parseLevel(c.Log.Level); !ok {
		return errors.New("C122").
			WithDetail("log.level must be one of debug, info, warn, error")
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return errors.New("C122").
			WithDetail("log.format must be text or json")
	}
	if c.Metrics.Path != "" && !strings.HasPrefix(c.Metrics.Path, "/") {
		return errors.New("C122").
			WithDetail("metrics.path must start with /")
	}
	return nil
}

// Address returns the host:port the server listens on.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// URL returns the base URL of the server.
func (c *Config) URL() string {
	return "http://" + c.Address()
}

// ReadTimeout returns the parsed read timeout, or zero if unset.
func (c *Config) ReadTimeout() time.Duration {
	return parseDuration(c.Server.ReadTimeout)
}

// WriteTimeout returns the parsed write timeout, or zero if unset.
func (c *Config) WriteTimeout() time.Duration {
	return parseDuration(c.Server.WriteTimeout)
}

// ShutdownTimeout returns the parsed shutdown timeout, or zero if unset.
func (c *Config) ShutdownTimeout() time.Duration {
	return parseDuration(c.Server.ShutdownTimeout)
}

// Normalizer builds an attribute normalizer from the configuration.
func (c *Config) Normalizer() *attr.Normalizer {
	return attr.New(attr.WithMaxDepth(c.Normalize.MaxDepth))
}

// Logger builds a slog logger writing to w per the log settings.
func (c *Config) Logger(w *os.File) *slog.Logger {
	level, _ := parseLevel(c.Log.Level)
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}
