package config

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// DefaultUserAgent is the default User-Agent string sent with all HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:147.0) Gecko/20100101 Firefox/147.0"

const (
	// DefaultInputFile is the URL list read when input_file is not configured.
	DefaultInputFile = "urls.json"
	// DefaultOutputDir is the folder downloads are written to when output_dir is not configured.
	DefaultOutputDir = "downloads"
)

type Config struct {
	InputFile             string `mapstructure:"input_file"`
	OutputDir             string `mapstructure:"output_dir"`
	ProxyConnectionString string `mapstructure:"proxy_connection_string"`
	ClientTimeout         string `mapstructure:"client_timeout"` // Go duration string like "30s"; empty means no timeout
	UserAgent             string `mapstructure:"user_agent"`
	LogLevel              string `mapstructure:"log_level"`
	Metrics               struct {
		Textfile string `mapstructure:"textfile"` // Prometheus text exposition written after the run
	} `mapstructure:"metrics"`
	Sentry struct {
		DSN         string `mapstructure:"dsn"`
		Environment string `mapstructure:"environment"`
	} `mapstructure:"sentry"`
}

var (
	globalConfig *Config
	logger       zerolog.Logger
)

func init() {
	// Initialize zerolog with console writer for human-readable output
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stdout,
		NoColor: false,
	}).With().Timestamp().Logger()

	config, err := LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	level := ParseLogLevel(config.LogLevel)
	zerolog.SetGlobalLevel(level)
	logger = logger.Level(level)

	logger.Debug().Str("level", level.String()).Msg("Logging configured")
	globalConfig = config
}

// LoadConfig reads config.yaml from the working directory (or ./config) and
// overlays APP_* environment variables. Missing files are not an error.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Environment variable support
	v.AutomaticEnv()
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = v.BindEnv("log_level", "LOG_LEVEL")

	// Unmarshal only sees env overrides for keys viper already knows about.
	v.SetDefault("input_file", DefaultInputFile)
	v.SetDefault("output_dir", DefaultOutputDir)
	v.SetDefault("proxy_connection_string", "")
	v.SetDefault("client_timeout", "")
	v.SetDefault("user_agent", DefaultUserAgent)
	v.SetDefault("log_level", "info")
	v.SetDefault("metrics.textfile", "")
	v.SetDefault("sentry.dsn", "")
	v.SetDefault("sentry.environment", "production")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}
	if config.InputFile == "" {
		config.InputFile = DefaultInputFile
	}
	if config.OutputDir == "" {
		config.OutputDir = DefaultOutputDir
	}

	return &config, nil
}

// ParseLogLevel converts a configured level name into a zerolog level.
// Empty or unknown names fall back to info.
func ParseLogLevel(name string) zerolog.Level {
	if name == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		logger.Warn().Str("invalid_level", name).Msg("Invalid log level, using default 'info'")
		return zerolog.InfoLevel
	}
	return level
}

func GetConfig() *Config {
	return globalConfig
}

func GetLogger() zerolog.Logger {
	return logger
}
