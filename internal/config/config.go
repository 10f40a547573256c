package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/recordkit/internal/constants"
	"github.com/oshokin/recordkit/internal/logger"
	"github.com/oshokin/recordkit/internal/utils"
	"github.com/oshokin/recordkit/pkg/file"
)

// Config holds all configuration settings.
type Config struct {
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// MaxFileSize is the largest file accepted by "file validate" (e.g., "5MB", "500KiB").
	MaxFileSize string `mapstructure:"max_file_size"`
	// AllowExtensions lists the extensions accepted by "file validate", e.g. [png, jpg].
	AllowExtensions []string `mapstructure:"allow_extensions"`
	// OutputFormat is the format results are printed in: json or yaml.
	OutputFormat string `mapstructure:"output_format"`
	// OutputPath is the directory decoded files are written to.
	OutputPath string `mapstructure:"output_path"`
	// DatasetCacheSize is the number of parsed record files kept in memory.
	DatasetCacheSize int `mapstructure:"dataset_cache_size"`
	// ProgressThreshold is the file size above which encoding shows a progress bar.
	// Empty string or "0" disables the progress bar.
	ProgressThreshold string `mapstructure:"progress_threshold"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedMaxFileSize is the parsed maximum file size in bytes.
	ParsedMaxFileSize int64
	// ParsedAllowExtensions holds the allowed extensions without leading dots and blanks.
	ParsedAllowExtensions []string
	// ParsedProgressThreshold is the parsed progress threshold in bytes, 0 when disabled.
	ParsedProgressThreshold int64
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".recordkit.yaml"

	// EnvPrefix is the prefix of environment variables overriding config keys, e.g. RECORDKIT_LOG_LEVEL.
	EnvPrefix = "RECORDKIT"

	// DefaultLogLevel is the default logging level.
	DefaultLogLevel = "info"

	// DefaultMaxFileSize is the default largest file accepted by validation.
	DefaultMaxFileSize = "5MB"

	// DefaultOutputPath is the default directory for decoded files.
	DefaultOutputPath = "."

	// DefaultDatasetCacheSize is the default number of cached record files.
	DefaultDatasetCacheSize = 16

	// DefaultProgressThreshold is the default file size above which encoding shows progress.
	DefaultProgressThreshold = "10MB"
)

// Static error definitions for better error handling.
var (
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidMaxFileSize indicates that the max file size is not positive.
	ErrInvalidMaxFileSize = errors.New("max_file_size must be positive")
	// ErrEmptyAllowExtensions indicates that no extension is allowed.
	ErrEmptyAllowExtensions = errors.New("allow_extensions cannot be empty")
	// ErrUnknownOutputFormat indicates that the output format is not supported.
	ErrUnknownOutputFormat = errors.New("unknown output format")
	// ErrInvalidDatasetCacheSize indicates that the dataset cache size is not positive.
	ErrInvalidDatasetCacheSize = errors.New("dataset_cache_size must be a positive integer")
)

// Default returns a configuration populated with default values only.
func Default() *Config {
	return &Config{
		LogLevel:          DefaultLogLevel,
		MaxFileSize:       DefaultMaxFileSize,
		AllowExtensions:   DefaultAllowExtensions(),
		OutputFormat:      constants.FormatJSON,
		OutputPath:        DefaultOutputPath,
		DatasetCacheSize:  DefaultDatasetCacheSize,
		ProgressThreshold: DefaultProgressThreshold,
	}
}

// DefaultAllowExtensions returns every extension of the known media type table.
func DefaultAllowExtensions() []string {
	return utils.Map(file.MediaTypes(), func(entry file.MediaTypeEntry) string {
		return entry.Extension
	})
}

// LoadConfig loads configuration settings from a YAML file.
// With an empty name the default file is used if it exists, otherwise defaults apply.
// An explicitly named file must exist.
func LoadConfig(configFilename string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	isExplicit := configFilename != ""
	if !isExplicit {
		configFilename = DefaultConfigFilename
	}

	isFound, err := utils.IsFileExist(configFilename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config from file: %w", err)
	}

	if isFound || isExplicit {
		v.SetConfigFile(configFilename)

		if err = v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err = v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	parsedMaxFileSize, err := humanize.ParseBytes(strings.TrimSpace(cfg.MaxFileSize))
	if err != nil {
		return fmt.Errorf("failed to parse max file size: %w", err)
	}

	if parsedMaxFileSize == 0 {
		return ErrInvalidMaxFileSize
	}

	// file.ValidationConfig works with int64 sizes, so the value is clamped safely.
	cfg.ParsedMaxFileSize = utils.SafeUint64ToInt64(parsedMaxFileSize)

	cfg.ParsedAllowExtensions = NormalizeExtensions(cfg.AllowExtensions)
	if len(cfg.ParsedAllowExtensions) == 0 {
		return ErrEmptyAllowExtensions
	}

	cfg.OutputFormat = strings.ToLower(strings.TrimSpace(cfg.OutputFormat))
	if cfg.OutputFormat != constants.FormatJSON && cfg.OutputFormat != constants.FormatYAML {
		return fmt.Errorf("%w: '%s', expected %s or %s",
			ErrUnknownOutputFormat, cfg.OutputFormat, constants.FormatJSON, constants.FormatYAML)
	}

	cfg.OutputPath = strings.TrimSpace(cfg.OutputPath)
	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutputPath
	}

	if cfg.DatasetCacheSize <= 0 {
		return ErrInvalidDatasetCacheSize
	}

	var (
		progressThreshold       = strings.TrimSpace(cfg.ProgressThreshold)
		parsedProgressThreshold uint64
	)

	if progressThreshold != "" && progressThreshold != "0" {
		parsedProgressThreshold, err = humanize.ParseBytes(progressThreshold)
		if err != nil {
			return fmt.Errorf("failed to parse progress threshold: %w", err)
		}
	}

	cfg.ParsedProgressThreshold = utils.SafeUint64ToInt64(parsedProgressThreshold)

	return nil
}

// NormalizeExtensions trims blanks and leading dots from extension tokens and drops empty ones.
// Case is preserved: extensions are compared case-sensitively.
func NormalizeExtensions(extensions []string) []string {
	trimmed := utils.Map(extensions, func(ext string) string {
		return strings.TrimPrefix(strings.TrimSpace(ext), ".")
	})

	result := make([]string, 0, len(trimmed))

	for _, ext := range trimmed {
		if ext != "" {
			result = append(result, ext)
		}
	}

	return result
}

func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("max_file_size", defaults.MaxFileSize)
	v.SetDefault("allow_extensions", defaults.AllowExtensions)
	v.SetDefault("output_format", defaults.OutputFormat)
	v.SetDefault("output_path", defaults.OutputPath)
	v.SetDefault("dataset_cache_size", defaults.DatasetCacheSize)
	v.SetDefault("progress_threshold", defaults.ProgressThreshold)
}
