package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Mouryagna/ML-Project/pkg/ingest"
	"github.com/Mouryagna/ML-Project/pkg/loader"
	"github.com/Mouryagna/ML-Project/pkg/logger"
)

// Settings holds everything the ingest command reads from the
// environment, config file and flags.
type Settings struct {
	Root        string  `mapstructure:"root"`
	Source      string  `mapstructure:"source"`
	TestSize    float64 `mapstructure:"test_size"`
	Seed        int64   `mapstructure:"seed"`
	LogLevel    string  `mapstructure:"log_level"`
	LogFormat   string  `mapstructure:"log_format"`
	MetricsFile string  `mapstructure:"metrics_file"`
}

// New returns a viper instance with defaults, INGEST_* environment
// variables and the optional ingest.yaml search paths set up.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("ingest")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("ingest")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("root", "")
	v.SetDefault("source", "")
	v.SetDefault("test_size", loader.DefaultTestSize)
	v.SetDefault("seed", loader.DefaultSeed)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("metrics_file", "")
}

// Load reads the config file if one is found and decodes v into Settings.
func Load(v *viper.Viper) (*Settings, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if s.Root == "" {
		s.Root = DefaultRoot()
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks value ranges.
func (s *Settings) Validate() error {
	if s.TestSize <= 0 || s.TestSize >= 1 {
		return fmt.Errorf("test_size must be in (0, 1), got %v", s.TestSize)
	}
	return nil
}

// IngestConfig derives the ingestion configuration.
func (s *Settings) IngestConfig() ingest.Config {
	cfg := ingest.NewConfig(s.Root).WithSplit(s.TestSize, s.Seed)
	if s.Source != "" {
		cfg = cfg.WithSource(s.Source)
	}
	return cfg
}

// Logger returns the logger settings.
func (s *Settings) Logger() logger.Config {
	return logger.Config{Level: s.LogLevel, Format: s.LogFormat}
}

// DefaultRoot anchors the project root on the directory holding the
// running executable, so the result does not depend on the working
// directory.
func DefaultRoot() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
