package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Blob sources.
const (
	SourceFile     = "file"
	SourceDatabase = "database"
)

type Config struct {
	Source   string        `yaml:"source" mapstructure:"source" validate:"oneof=file database"`
	BlobFile string        `yaml:"blob_file,omitempty" mapstructure:"blob_file"`
	Database string        `yaml:"database,omitempty" mapstructure:"database"`
	Profile  string        `yaml:"profile" mapstructure:"profile" validate:"required"`
	Logging  LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

type LoggingConfig struct {
	Level      string `yaml:"level" mapstructure:"level" validate:"omitempty,oneof=trace debug info warn error disabled"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size" validate:"gte=0"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups" validate:"gte=0"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age" validate:"gte=0"`
}

func Load(path string) (*Config, error) {
	viperInstance := newViper()
	viperInstance.SetConfigFile(path)

	if err := viperInstance.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return decode(viperInstance)
}

// LoadFromYAML loads config from YAML bytes - helper for tests
func LoadFromYAML(data []byte) (*Config, error) {
	viperInstance := newViper()
	viperInstance.SetConfigType("yaml")

	if err := viperInstance.ReadConfig(strings.NewReader(string(data))); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return decode(viperInstance)
}

// newViper returns a viper instance seeded with DefaultConfig values and
// FRONTSETTINGS_* environment overrides.
func newViper() *viper.Viper {
	v := viper.New()
	defaults := DefaultConfig()
	v.SetDefault("source", defaults.Source)
	v.SetDefault("profile", defaults.Profile)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.max_size", defaults.Logging.MaxSize)
	v.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	v.SetDefault("logging.max_age", defaults.Logging.MaxAge)

	v.SetEnvPrefix("FRONTSETTINGS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Use yaml tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return v
}

// Validate checks field values and that the selected source is usable.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatError(err)
	}
	return nil
}

func formatError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err //nolint:wrapcheck // not a field error
	}

	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		messages = append(messages, fmt.Sprintf("%s %s", e.Namespace(), friendlyMessage(e)))
	}
	return errors.New(strings.Join(messages, "; "))
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	default:
		return "is invalid"
	}
}
