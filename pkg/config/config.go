package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment variables, e.g. EMPFORM_OUTPUT_FORMAT.
const EnvPrefix = "EMPFORM"

// DefaultEnvFile is loaded when present and no explicit env file is given.
const DefaultEnvFile = ".env"

// Config holds the settings of the employee registration command.
type Config struct {
	OutputFormat string `mapstructure:"output_format" validate:"oneof=json form pretty"`
	Output       string `mapstructure:"output"`
	LogLevel     string `mapstructure:"log_level" validate:"oneof=debug info warn warning error"`
	LogFormat    string `mapstructure:"log_format" validate:"oneof=json text"`
	Timezone     string `mapstructure:"timezone" validate:"omitempty,timezone"`
	LayoutFile   string `mapstructure:"layout_file" validate:"omitempty,file"`
}

// LoadOptions selects the sources Load reads from.
type LoadOptions struct {
	// ConfigFile is an optional yaml/json/toml file.
	ConfigFile string
	// EnvFile is a dotenv file; when empty DefaultEnvFile is tried.
	EnvFile string
	// Overrides win over every other source, typically set from flags.
	Overrides map[string]any
}

// Load resolves configuration from defaults, the config file, the
// environment and overrides, in increasing order of precedence.
func Load(opts LoadOptions) (Config, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetDefault("output_format", "json")
	v.SetDefault("output", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("timezone", "")
	v.SetDefault("layout_file", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path := strings.TrimSpace(opts.ConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	for key, value := range opts.Overrides {
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	err := getValidator().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config: validate: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s %q fails %s", fe.Field(), fmt.Sprint(fe.Value()), describeTag(fe)))
	}
	return fmt.Errorf("config: invalid settings: %s", strings.Join(msgs, "; "))
}

// Location resolves the configured time zone, defaulting to local time.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c *Config) normalize() {
	c.OutputFormat = strings.ToLower(strings.TrimSpace(c.OutputFormat))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.Timezone = strings.TrimSpace(c.Timezone)
	c.LayoutFile = strings.TrimSpace(c.LayoutFile)
	c.Output = strings.TrimSpace(c.Output)
}

func loadEnvFile(path string) error {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: load env file %s: %w", path, err)
	}
	return nil
}

func describeTag(fe validator.FieldError) string {
	if fe.Param() != "" {
		return fe.Tag() + "=" + fe.Param()
	}
	return fe.Tag()
}

var (
	validatorInstance *validator.Validate
	validatorOnce     sync.Once
)

func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInstance = validator.New()
		validatorInstance.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validatorInstance
}
