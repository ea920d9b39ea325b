// Package config loads runtime settings from an optional YAML file and
// OAIDC_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"oai-dc-mapper/internal/ingest"
)

const (
	DefaultEnvPrefix = "OAIDC"

	DefaultDatabase     = "items.db"
	DefaultIndex        = "items.bleve"
	DefaultBaseURL      = "http://localhost"
	DefaultFilesURL     = "http://localhost/files"
	DefaultRepositoryID = "localhost"
	DefaultWorkers      = 4
	DefaultTimeout      = 5 * time.Minute
)

var DefaultConfig = Config{
	Database:     DefaultDatabase,
	Index:        DefaultIndex,
	BaseURL:      DefaultBaseURL,
	FilesURL:     DefaultFilesURL,
	RepositoryID: DefaultRepositoryID,
	Workers:      DefaultWorkers,
	Timeout:      DefaultTimeout,
	Extensions:   ingest.DefaultExtensions,
}

type Config struct {
	Database     string        `json:"database,omitempty"      mapstructure:"database"`
	Index        string        `json:"index,omitempty"         mapstructure:"index"`
	BaseURL      string        `json:"base_url,omitempty"      mapstructure:"base_url"`
	FilesURL     string        `json:"files_url,omitempty"     mapstructure:"files_url"`
	RepositoryID string        `json:"repository_id,omitempty" mapstructure:"repository_id"`
	Crosswalk    string        `json:"crosswalk,omitempty"     mapstructure:"crosswalk"`
	Workers      int           `json:"workers,omitempty"       mapstructure:"workers"`
	Timeout      time.Duration `json:"timeout,omitempty"       mapstructure:"timeout"`
	Extensions   []string      `json:"extensions,omitempty"    mapstructure:"extensions"`
}

// Load reads the configuration. path may be empty, in which case only the
// environment and defaults apply.
func Load(path string) (*Config, error) {
	v := viper.NewWithOptions(
		viper.KeyDelimiter("."),
		viper.EnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_")),
	)

	v.SetEnvPrefix(DefaultEnvPrefix)
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	_ = v.BindEnv("database")
	v.SetDefault("database", DefaultDatabase)

	_ = v.BindEnv("index")
	v.SetDefault("index", DefaultIndex)

	_ = v.BindEnv("base_url")
	v.SetDefault("base_url", DefaultBaseURL)

	_ = v.BindEnv("files_url")
	v.SetDefault("files_url", DefaultFilesURL)

	_ = v.BindEnv("repository_id")
	v.SetDefault("repository_id", DefaultRepositoryID)

	// Optional crosswalk file replacing the built-in rules
	_ = v.BindEnv("crosswalk")
	v.SetDefault("crosswalk", "")

	_ = v.BindEnv("workers")
	v.SetDefault("workers", DefaultWorkers)

	_ = v.BindEnv("timeout")
	v.SetDefault("timeout", DefaultTimeout)

	// Audio file extensions considered by ingest
	_ = v.BindEnv("extensions")
	v.SetDefault("extensions", ingest.DefaultExtensions)

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	decodeHooks := mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)

	config := &Config{}
	if err := v.Unmarshal(config, viper.DecodeHook(decodeHooks)); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks value ranges. URLs are checked by the resolvers that use
// them.
func (c *Config) Validate() error {
	var errs []error

	if c.Database == "" {
		errs = append(errs, errors.New("database must not be empty"))
	}

	if c.RepositoryID == "" {
		errs = append(errs, errors.New("repository_id must not be empty"))
	}

	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", c.Workers))
	}

	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout must not be negative, got %s", c.Timeout))
	}

	return errors.Join(errs...)
}
