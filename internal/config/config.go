// Package config loads paradigma configuration from a YAML file and
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cours-de-latin/paradigma"
)

// EnvPrefix prefixes every environment override, e.g. PARADIGMA_DATA_DIR.
const EnvPrefix = "PARADIGMA"

// EnvConfigFile names the environment variable holding the config path.
const EnvConfigFile = EnvPrefix + "_CONFIG_FILE"

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr           string   `json:"addr" yaml:"addr"`
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins"`
}

// QueryConfig bounds the work one query may cause.
type QueryConfig struct {
	// MaxInputRunes rejects longer input before expansion.
	MaxInputRunes int `json:"max_input_runes" yaml:"max_input_runes"`
	// MaxCandidates rejects input that expands to more spellings.
	MaxCandidates int `json:"max_candidates" yaml:"max_candidates"`
	// BatchWorkers is the parallelism of batch lookups.
	BatchWorkers int `json:"batch_workers" yaml:"batch_workers"`
	// MaxBatchWords rejects batch lookups with more words.
	MaxBatchWords int `json:"max_batch_words" yaml:"max_batch_words"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `json:"level" yaml:"level"`
	Development bool   `json:"development" yaml:"development"`
}

// Config holds all configuration for the application
type Config struct {
	// DataDir holds decl/, conj/ and the lexicon files.
	DataDir    string                     `json:"data_dir" yaml:"data_dir"`
	Server     ServerConfig               `json:"server" yaml:"server"`
	Query      QueryConfig                `json:"query" yaml:"query"`
	Log        LogConfig                  `json:"log" yaml:"log"`
	Derivation paradigma.DerivationTables `json:"derivation" yaml:"derivation"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		DataDir: "data",
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
		},
		Query: QueryConfig{
			MaxInputRunes: 32,
			MaxCandidates: 1 << 16,
			BatchWorkers:  4,
			MaxBatchWords: 256,
		},
		Log: LogConfig{
			Level: "info",
		},
		Derivation: paradigma.DefaultDerivationTables(),
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path falls back to $PARADIGMA_CONFIG_FILE;
// when that is unset too, only defaults and environment apply.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := overrideFromEnv(cfg, EnvPrefix); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var (
	// ErrInvalid is wrapped by every validation failure.
	ErrInvalid = errors.New("invalid configuration")
	// ErrBatchTooLarge is returned for a batch over query.max_batch_words.
	ErrBatchTooLarge = errors.New("batch too large")
)

// Validate rejects configurations the application cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.DataDir == "":
		return fmt.Errorf("data_dir is empty: %w", ErrInvalid)
	case c.Query.MaxInputRunes <= 0:
		return fmt.Errorf("query.max_input_runes must be positive, got %d: %w", c.Query.MaxInputRunes, ErrInvalid)
	case c.Query.MaxCandidates <= 0:
		return fmt.Errorf("query.max_candidates must be positive, got %d: %w", c.Query.MaxCandidates, ErrInvalid)
	case c.Query.BatchWorkers <= 0:
		return fmt.Errorf("query.batch_workers must be positive, got %d: %w", c.Query.BatchWorkers, ErrInvalid)
	case c.Query.MaxBatchWords <= 0:
		return fmt.Errorf("query.max_batch_words must be positive, got %d: %w", c.Query.MaxBatchWords, ErrInvalid)
	}
	return nil
}

// overrideFromEnv sets every field whose PREFIX_YAML_PATH variable is
// non-empty. Nested structs extend the prefix with their own tag. A value
// that does not parse as the field's type is an error.
func overrideFromEnv(v any, prefix string) error {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil
	}

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if !field.CanSet() {
			continue
		}
		tag := strings.Split(typ.Field(i).Tag.Get("yaml"), ",")[0]
		if tag == "" || tag == "-" {
			continue
		}
		key := prefix + "_" + strings.ToUpper(strings.ReplaceAll(tag, "-", "_"))

		if field.Kind() == reflect.Struct {
			if err := overrideFromEnv(field.Addr().Interface(), key); err != nil {
				return err
			}
			continue
		}
		env := os.Getenv(key)
		if env == "" {
			continue
		}
		switch field.Kind() {
		case reflect.String:
			field.SetString(env)
		case reflect.Int, reflect.Int64:
			n, err := strconv.ParseInt(env, 10, 64)
			if err != nil {
				return fmt.Errorf("%s=%q: not an integer: %w", key, env, ErrInvalid)
			}
			field.SetInt(n)
		case reflect.Bool:
			b, err := strconv.ParseBool(env)
			if err != nil {
				return fmt.Errorf("%s=%q: not a boolean: %w", key, env, ErrInvalid)
			}
			field.SetBool(b)
		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				parts := strings.Split(env, ",")
				for j := range parts {
					parts[j] = strings.TrimSpace(parts[j])
				}
				field.Set(reflect.ValueOf(parts))
			}
		}
	}
	return nil
}
