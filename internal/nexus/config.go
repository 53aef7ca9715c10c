// Package nexus loads application configuration from environment variables
// and an optional env file, then validates the result.
package nexus

import (
	"fmt"
	"os"
	"reflect"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// ConfigError represents domain-specific configuration errors
type ConfigError struct {
	Code    string
	Message string
	Cause   error
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e ConfigError) Unwrap() error {
	return e.Cause
}

const (
	ErrCodeInvalidType  = "CONFIG_INVALID_TYPE"
	ErrCodeFileNotFound = "CONFIG_FILE_NOT_FOUND"
	ErrCodeValidation   = "CONFIG_VALIDATION_FAILED"
	ErrCodeEnvironment  = "CONFIG_ENV_READ_FAILED"
	ErrCodeMerge        = "CONFIG_MERGE_FAILED"
)

// LoaderOptions contains configuration for the loader
type LoaderOptions struct {
	DefaultFileName string
	FileName        string
	OnlyEnvironment bool
}

// Loader reads configuration into a struct from the environment, then from
// an env file if one is present, with environment values taking precedence.
type Loader struct {
	options  LoaderOptions
	validate *validator.Validate
}

// LoaderOption is a functional option for configuring the loader
type LoaderOption func(*LoaderOptions)

// WithFileName sets a specific configuration file name
func WithFileName(fileName string) LoaderOption {
	return func(o *LoaderOptions) {
		o.FileName = fileName
	}
}

// WithOnlyEnvironment configures loader to only read from environment
func WithOnlyEnvironment() LoaderOption {
	return func(o *LoaderOptions) {
		o.OnlyEnvironment = true
		o.FileName = ""
	}
}

// NewLoader creates a new configuration loader with options
func NewLoader(opts ...LoaderOption) *Loader {
	options := LoaderOptions{
		DefaultFileName: ".env",
	}

	for _, opt := range opts {
		opt(&options)
	}

	return &Loader{options: options, validate: validator.New()}
}

// Load loads configuration from the environment and configured file into cfg,
// which must be a pointer to struct.
func (l *Loader) Load(cfg interface{}) error {
	if reflect.ValueOf(cfg).Kind() != reflect.Ptr {
		return &ConfigError{
			Code:    ErrCodeInvalidType,
			Message: fmt.Sprintf("configuration must be a pointer to struct, got %T", cfg),
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return &ConfigError{
			Code:    ErrCodeEnvironment,
			Message: "failed to read environment variables",
			Cause:   err,
		}
	}

	if !l.options.OnlyEnvironment {
		if fileName := l.resolveFileName(); fileName != "" {
			if err := l.loadFromFile(cfg, fileName); err != nil {
				return err
			}
		}
	}

	if err := l.validate.Struct(cfg); err != nil {
		return &ConfigError{
			Code:    ErrCodeValidation,
			Message: "configuration validation failed",
			Cause:   err,
		}
	}

	return nil
}

func (l *Loader) loadFromFile(cfg interface{}, fileName string) error {
	// Read the file into a fresh copy so environment values win the merge.
	fileCfg := reflect.New(reflect.ValueOf(cfg).Elem().Type()).Interface()

	if err := cleanenv.ReadConfig(fileName, fileCfg); err != nil {
		return &ConfigError{
			Code:    ErrCodeFileNotFound,
			Message: fmt.Sprintf("failed to read configuration file: %s", fileName),
			Cause:   err,
		}
	}

	if err := mergo.MergeWithOverwrite(cfg, fileCfg); err != nil {
		return &ConfigError{
			Code:    ErrCodeMerge,
			Message: "failed to merge configuration sources",
			Cause:   err,
		}
	}

	return nil
}

func (l *Loader) resolveFileName() string {
	if l.options.FileName != "" {
		return l.options.FileName
	}

	if l.options.DefaultFileName == "" {
		return ""
	}

	if _, err := os.Stat(l.options.DefaultFileName); err == nil {
		return l.options.DefaultFileName
	}

	return ""
}
