// Package config defines the data structures related to configuration and
// includes functions for loading the config and turning it into calculator
// inputs.
package config

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/iwvelando/roi-calculator/internal/calculator"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// EnvPrefix scopes the environment variables that override config values,
// e.g. ROI_LOGGING_LEVEL or ROI_INPUTS_ANNUALSAAS. They apply whether or not
// the key appears in the config file.
const EnvPrefix = "ROI"

// Configuration holds all configuration for the roi-calculator CLI.
type Configuration struct {
	Inputs  map[string]interface{} `yaml:"inputs,omitempty"`
	Logging LoggingConfig          `yaml:"logging,omitempty"`
	Output  OutputConfig           `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn warning error"`
	Format     string `yaml:"format,omitempty" validate:"omitempty,oneof=json console"`
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

var validate = validator.New()

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigType("yml")
	bindEnv(v)
	return v
}

// bindEnv registers every known key with viper so that Unmarshal sees
// environment values for keys the config file leaves out.
func bindEnv(v *viper.Viper) {
	keys := []string{"logging.level", "logging.format", "logging.outputFile", "output.format"}
	for _, f := range calculator.Fields() {
		keys = append(keys, "inputs."+string(f))
	}
	for _, key := range keys {
		env := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		_ = v.BindEnv(key, env)
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}
	return decode(v)
}

// LoadConfigurationFromReader loads YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	if err := validate.Struct(&configuration); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &configuration, nil
}

// FieldSet applies the configured inputs to an empty calculator form in
// page order. Keys match field identifiers case-insensitively since viper
// folds key case. Unknown keys and rejected values are reported as warnings
// and otherwise ignored.
func (c *Configuration) FieldSet() (calculator.FieldSet, []string) {
	var (
		fs       calculator.FieldSet
		warnings []string
	)

	known := make(map[string]calculator.Field)
	for _, f := range calculator.Fields() {
		known[strings.ToLower(string(f))] = f
	}

	keys := make([]string, 0, len(c.Inputs))
	for key := range c.Inputs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		field, ok := known[strings.ToLower(key)]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown input %q ignored", key))
			continue
		}
		value, err := cast.ToStringE(c.Inputs[key])
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("input %s: %v", field, err))
			continue
		}
		var accepted bool
		if fs, accepted = fs.Apply(field, value); !accepted {
			warnings = append(warnings, fmt.Sprintf("input %s: %q is not a number", field, value))
		}
	}

	return fs, warnings
}
