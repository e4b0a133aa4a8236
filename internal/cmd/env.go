// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/mia-platform/cols/internal/logger"
	"github.com/mia-platform/cols/internal/source"
)

var (
	ErrEnvVariablesNotValid = errors.New("environment variables not valid")
)

// Config holds the settings read from the environment.
type Config struct {
	Encoding  string `env:"COLS_ENCODING" envDefault:"utf8"`
	Separator string `env:"COLS_SEPARATOR"`
	LogLevel  string `env:"COLS_LOG_LEVEL" envDefault:"INFO"`
}

// LoadConfig reads and validates the environment configuration.
func LoadConfig() (*Config, error) {
	var envVars Config
	if err := env.Parse(&envVars); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, err.Error())
	}

	if problems := envVars.validate(); len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, strings.Join(problems, ", "))
	}
	return &envVars, nil
}

// validate returns a description of every invalid setting.
func (c *Config) validate() []string {
	problems := make([]string, 0)

	if _, err := source.Encoding(c.Encoding); err != nil {
		problems = append(problems, fmt.Sprintf("encoding %q is not supported", c.Encoding))
	}

	if _, err := regexp.Compile(c.Separator); err != nil {
		problems = append(problems, fmt.Sprintf("separator %q is not a valid regular expression", c.Separator))
	}

	level := strings.ToUpper(strings.TrimSpace(c.LogLevel))
	if level != "WARNING" && !slices.Contains(logger.AllLevels, level) {
		problems = append(problems, fmt.Sprintf("log level %q is not one of %s", c.LogLevel, strings.Join(logger.AllLevels, ", ")))
	}

	return problems
}
