// SPDX-License-Identifier: MIT
package textspan

import (
	"github.com/sirupsen/logrus"
)

type (
	// Config defines options for the package's collect-style operations.
	//
	// The [Splitter] hot path never consults it; only the fragment-collecting
	// conveniences log, & only with Debug set.
	Config struct {
		// Logger for fragment-collection messages.
		//
		// Preferring a public field to allow for sharing.
		Logger logrus.FieldLogger
		Debug  bool
	}

	// Option defines the [Config] functional option type.
	Option func(*Config)
)

var defConfig = DefConfig()

// DefConfig obtains the package's default [Config].
func DefConfig() *Config {
	return &Config{
		Logger: logrus.New(),
		Debug:  false,
	}
}

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(c *Config) { c.Logger = logger } }

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(c *Config) { c.Debug = debug } }

// Validate populates missing [Config] entries with defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
}
