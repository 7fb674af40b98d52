// SPDX-License-Identifier: MIT

// Package pool isolates blocking calls on a bounded set of dedicated
// workers, keeping them off cooperative schedulers, & joins the results of
// concurrently-running computations.
package pool

import (
	"errors"

	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"
)

type (
	// Pool is a bounded worker pool for blocking tasks.
	Pool struct {
		cfg   *Config
		inner *ants.Pool
	}

	// Config defines options for the [Pool]'s operations.
	Config struct {
		// Logger for [Pool] messages.
		Logger logrus.FieldLogger
		Debug  bool

		// Nonblocking makes submission fail instead of waiting for a free
		// worker.
		Nonblocking bool
	}

	// Option defines the [Pool] functional option type.
	Option func(*Config)
)

// Pool errors.
var (
	ErrPanicked = errors.New("recovery from panic")
)

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(c *Config) { c.Logger = logger } }

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(c *Config) { c.Debug = debug } }

// WithNonblocking configures the nonblocking submission option.
func WithNonblocking(nonblocking bool) Option {
	return func(c *Config) { c.Nonblocking = nonblocking }
}

// Validate populates missing [Config] entries with defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
}

// New instantiates a [Pool] with size dedicated workers.
func New(size int, options ...Option) (p *Pool, err error) {
	cfg := &Config{}
	for _, opt := range options {
		opt(cfg)
	}
	cfg.Validate()

	inner, err := ants.NewPool(size, ants.WithNonblocking(cfg.Nonblocking))
	if err != nil {
		return
	}

	p = &Pool{cfg: cfg, inner: inner}

	return
}

// Config retrieves the [Pool]'s [Config].
func (p *Pool) Config() *Config { return p.cfg }

// Submit schedules a bare task on the [Pool].
func (p *Pool) Submit(task func()) error { return p.inner.Submit(task) }

// Running obtains the number of busy workers.
func (p *Pool) Running() int { return p.inner.Running() }

// Cap obtains the worker bound.
func (p *Pool) Cap() int { return p.inner.Cap() }

// Release shuts the [Pool] down.
func (p *Pool) Release() { p.inner.Release() }
