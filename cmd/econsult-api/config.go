// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// serverConfig holds the gateway settings read from the environment
type serverConfig struct {
	Port              string        `env:"PORT"                envDefault:"8080"`
	Bind              string        `env:"BIND"                envDefault:"*"`
	Debug             bool          `env:"DEBUG"`
	RequestTimeout    time.Duration `env:"REQUEST_TIMEOUT"     envDefault:"30s"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT"    envDefault:"25s"`
	MaxBodyBytes      int64         `env:"MAX_BODY_BYTES"      envDefault:"1048576"`
}

func loadServerConfig() (serverConfig, error) {
	var cfg serverConfig
	if err := env.Parse(&cfg); err != nil {
		return serverConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// addr returns the listen address; "*" binds every interface
func (c serverConfig) addr() string {
	if c.Bind == "*" {
		return ":" + c.Port
	}
	return c.Bind + ":" + c.Port
}
