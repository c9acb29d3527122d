/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package numeric

import (
	"runtime"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shirou/gopsutil/v4/cpu"

	"github.com/ARM-software/golang-numeric/config"
	"github.com/ARM-software/golang-numeric/logs"
)

const (
	// EnvVarPrefix is the prefix of the environment variables the configuration is loaded from e.g. NUMERIC_PARALLEL.
	EnvVarPrefix     = "numeric"
	DefaultGrainSize = 1024
)

// Configuration describes the execution policy of the reorderable operations.
type Configuration struct {
	Parallel  bool                 `mapstructure:"parallel"`
	Workers   int                  `mapstructure:"workers"`
	GrainSize int                  `mapstructure:"grain_size"`
	Trace     bool                 `mapstructure:"trace"`
	Logging   LoggingConfiguration `mapstructure:"log"`
}

// LoggingConfiguration selects the logging back-end used for diagnostics and traces.
type LoggingConfiguration struct {
	Backend string `mapstructure:"backend"`
}

func (cfg *LoggingConfiguration) Validate() error {
	validation.ErrorTag = "mapstructure"
	backends := logs.SupportedBackends()
	allowed := make([]any, 0, len(backends))
	for i := range backends {
		allowed = append(allowed, backends[i])
	}
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Backend, validation.Required, validation.In(allowed...)),
	)
}

func (cfg *Configuration) Validate() error {
	err := config.ValidateEmbedded(cfg)
	if err != nil {
		return err
	}
	validation.ErrorTag = "mapstructure"
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Workers, validation.Min(0)),
		validation.Field(&cfg.GrainSize, validation.Required, validation.Min(1)),
	)
}

// DefaultConfiguration returns a sequenced configuration which, when made parallel, uses one worker per logical CPU.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Parallel:  false,
		Workers:   defaultWorkers(),
		GrainSize: DefaultGrainSize,
		Trace:     false,
		Logging: LoggingConfiguration{
			Backend: logs.BackendZap,
		},
	}
}

func defaultWorkers() int {
	count, err := cpu.Counts(true)
	if err != nil || count <= 0 {
		return runtime.NumCPU()
	}
	return count
}
