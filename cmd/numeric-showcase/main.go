/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// numeric-showcase prints a demonstration of every numeric operation.
// Reorderable operations follow the execution policy described by flags or NUMERIC_* environment variables.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ARM-software/golang-numeric/commonerrors"
	"github.com/ARM-software/golang-numeric/config"
	"github.com/ARM-software/golang-numeric/logs"
	"github.com/ARM-software/golang-numeric/numeric"
	"github.com/ARM-software/golang-numeric/numeric/showcase"
	"github.com/ARM-software/golang-numeric/parallelisation"
)

const loggerSource = "numeric-showcase"

var flagsToEnv = map[string]string{
	"parallel":    "NUMERIC_PARALLEL",
	"workers":     "NUMERIC_WORKERS",
	"grain-size":  "NUMERIC_GRAIN_SIZE",
	"trace":       "NUMERIC_TRACE",
	"log-backend": "NUMERIC_LOG_BACKEND",
}

func main() {
	err := execute(os.Args[1:])
	if err != nil {
		os.Exit(1)
	}
}

func execute(args []string) (err error) {
	closers := parallelisation.NewCloseFunctionStore(parallelisation.SequentialInReverse, parallelisation.OnlyOnce, parallelisation.JoinErrors)
	defer func() { _ = closers.Close() }()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	closers.RegisterCancelFunction(stop)
	cfg, cfgErr := loadConfiguration(args)
	backend := numeric.DefaultConfiguration().Logging.Backend
	if cfgErr == nil {
		backend = cfg.Logging.Backend
	}
	loggers, err := logs.NewLoggers(backend, loggerSource)
	if err != nil {
		return
	}
	closers.RegisterCloser(loggers)
	if cfgErr != nil {
		err = cfgErr
		loggers.LogError(err)
		return
	}
	err = run(ctx, cfg, os.Stdout, loggers)
	if err != nil {
		loggers.LogError(err)
	}
	return
}

func newFlagSet() *pflag.FlagSet {
	defaults := numeric.DefaultConfiguration()
	flags := pflag.NewFlagSet(loggerSource, pflag.ContinueOnError)
	flags.Bool("parallel", defaults.Parallel, "execute reorderable operations in parallel")
	flags.Int("workers", defaults.Workers, "maximum number of concurrent workers when parallel (0 means one per chunk)")
	flags.Int("grain-size", defaults.GrainSize, "minimum number of elements processed by a worker")
	flags.Bool("trace", defaults.Trace, "log every operator application")
	flags.String("log-backend", defaults.Logging.Backend, fmt.Sprintf("logging back-end (%v)", strings.Join(logs.SupportedBackends(), ", ")))
	return flags
}

// loadConfiguration determines the policy configuration from the command line arguments and the environment.
func loadConfiguration(args []string) (cfg *numeric.Configuration, err error) {
	flags := newFlagSet()
	err = flags.Parse(args)
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid arguments")
		return
	}
	session := viper.New()
	for name, envVar := range flagsToEnv {
		err = config.BindFlagToEnv(session, numeric.EnvVarPrefix, envVar, flags.Lookup(name))
		if err != nil {
			return
		}
	}
	cfg = &numeric.Configuration{}
	err = config.LoadFromViper(session, numeric.EnvVarPrefix, cfg, numeric.DefaultConfiguration())
	if err != nil {
		cfg = nil
	}
	return
}

func run(ctx context.Context, cfg *numeric.Configuration, w io.Writer, loggers logs.Loggers) error {
	p, err := numeric.NewPolicyFromConfiguration(cfg, loggers)
	if err != nil {
		return err
	}
	loggers.Log(fmt.Sprintf("execution policy: %v", p))
	return showcase.Run(ctx, w, p)
}
