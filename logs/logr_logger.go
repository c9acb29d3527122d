/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"

	"github.com/ARM-software/golang-numeric/commonerrors"
	"github.com/ARM-software/golang-numeric/value"
)

const (
	KeyLogSource    = "source"
	KeyLoggerSource = "logger-source"
)

type logrLogger struct {
	logger  logr.Logger
	closeFn func() error
}

func (l *logrLogger) Close() error {
	if l.closeFn == nil {
		return nil
	}
	return l.closeFn()
}

func (l *logrLogger) Check() error {
	if l.logger.GetSink() == nil {
		return commonerrors.ErrNoLogger
	}
	return nil
}

func (l *logrLogger) SetLogSource(source string) error {
	if value.IsEmpty(source) {
		return commonerrors.ErrNoLogSource
	}
	l.logger = l.logger.WithValues(KeyLogSource, source)
	return nil
}

func (l *logrLogger) SetLoggerSource(source string) error {
	if value.IsEmpty(source) {
		return commonerrors.ErrNoLoggerSource
	}
	l.logger = l.logger.WithName(source).WithValues(KeyLoggerSource, source)
	return nil
}

func (l *logrLogger) Log(output ...interface{}) {
	l.logger.Info(toMessage(output...))
}

func (l *logrLogger) LogError(err ...interface{}) {
	l.logger.Error(nil, toMessage(err...))
}

func toMessage(args ...interface{}) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}

// NewLogrLogger creates loggers based on a logr implementation (https://github.com/go-logr/logr)
func NewLogrLogger(logrImpl logr.Logger, loggerSource string) (loggers Loggers, err error) {
	return NewLogrLoggerWithClose(logrImpl, loggerSource, nil)
}

// NewLogrLoggerWithClose is similar to NewLogrLogger but calls closeFunc when the loggers are closed.
func NewLogrLoggerWithClose(logrImpl logr.Logger, loggerSource string, closeFunc func() error) (loggers Loggers, err error) {
	l := &logrLogger{logger: logrImpl, closeFn: closeFunc}
	err = l.Check()
	if err != nil {
		return
	}
	err = l.SetLoggerSource(loggerSource)
	if err != nil {
		return
	}
	loggers = l
	return
}
