/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"fmt"
	"io"
	"log"

	"github.com/sasha-s/go-deadlock"

	"github.com/ARM-software/golang-numeric/commonerrors"
	"github.com/ARM-software/golang-numeric/value"
)

// GenericLoggers logs through a pair of standard loggers, one for messages and one for errors.
// Every line is prefixed with the logger source and, once set, the log source e.g. `[numeric] (partial_sum) Output: `.
type GenericLoggers struct {
	Output *log.Logger
	Error  *log.Logger

	mu           deadlock.RWMutex
	loggerSource string
	logSource    string
}

func (l *GenericLoggers) init(output, errOutput io.Writer, loggerSource string) {
	l.loggerSource = loggerSource
	l.Output = log.New(output, l.prefix("Output"), 0)
	l.Error = log.New(errOutput, l.prefix("Error"), 0)
}

func (l *GenericLoggers) prefix(kind string) string {
	if l.logSource == "" {
		return fmt.Sprintf("[%v] %v: ", l.loggerSource, kind)
	}
	return fmt.Sprintf("[%v] (%v) %v: ", l.loggerSource, l.logSource, kind)
}

// Check returns ErrNoLogger unless both loggers are defined.
func (l *GenericLoggers) Check() error {
	if l.Error == nil || l.Output == nil {
		return commonerrors.ErrNoLogger
	}
	return nil
}

func (l *GenericLoggers) SetLogSource(source string) error {
	if value.IsEmpty(source) {
		return commonerrors.ErrNoLogSource
	}
	return l.updateSources(func() { l.logSource = source })
}

func (l *GenericLoggers) SetLoggerSource(source string) error {
	if value.IsEmpty(source) {
		return commonerrors.ErrNoLoggerSource
	}
	return l.updateSources(func() { l.loggerSource = source })
}

func (l *GenericLoggers) updateSources(update func()) error {
	if err := l.Check(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	update()
	l.Output.SetPrefix(l.prefix("Output"))
	l.Error.SetPrefix(l.prefix("Error"))
	return nil
}

func (l *GenericLoggers) Log(output ...interface{}) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.Output.Println(output...)
}

func (l *GenericLoggers) LogError(err ...interface{}) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.Error.Println(err...)
}

// Close is a no-op: the underlying writers are owned by the caller.
func (l *GenericLoggers) Close() error {
	return nil
}
