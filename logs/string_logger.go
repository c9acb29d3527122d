/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"strings"

	"github.com/sasha-s/go-deadlock"
)

type StringWriter struct {
	mu   deadlock.Mutex
	logs strings.Builder
}

func (w *StringWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.logs.Write(p)
}

func (w *StringWriter) Close() (err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.logs.Reset()
	return
}

func (w *StringWriter) GetFullContent() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.logs.String()
}

// StringLoggers keeps every message logged in memory.
type StringLoggers struct {
	GenericLoggers
	LogWriter StringWriter
}

func (l *StringLoggers) GetLogContent() string {
	return l.LogWriter.GetFullContent()
}

// Close closes the logger
func (l *StringLoggers) Close() (err error) {
	err = l.LogWriter.Close()
	if err != nil {
		return
	}
	err = l.GenericLoggers.Close()
	return
}

// NewStringLogger creates a logger to a string.
func NewStringLogger(loggerSource string) (loggers *StringLoggers, err error) {
	loggers = &StringLoggers{}
	loggers.init(&loggers.LogWriter, &loggers.LogWriter, loggerSource)
	return
}
