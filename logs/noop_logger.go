/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import "github.com/go-logr/logr"

// noopSink is a logr sink dropping every entry. Unlike logr.Discard(), the resulting logger has a sink.
type noopSink struct{}

func (noopSink) Init(logr.RuntimeInfo) {}
func (noopSink) Enabled(int) bool { return false }
func (noopSink) Info(int, string, ...any) {}
func (noopSink) Error(error, string, ...any) {}
func (s noopSink) WithValues(...any) logr.LogSink { return s }
func (s noopSink) WithName(string) logr.LogSink { return s }

// NewNoopLogger returns loggers discarding every message, e.g. to trace a policy without output.
func NewNoopLogger(loggerSource string) (Loggers, error) {
	return NewLogrLogger(logr.New(noopSink{}), loggerSource)
}
