/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"log"
	"os"
	"strings"

	"github.com/go-logr/stdr"
	"github.com/hashicorp/go-hclog"
	"github.com/sirupsen/logrus"

	"github.com/ARM-software/golang-numeric/commonerrors"
)

// Names of the logging back-ends NewLoggers can create.
const (
	BackendZap    = "zap"
	BackendLogrus = "logrus"
	BackendHclog  = "hclog"
	BackendStdr   = "stdr"
	BackendStd    = "std"
	BackendNoop   = "noop"
)

// SupportedBackends lists the back-ends NewLoggers accepts.
func SupportedBackends() []string {
	return []string{BackendZap, BackendLogrus, BackendHclog, BackendStdr, BackendStd, BackendNoop}
}

// NewLoggers returns loggers using the named back-end. Apart from std, which logs messages to stdout, back-ends log to stderr.
func NewLoggers(backend, loggerSource string) (Loggers, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendZap:
		return NewZapDevelopmentLogger(loggerSource)
	case BackendLogrus:
		logger := logrus.New()
		logger.SetOutput(os.Stderr)
		return NewLogrusLogger(logger, loggerSource)
	case BackendHclog:
		return NewHclogLogger(hclog.New(&hclog.LoggerOptions{Output: os.Stderr}), loggerSource)
	case BackendStdr:
		return NewLogrLogger(stdr.New(log.New(os.Stderr, "", log.LstdFlags)), loggerSource)
	case BackendStd:
		return CreateStdLogger(loggerSource)
	case BackendNoop:
		return NewNoopLogger(loggerSource)
	default:
		return nil, commonerrors.Newf(commonerrors.ErrInvalid, "unsupported logging back-end %q (expected one of %v)", backend, strings.Join(SupportedBackends(), ", "))
	}
}
