/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package logs defines the loggers used to trace numeric operations and report errors.
package logs

import (
	"github.com/go-logr/zapr"
	"go.uber.org/zap"

	"github.com/ARM-software/golang-numeric/commonerrors"
)

// Syncing a console such as /dev/stderr fails on some platforms. See https://github.com/uber-go/zap/issues/328
var ignoredSyncErrors = []string{"invalid argument", "inappropriate ioctl"}

// NewZapLogger wraps a zap logger (https://github.com/uber-go/zap). Closing the loggers flushes zap's buffers.
func NewZapLogger(zapL *zap.Logger, loggerSource string) (Loggers, error) {
	if zapL == nil {
		return nil, commonerrors.ErrNoLogger
	}
	return NewLogrLoggerWithClose(zapr.NewLogger(zapL), loggerSource, func() error {
		err := zapL.Sync()
		if commonerrors.CorrespondTo(err, ignoredSyncErrors...) {
			return nil
		}
		return err
	})
}

// NewZapDevelopmentLogger returns loggers writing human-readable lines to stderr.
func NewZapDevelopmentLogger(loggerSource string) (Loggers, error) {
	zapL, err := zap.NewDevelopment()
	if err != nil {
		return nil, commonerrors.WrapError(commonerrors.ErrUnexpected, err, "could not create a development logger")
	}
	return NewZapLogger(zapL, loggerSource)
}
