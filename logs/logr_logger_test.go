/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ARM-software/golang-numeric/commonerrors"
	"github.com/ARM-software/golang-numeric/logs/logstest"
)

func TestLogrLogger(t *testing.T) {
	defer goleak.VerifyNone(t)
	loggers, err := NewLogrLogger(logstest.NewTestLogger(t), "Test")
	require.NoError(t, err)
	testLog(t, loggers)
}

func TestLogrLoggerNull(t *testing.T) {
	defer goleak.VerifyNone(t)
	loggers, err := NewLogrLogger(logstest.NewNullTestLogger(), "Test")
	require.NoError(t, err)
	testLog(t, loggers)
}

func TestLogrLoggerErrors(t *testing.T) {
	_, err := NewLogrLogger(logr.Logger{}, "Test")
	assert.True(t, commonerrors.Any(err, commonerrors.ErrNoLogger))
	_, err = NewLogrLogger(logstest.NewNullTestLogger(), "")
	assert.True(t, commonerrors.Any(err, commonerrors.ErrNoLoggerSource))
	loggers, err := NewLogrLogger(logstest.NewNullTestLogger(), "Test")
	require.NoError(t, err)
	assert.True(t, commonerrors.Any(loggers.SetLogSource(" "), commonerrors.ErrNoLogSource))
}

func TestLogrLoggerClose(t *testing.T) {
	closed := false
	loggers, err := NewLogrLoggerWithClose(logstest.NewNullTestLogger(), "Test", func() error {
		closed = true
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, loggers.Close())
	assert.True(t, closed)
}
