/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/ARM-software/golang-numeric/commonerrors"
)

func TestZapLoggerDev(t *testing.T) {
	defer goleak.VerifyNone(t)
	loggers, err := NewZapDevelopmentLogger("Test")
	require.NoError(t, err)
	testLog(t, loggers)
}

func TestZapLoggerProd(t *testing.T) {
	defer goleak.VerifyNone(t)
	logger, err := zap.NewProduction()
	require.NoError(t, err)
	loggers, err := NewZapLogger(logger, "Test")
	require.NoError(t, err)
	testLog(t, loggers)
}

func TestZapLoggerUndefined(t *testing.T) {
	_, err := NewZapLogger(nil, "Test")
	assert.True(t, commonerrors.Any(err, commonerrors.ErrNoLogger))
}
