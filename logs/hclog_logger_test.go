/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ARM-software/golang-numeric/commonerrors"
)

func TestHclogLogger(t *testing.T) {
	defer goleak.VerifyNone(t)
	logger := hclog.New(nil)
	loggers, err := NewHclogLogger(logger, "Test")
	require.NoError(t, err)
	testLog(t, loggers)

	_, err = NewHclogLogger(nil, "Test")
	assert.True(t, commonerrors.Any(err, commonerrors.ErrNoLogger))
}
