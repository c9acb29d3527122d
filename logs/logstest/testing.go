// Package logstest provides logr loggers for tests of code tracing numeric operations.
package logstest

import (
	"testing"

	"github.com/bombsimon/logrusr/v4"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
	logrusTest "github.com/sirupsen/logrus/hooks/test"
)

// NewNullTestLogger returns a logger backed by a logrus null logger: every entry is dropped.
func NewNullTestLogger() logr.Logger {
	nullLogger, _ := logrusTest.NewNullLogger()
	return logrusr.New(nullLogger)
}

// NewTestLogger returns a logger writing to the output of test t, shown when the test fails or runs verbosely.
func NewTestLogger(t *testing.T) logr.Logger {
	t.Helper()
	return testr.NewWithOptions(t, testr.Options{Verbosity: 1})
}
