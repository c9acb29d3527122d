package logs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-numeric/commonerrors"
)

func TestStringLogger(t *testing.T) {
	loggers, err := NewStringLogger("Test")
	require.NoError(t, err)
	testLog(t, loggers)

	loggers, err = NewStringLogger("Test")
	require.NoError(t, err)
	loggers.LogError("Test err")
	loggers.Log("Test1")
	contents := loggers.GetLogContent()
	require.NotZero(t, contents)
	assert.Contains(t, contents, "[Test] Error: Test err")
	assert.Contains(t, contents, "[Test] Output: ")
	assert.Contains(t, contents, "Test1")
	require.NoError(t, loggers.Close())
	assert.Empty(t, loggers.GetLogContent())
}

func TestStringLoggerFormat(t *testing.T) {
	loggers, err := NewStringLogger("Test")
	require.NoError(t, err)
	loggers.Log("hello")
	loggers.LogError("failure")
	assert.Equal(t, "[Test] Output: hello\n[Test] Error: failure\n", loggers.GetLogContent())
}

func TestStringLoggerSources(t *testing.T) {
	loggers, err := NewStringLogger("Test")
	require.NoError(t, err)
	require.NoError(t, loggers.SetLogSource("partial_sum"))
	loggers.Log("BinaryOp:", 1, 2, "->", 3)
	assert.Contains(t, loggers.GetLogContent(), "[Test] (partial_sum) Output: BinaryOp: 1 2 -> 3")

	require.NoError(t, loggers.SetLoggerSource("numeric"))
	loggers.LogError("failure")
	assert.Contains(t, loggers.GetLogContent(), "[numeric] (partial_sum) Error: failure")
	assert.ErrorIs(t, loggers.SetLogSource(" "), commonerrors.ErrNoLogSource)
	assert.ErrorIs(t, loggers.SetLoggerSource(""), commonerrors.ErrNoLoggerSource)
}
