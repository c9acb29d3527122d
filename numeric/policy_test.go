package numeric

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-numeric/commonerrors"
	"github.com/ARM-software/golang-numeric/logs"
)

func TestNewPolicy(t *testing.T) {
	p := NewPolicy()
	assert.False(t, p.IsParallel())
	assert.Zero(t, p.GetWorkers())
	assert.Equal(t, DefaultGrainSize, p.GetGrainSize())
	assert.False(t, p.IsTraced())
	assert.Equal(t, "sequenced", p.String())

	p = NewPolicy(Parallel, GrainSize(10))
	assert.True(t, p.IsParallel())
	assert.Equal(t, 10, p.GetGrainSize())
	assert.Equal(t, "parallel (grain size 10)", p.String())

	p = NewPolicy(Workers(4))
	assert.True(t, p.IsParallel())
	assert.Equal(t, 4, p.GetWorkers())
	assert.Equal(t, "parallel (4 workers, grain size 1024)", p.String())

	p = NewPolicy(Workers(-4), GrainSize(-1), nil)
	assert.True(t, p.IsParallel())
	assert.Zero(t, p.GetWorkers())
	assert.Equal(t, 1, p.GetGrainSize())

	p = NewPolicy(Workers(4), Sequenced)
	assert.False(t, p.IsParallel())
	assert.Zero(t, p.GetWorkers())

	var nilPolicy *Policy
	assert.False(t, nilPolicy.IsParallel())
	assert.False(t, nilPolicy.IsTraced())
	assert.Equal(t, DefaultGrainSize, nilPolicy.GetGrainSize())
	assert.Equal(t, "sequenced", nilPolicy.String())
}

func TestPolicyPartition(t *testing.T) {
	var nilPolicy *Policy
	assert.Len(t, nilPolicy.partition(10000), 1)
	assert.Empty(t, nilPolicy.partition(0))
	assert.Len(t, NewPolicy().partition(10000), 1)

	chunks := NewPolicy(Workers(3), GrainSize(10)).partition(1000)
	require.Len(t, chunks, 3)
	assert.Equal(t, 0, chunks[0].Low)
	assert.Equal(t, 1000, chunks[2].High)

	chunks = NewPolicy(Workers(100), GrainSize(300)).partition(1000)
	assert.Len(t, chunks, 3)
	assert.Len(t, NewPolicy(Parallel, GrainSize(1)).partition(1000), min(1000, runtime.GOMAXPROCS(0)))
}

func TestNewPolicyFromConfiguration(t *testing.T) {
	_, err := NewPolicyFromConfiguration(nil, nil)
	assert.True(t, commonerrors.Any(err, commonerrors.ErrUndefined))

	cfg := DefaultConfiguration()
	p, err := NewPolicyFromConfiguration(cfg, nil)
	require.NoError(t, err)
	assert.False(t, p.IsParallel())

	cfg.Parallel = true
	cfg.Workers = 2
	cfg.GrainSize = 12
	p, err = NewPolicyFromConfiguration(cfg, nil)
	require.NoError(t, err)
	assert.True(t, p.IsParallel())
	assert.Equal(t, 2, p.GetWorkers())
	assert.Equal(t, 12, p.GetGrainSize())

	cfg.Trace = true
	_, err = NewPolicyFromConfiguration(cfg, nil)
	assert.True(t, commonerrors.Any(err, commonerrors.ErrNoLogger))
	loggers, err := logs.NewNoopLogger("test")
	require.NoError(t, err)
	p, err = NewPolicyFromConfiguration(cfg, loggers)
	require.NoError(t, err)
	assert.True(t, p.IsTraced())

	cfg.GrainSize = 0
	_, err = NewPolicyFromConfiguration(cfg, loggers)
	assert.True(t, commonerrors.Any(err, commonerrors.ErrInvalid))
}
