package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-numeric/commonerrors"
	"github.com/ARM-software/golang-numeric/field"
)

func Test_processMapStructureString(t *testing.T) {
	tests := []struct {
		mapstructureTag      string
		expectedProcessedTag string
	}{
		{},
		{
			mapstructureTag: "         ",
		},
		{
			mapstructureTag: "     -    ",
		},
		{
			mapstructureTag: "    , omitzero      ",
		},
		{
			mapstructureTag:      "grain_size  ,omitempty  , omitzero    , squash  ",
			expectedProcessedTag: "grain_size",
		},
		{
			mapstructureTag:      "   workers   ",
			expectedProcessedTag: "workers",
		},
	}

	for i := range tests {
		test := tests[i]
		t.Run(test.mapstructureTag, func(t *testing.T) {
			assert.Equal(t, test.expectedProcessedTag, processMapStructureString(test.mapstructureTag))
		})
	}
}

func TestValidationError(t *testing.T) {
	assert.Nil(t, WrapValidationError(nil, nil))
	assert.Nil(t, WrapFieldValidationError("test", nil, nil, nil))

	err := WrapFieldValidationError("GrainSize", field.ToOptionalString("grain_size"), nil, commonerrors.New(commonerrors.ErrInvalid, "must be positive"))
	require.Error(t, err)
	assert.True(t, commonerrors.Any(err, commonerrors.ErrInvalid))
	err.RecordField("Policy", field.ToOptionalString("policy"), nil)
	err.RecordPrefix("numeric")
	assert.Equal(t, "NUMERIC_POLICY_GRAIN_SIZE", err.GetMapStructurePath())
	assert.Equal(t, "Policy->GrainSize", err.GetTreePath())
	assert.Contains(t, err.Error(), "must be positive")
	assert.Equal(t, err.Error(), err.String())

	wrapped := WrapValidationError(field.ToOptionalString("other"), err)
	assert.Equal(t, "OTHER_POLICY_GRAIN_SIZE", wrapped.GetMapStructurePath())
}
