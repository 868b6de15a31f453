package model_test

import (
	. "github.com/mfgkit/proligentgo/internal/model"

	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfgkit/proligentgo/internal/schema"
	"github.com/mfgkit/proligentgo/internal/testutil"
)

func TestManufacturingStep_Complete_LastCallWins(t *testing.T) {
	env := testutil.FrozenEnv(t)
	step := NewStepRun(env, nil)

	first := time.Date(2024, 1, 1, 12, 5, 0, 0, time.Local)
	second := time.Date(2024, 1, 1, 12, 10, 0, 0, time.Local)

	step.Complete(schema.StatusFail, first)
	step.Complete(schema.StatusPass, second)

	assert.Equal(t, schema.StatusPass, step.Status)
	assert.True(t, step.EndTime.Equal(second))
}

func TestManufacturingStep_Complete_ZeroEndTimeStampsNow(t *testing.T) {
	env := testutil.FrozenEnv(t)
	step := NewStepRun(env, nil)

	before := time.Now()
	step.Complete(schema.StatusPass, time.Time{})

	assert.False(t, step.EndTime.Before(before))
}

func TestStepRun_Build_EndDateSuppressedWhileNotCompleted(t *testing.T) {
	env := testutil.FrozenEnv(t)

	step := NewStepRun(env, nil)
	node, err := step.Build(env)
	require.NoError(t, err)
	assert.Equal(t, schema.StatusNotCompleted, node.StepExecutionStatus)
	assert.Empty(t, node.EndDate)

	step.Complete(schema.StatusPass, time.Date(2024, 1, 1, 12, 30, 0, 0, time.Local))
	node, err = step.Build(env)
	require.NoError(t, err)
	assert.Equal(t, schema.StatusPass, node.StepExecutionStatus)
	assert.Equal(t, "2024-01-01T12:30:00+01:00", node.EndDate)
}

func TestNewStepRun_SeedMeasure(t *testing.T) {
	env := testutil.FrozenEnv(t)

	seed := NewMeasure(env, BoolValue(true))
	step := NewStepRun(env, seed)
	step.AddMeasure(NewMeasure(env, BoolValue(false)))

	measures := step.Measures()
	require.Len(t, measures, 2)
	assert.Same(t, seed, measures[0])
}
