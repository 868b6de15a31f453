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

func TestNewMeasure_Defaults(t *testing.T) {
	env := testutil.FrozenEnv(t)

	m := NewMeasure(env, IntValue(15))
	assert.Equal(t, testutil.SequentialID(1), m.ID)
	assert.True(t, m.Time.Equal(testutil.FrozenInstant))
}

func TestMeasure_Build_SuppressesEmptyFields(t *testing.T) {
	env := testutil.FrozenEnv(t)

	m := NewMeasure(env, IntValue(15))
	node, err := m.Build(env)
	require.NoError(t, err)

	assert.Nil(t, node.Limit)
	assert.Empty(t, node.Comments)
	assert.Empty(t, node.Unit)
	assert.Empty(t, node.Symbol)
	assert.Empty(t, node.MeasureExecutionStatus)
	assert.Equal(t, "2024-01-01T12:00:00+01:00", node.MeasureTime)
}

func TestMeasure_Build_EmitsProvidedFields(t *testing.T) {
	env := testutil.FrozenEnv(t)

	m := NewMeasure(env, RealValue(3.3))
	m.Limit = NewLimit(LowerBoundLeqXLeHigherBound, "1", "5")
	m.Comments = "warm start"
	m.Unit = "volt"
	m.Symbol = "V"
	m.Status = schema.StatusPass
	m.Time = time.Date(2024, 1, 1, 13, 30, 0, 500000000, time.Local)

	node, err := m.Build(env)
	require.NoError(t, err)

	require.NotNil(t, node.Limit)
	assert.Equal(t, "1 <= X < 5", node.Limit.LimitExpression)
	assert.Equal(t, "warm start", node.Comments)
	assert.Equal(t, "volt", node.Unit)
	assert.Equal(t, "V", node.Symbol)
	assert.Equal(t, schema.StatusPass, node.MeasureExecutionStatus)
	assert.Equal(t, "2024-01-01T13:30:00.5+01:00", node.MeasureTime)
}
