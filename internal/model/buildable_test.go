package model_test

import (
	. "github.com/mfgkit/proligentgo/internal/model"

	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfgkit/proligentgo/internal/testutil"
)

func TestToXML_StandaloneEntity(t *testing.T) {
	env := testutil.FrozenEnv(t)

	m := NewMeasure(env, BoolValue(true))
	data, err := ToXML(m, env)
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"))
	assert.Contains(t, text, `<Value Kind="BOOL">true</Value>`)
}

func TestSaveXML_DefaultDestination(t *testing.T) {
	env := testutil.FrozenEnv(t)

	w := NewDataWareHouse(env)
	path, err := SaveXML(w, env, "")
	require.NoError(t, err)

	assert.Equal(t, env.DestinationDir, filepath.Dir(path))
	base := filepath.Base(path)
	assert.True(t, strings.HasPrefix(base, "Proligent_"), base)
	assert.True(t, strings.HasSuffix(base, ".xml"), base)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<ProligentDatawarehouse")
}

func TestSaveXML_ExplicitDestination(t *testing.T) {
	env := testutil.FrozenEnv(t)

	dest := filepath.Join(t.TempDir(), "out.xml")
	w := NewDataWareHouse(env)
	path, err := SaveXML(w, env, dest)
	require.NoError(t, err)
	assert.Equal(t, dest, path)

	_, err = os.Stat(dest)
	assert.NoError(t, err)
}

func TestSaveXML_BuildFailureLeavesNoFile(t *testing.T) {
	env := testutil.FrozenEnv(t)

	step := NewStepRun(env, NewMeasure(env, Value{}))
	dest := filepath.Join(t.TempDir(), "broken.xml")

	_, err := SaveXML(step, env, dest)
	require.ErrorIs(t, err, ErrInvalidValueKind)

	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr))
}
