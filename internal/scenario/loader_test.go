package scenario

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfgkit/proligentgo/internal/model"
	"github.com/mfgkit/proligentgo/internal/schema"
	"github.com/mfgkit/proligentgo/internal/testutil"
)

func TestLoadFile_Process1MatchesProgrammaticDocument(t *testing.T) {
	env := testutil.FrozenEnv(t)

	w, err := LoadFile(context.Background(), filepath.Join("testdata", "process1.hcl"), env)
	require.NoError(t, err)

	data, err := model.ToXML(w, env)
	require.NoError(t, err)

	expected, err := os.ReadFile(filepath.Join("testdata", "process1.xml"))
	require.NoError(t, err)
	assert.Equal(t, string(expected), string(data))
}

func TestLoadFile_FullScenario(t *testing.T) {
	env := testutil.FrozenEnv(t)

	w, err := LoadFile(context.Background(), filepath.Join("testdata", "full.hcl"), env)
	require.NoError(t, err)

	assert.Equal(t, "station-42", w.SourceFingerprint)

	unit := w.ProductUnit
	require.NotNil(t, unit)
	assert.Equal(t, "SN-0001", unit.ProductUnitIdentifier)
	assert.Equal(t, "Acme", unit.Manufacturer)
	require.Len(t, unit.Characteristics, 1)
	assert.Equal(t, "red", unit.Characteristics[0].Value)
	require.Len(t, unit.Documents, 1)
	assert.Equal(t, "Certificate", unit.Documents[0].Name)

	p := w.TopProcess
	require.NotNil(t, p)
	assert.Equal(t, "FinalTest", p.Name)
	assert.Equal(t, "1.2", p.Version)
	assert.Equal(t, "production", p.ProcessMode)
	assert.Equal(t, schema.StatusPass, p.Status)

	require.Len(t, p.Operations, 1)
	op := p.Operations[0]
	assert.Equal(t, "FinalTest", op.ProcessName)
	assert.Equal(t, "ST-7", op.Station)

	require.Len(t, op.Sequences, 1)
	seq := op.Sequences[0]
	// The sequence declares no station, so it inherits the operation's at
	// attach time.
	assert.Equal(t, "ST-7", seq.Station)
	assert.Equal(t, schema.StatusPass, seq.Status)

	require.Len(t, seq.Steps, 1)
	step := seq.Steps[0]
	assert.Equal(t, "measure-voltage", step.Name)

	measures := step.Measures()
	require.Len(t, measures, 3)
	assert.Equal(t, schema.KindReal, measures[0].Value.Kind())
	assert.Equal(t, "volt", measures[0].Unit)
	require.NotNil(t, measures[0].Limit)
	assert.Equal(t, "3.1 <= X <= 3.5", measures[0].Limit.String())
	assert.Equal(t, schema.KindString, measures[1].Value.Kind())
	assert.Equal(t, schema.KindDateTime, measures[2].Value.Kind())

	// The whole tree must render and survive canonicalization.
	_, err = model.ToXML(w, env)
	require.NoError(t, err)
}

func TestLoadFile_Errors(t *testing.T) {
	env := testutil.FrozenEnv(t)

	testCases := []struct {
		name    string
		content string
	}{
		{"no warehouse block", `# empty scenario`},
		{
			"unknown status",
			`warehouse { process { status = "PASSED" } }`,
		},
		{
			"unknown limit expression",
			`warehouse { process { operation { sequence { step { measure {
				value = 1
				limit { expression = "X ~= HIGHERBOUND" }
			} } } } } }`,
		},
		{
			"bad timestamp",
			`warehouse { generation_time = "yesterday" }`,
		},
		{
			"kind conflicts with value type",
			`warehouse { process { operation { sequence { step { measure {
				value = true
				kind  = "INTEGER"
			} } } } } }`,
		},
		{
			"datetime kind requires RFC 3339 text",
			`warehouse { process { operation { sequence { step { measure {
				value = "not a time"
				kind  = "DATETIME"
			} } } } } }`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "scenario.hcl")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))

			_, err := LoadFile(context.Background(), path, env)
			assert.Error(t, err)
		})
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	env := testutil.FrozenEnv(t)
	_, err := LoadFile(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"), env)
	assert.Error(t, err)
}

func TestDiscover(t *testing.T) {
	t.Run("single file passes through", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "one.hcl")
		require.NoError(t, os.WriteFile(path, []byte("warehouse {}"), 0o644))

		files, err := Discover(path)
		require.NoError(t, err)
		assert.Equal(t, []string{path}, files)
	})

	t.Run("directory is searched recursively and sorted", func(t *testing.T) {
		dir := t.TempDir()
		sub := filepath.Join(dir, "sub")
		require.NoError(t, os.Mkdir(sub, 0o755))
		for _, name := range []string{filepath.Join(dir, "b.hcl"), filepath.Join(sub, "a.hcl")} {
			require.NoError(t, os.WriteFile(name, []byte("warehouse {}"), 0o644))
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

		files, err := Discover(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "b.hcl"), filepath.Join(sub, "a.hcl")}, files)
	})

	t.Run("directory without scenarios fails", func(t *testing.T) {
		_, err := Discover(t.TempDir())
		assert.Error(t, err)
	})

	t.Run("missing path fails", func(t *testing.T) {
		_, err := Discover(filepath.Join(t.TempDir(), "nope"))
		assert.Error(t, err)
	})
}
