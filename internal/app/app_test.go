package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfgkit/proligentgo/internal/timefmt"
)

const scenarioSource = `warehouse {
  process {
    name = "SmokeTest"

    operation {
      sequence {
        step {
          measure {
            value = 42
          }
        }
      }
    }
  }
}
`

func writeScenario(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(scenarioSource), 0o644))
	return path
}

func TestNewConfig(t *testing.T) {
	_, err := NewConfig(Config{})
	assert.Error(t, err)

	config, err := NewConfig(Config{ScenarioPath: "run.hcl"})
	require.NoError(t, err)
	assert.Equal(t, "run.hcl", config.ScenarioPath)
}

func TestNewApp_UnknownTimezone(t *testing.T) {
	var out bytes.Buffer
	config, err := NewConfig(Config{ScenarioPath: "run.hcl", Timezone: "Mars/Olympus"})
	require.NoError(t, err)

	_, err = NewApp(&out, config)
	require.Error(t, err)
	var zoneErr *timefmt.UnknownTimeZoneError
	assert.ErrorAs(t, err, &zoneErr)
}

func TestNewApp_BadSchemaPath(t *testing.T) {
	var out bytes.Buffer
	config, err := NewConfig(Config{
		ScenarioPath: "run.hcl",
		SchemaPath:   filepath.Join(t.TempDir(), "missing.xsd"),
		Validate:     true,
	})
	require.NoError(t, err)

	_, err = NewApp(&out, config)
	assert.Error(t, err)
}

func TestApp_Run_GeneratesAndValidates(t *testing.T) {
	scenarioDir := t.TempDir()
	writeScenario(t, scenarioDir, "smoke.hcl")
	outputDir := t.TempDir()

	var out bytes.Buffer
	config, err := NewConfig(Config{
		ScenarioPath: scenarioDir,
		OutputDir:    outputDir,
		Timezone:     "Europe/Paris",
		Validate:     true,
		LogFormat:    "json",
		LogLevel:     "debug",
	})
	require.NoError(t, err)

	generator, err := NewApp(&out, config)
	require.NoError(t, err)
	require.NoError(t, generator.Run(context.Background()))

	entries, err := os.ReadDir(outputDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	name := entries[0].Name()
	assert.True(t, strings.HasPrefix(name, "Proligent_"), name)
	assert.True(t, strings.HasSuffix(name, ".xml"), name)

	data, err := os.ReadFile(filepath.Join(outputDir, name))
	require.NoError(t, err)
	assert.Contains(t, string(data), `<Value Kind="INTEGER">42</Value>`)
	assert.Contains(t, string(data), "<ProcessFullName>SmokeTest</ProcessFullName>")
}

func TestApp_Run_DiscoveryFailure(t *testing.T) {
	var out bytes.Buffer
	config, err := NewConfig(Config{ScenarioPath: filepath.Join(t.TempDir(), "missing.hcl")})
	require.NoError(t, err)

	generator, err := NewApp(&out, config)
	require.NoError(t, err)
	assert.Error(t, generator.Run(context.Background()))
}

func TestApp_Run_BadScenarioAborts(t *testing.T) {
	scenarioDir := t.TempDir()
	path := filepath.Join(scenarioDir, "broken.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`warehouse { process { status = "BOGUS" } }`), 0o644))

	var out bytes.Buffer
	config, err := NewConfig(Config{ScenarioPath: scenarioDir, OutputDir: t.TempDir()})
	require.NoError(t, err)

	generator, err := NewApp(&out, config)
	require.NoError(t, err)
	assert.Error(t, generator.Run(context.Background()))
}
