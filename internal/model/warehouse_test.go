package model_test

import (
	. "github.com/mfgkit/proligentgo/internal/model"

	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfgkit/proligentgo/internal/testutil"
)

func TestDataWareHouse_Build_NoChildren(t *testing.T) {
	env := testutil.FrozenEnv(t)

	w := NewDataWareHouse(env)
	node, err := w.Build(env)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01T12:00:00+01:00", node.GenerationTime)
	assert.Equal(t, testutil.SequentialID(1), node.DataSourceFingerprint)
	assert.Empty(t, node.TopProcessRun)
	assert.Empty(t, node.ProductUnit)
}

func TestDataWareHouse_Build_SingleElementLists(t *testing.T) {
	env := testutil.FrozenEnv(t)

	w := NewDataWareHouse(env)
	w.SetProcessRun(NewProcessRun(env))
	w.SetProductUnit(NewProductUnit(env))

	node, err := w.Build(env)
	require.NoError(t, err)
	assert.Len(t, node.TopProcessRun, 1)
	assert.Len(t, node.ProductUnit, 1)
}

func TestProductUnit_Build_Suppression(t *testing.T) {
	env := testutil.FrozenEnv(t)

	unit := NewProductUnit(env)
	unit.ProductFullName = "Widget"

	node, err := unit.Build(env)
	require.NoError(t, err)
	assert.Empty(t, node.ByManufacturer)
	assert.Empty(t, node.CreationTime)
	assert.Empty(t, node.ManufacturingTime)
	assert.False(t, node.Scrapped)
	assert.Empty(t, node.ScrappedTime)
	assert.Empty(t, node.Characteristic)
	assert.Empty(t, node.Document)

	unit.Manufacturer = "Acme"
	unit.CreationTime = time.Date(2023, 6, 1, 8, 0, 0, 0, time.Local)
	unit.Scrapped = true
	unit.ScrapTime = time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
	unit.AddCharacteristic(&Characteristic{FullName: "color", Value: "red"})
	unit.AddDocument(NewDocument(env, "report.pdf"))

	node, err = unit.Build(env)
	require.NoError(t, err)
	assert.Equal(t, "Acme", node.ByManufacturer)
	assert.Equal(t, "2023-06-01T08:00:00+02:00", node.CreationTime)
	assert.True(t, node.Scrapped)
	assert.Equal(t, "2024-01-01T09:00:00+01:00", node.ScrappedTime)
	require.Len(t, node.Characteristic, 1)
	assert.Equal(t, "red", node.Characteristic[0].Value)
	require.Len(t, node.Document, 1)
	assert.Equal(t, "report.pdf", node.Document[0].FileName)
}

func TestCharacteristic_EmptyValueSuppressed(t *testing.T) {
	env := testutil.FrozenEnv(t)

	node, err := (&Characteristic{FullName: "lot"}).Build(env)
	require.NoError(t, err)
	assert.Equal(t, "lot", node.FullName)
	assert.Empty(t, node.Value)
}

func TestDocument_Defaults(t *testing.T) {
	env := testutil.FrozenEnv(t)

	doc := NewDocument(env, "cert.pdf")
	assert.Equal(t, testutil.SequentialID(1), doc.Identifier)

	node, err := doc.Build(env)
	require.NoError(t, err)
	assert.Equal(t, "cert.pdf", node.FileName)
	assert.Empty(t, node.Name)
	assert.Empty(t, node.Description)
}
