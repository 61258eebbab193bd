// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package itembank

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsEmptyBank(t *testing.T) {
	bank, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)

	assert.Equal(t, 0, bank.Len())
	assert.NotNil(t, bank.Items())
	assert.Empty(t, bank.Items())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	content := `[
		{"id": 1, "texto": "Me gusta trabajar en equipo.", "dimension": "extraversion", "invertido": false},
		{"id": 2, "texto": "Prefiero trabajar solo/a.", "dimension": "extraversion", "invertido": true}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	bank, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 2, bank.Len())
	assert.Equal(t, 1, bank.Items()[0].ID)
	assert.Equal(t, "Me gusta trabajar en equipo.", bank.Items()[0].Text)
	assert.Equal(t, "extraversion", bank.Items()[0].Dimension)
	assert.True(t, bank.Items()[1].Reversed)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "an array"}`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
