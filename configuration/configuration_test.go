// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

type limits struct {
	Inserts  int `gluamapper:"inserts" yaml:"inserts"`
	KeyRange int `gluamapper:"key_range" yaml:"key_range"`
}

type testConfiguration struct {
	Name       string            `gluamapper:"name" yaml:"name"`
	Verbose    bool              `gluamapper:"verbose" yaml:"verbose"`
	Limits     limits            `gluamapper:"limits" yaml:"limits"`
	Operations []string          `gluamapper:"operations" yaml:"operations"`
	Levels     map[string]string `gluamapper:"levels" yaml:"levels"`
}

const luaText = `
local name = "from-lua"
return {
    name = name,
    verbose = true,
    limits = {
        inserts = 100,
        key_range = 1000,
    },
    operations = {
        "insert 1 one",
        "delete 1",
    },
    levels = {
        DEFAULT = "info",
    },
}
`

const yamlText = `
name: from-yaml
limits:
  inserts: 25
operations:
  - insert 7
  - search 7
levels:
  DEFAULT: debug
`

func writeFile(t *testing.T, name string, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	require.NoError(t, err, "temporary directory")
	fileName := filepath.Join(dir, name)
	err = ioutil.WriteFile(fileName, []byte(text), 0600)
	require.NoError(t, err, "write file")
	return fileName, func() { _ = os.RemoveAll(dir) }
}

func TestParseLua(t *testing.T) {
	fileName, cleanup := writeFile(t, "test.lua", luaText)
	defer cleanup()

	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &config)
	require.NoError(t, err, "parse")

	assert.Equal(t, "from-lua", config.Name, "wrong name")
	assert.True(t, config.Verbose, "wrong verbose")
	assert.Equal(t, 100, config.Limits.Inserts, "wrong inserts")
	assert.Equal(t, 1000, config.Limits.KeyRange, "wrong key range")
	assert.Equal(t, []string{"insert 1 one", "delete 1"}, config.Operations, "wrong operations")
	assert.Equal(t, "info", config.Levels["DEFAULT"], "wrong level")
}

func TestParseYAMLKeepsDefaults(t *testing.T) {
	fileName, cleanup := writeFile(t, "test.yaml", yamlText)
	defer cleanup()

	config := testConfiguration{
		Limits: limits{
			Inserts:  1,
			KeyRange: 50,
		},
	}
	err := configuration.ParseConfigurationFile(fileName, &config)
	require.NoError(t, err, "parse")

	assert.Equal(t, "from-yaml", config.Name, "wrong name")
	assert.False(t, config.Verbose, "wrong verbose")
	assert.Equal(t, 25, config.Limits.Inserts, "wrong inserts")
	assert.Equal(t, 50, config.Limits.KeyRange, "default not kept")
	assert.Equal(t, []string{"insert 7", "search 7"}, config.Operations, "wrong operations")
	assert.Equal(t, "debug", config.Levels["DEFAULT"], "wrong level")
}

func TestParseErrors(t *testing.T) {
	fileName, cleanup := writeFile(t, "test.ini", "name = x\n")
	defer cleanup()

	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &config)
	assert.Equal(t, fault.ErrUnknownConfigFormat, err, "wrong error")

	err = configuration.ParseConfigurationFile("x.lua", config)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "wrong error for non pointer")

	n := 5
	err = configuration.ParseConfigurationFile("x.lua", &n)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "wrong error for non struct")

	err = configuration.ParseConfigurationFile(filepath.Join(os.TempDir(), "does-not-exist.yaml"), &config)
	assert.Error(t, err, "missing file")
}

func TestParseLuaWithoutTable(t *testing.T) {
	fileName, cleanup := writeFile(t, "bad.lua", "return 42\n")
	defer cleanup()

	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &config)
	assert.Equal(t, fault.ErrInvalidConfigResult, err, "wrong error")
}
