package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFlags(t *testing.T) {
	c := &Config{}
	err := c.Load([]string{
		"--structure", "s.txt",
		"--words", "w.txt",
		"--output", "out.png",
		"--debug",
	})
	require.NoError(t, err)
	assert.Equal(t, "s.txt", c.StructurePath)
	assert.Equal(t, "w.txt", c.WordsPath)
	assert.Equal(t, "out.png", c.OutputPath)
	assert.True(t, c.Debug)
	assert.False(t, c.Shell)
}

func TestLoadDefaults(t *testing.T) {
	c := &Config{}
	require.NoError(t, c.Load(nil))
	assert.Equal(t, "", c.StructurePath)
	assert.False(t, c.Debug)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("CROSSFILL_WORDS_DB", "words.db")
	c := &Config{}
	require.NoError(t, c.Load(nil))
	assert.Equal(t, "words.db", c.WordsDBPath)
}

func TestLoadBadFlag(t *testing.T) {
	c := &Config{}
	assert.Error(t, c.Load([]string{"--no-such-flag"}))
}
