package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInputArg(t *testing.T) {
	assert.True(t, parseInputArg("-").isStdin())
	assert.True(t, parseInputArg("  -  ").isStdin())
	assert.False(t, parseInputArg("a.txt").isStdin())
	assert.Equal(t, "a.txt", parseInputArg("a.txt").path)
}

func TestParseOutputArg(t *testing.T) {
	assert.True(t, parseOutputArg("-").isStdout())
	assert.False(t, parseOutputArg("out.hc").isStdout())
	assert.Equal(t, "out.hc", parseOutputArg("out.hc").path)
}

func TestDeduceOutputPath(t *testing.T) {
	assert.Equal(t, "a.hc", deduceOutputPath("a", true))
	assert.Equal(t, "a.txt.hc", deduceOutputPath("a.txt", true))

	assert.Equal(t, "a", deduceOutputPath("a.hc", false))
	assert.Equal(t, "a.unpacked", deduceOutputPath("a", false))
	assert.Equal(t, "a.extension.unpacked", deduceOutputPath("a.extension", false))
}

func TestResolveOutputExplicitFlagWins(t *testing.T) {
	out, err := resolveOutput("dest.bin", resolvedInput{path: "a"}, true)
	require.NoError(t, err)
	assert.Equal(t, "dest.bin", out.path)
}

func TestResolveOutputDeducedFromFileInput(t *testing.T) {
	out, err := resolveOutput("", resolvedInput{path: "a"}, true)
	require.NoError(t, err)
	assert.Equal(t, "a.hc", out.path)

	out, err = resolveOutput("", resolvedInput{path: "a.hc"}, false)
	require.NoError(t, err)
	assert.Equal(t, "a", out.path)
}
