package main

import (
	"bytes"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSample(t *testing.T, source string) string {
	t.Helper()
	file := path.Join(t.TempDir(), "sample.py")
	require.NoError(t, os.WriteFile(file, []byte(source), 0o644))
	return file
}

func TestAnalyzeCommand(t *testing.T) {
	file := writeSample(t, "def f():\n    pass\n")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"analyze", file})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, "Empty function found: f\n", out.String())
}

func TestRefactorCommand(t *testing.T) {
	file := writeSample(t, "print(1)\n")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"refactor", file})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, "logging.info(1)\n", out.String())
}
