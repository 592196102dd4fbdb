package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/pathpair/pkg/errors"
)

func runPlan(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(append([]string{"plan"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestPlan_SingleFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.jpg")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0644))

	output, err := runPlan(t, src, "--ext", "png")
	require.NoError(t, err)
	assert.Contains(t, output, filepath.Join(dir, "a.png"))
	assert.Contains(t, output, "1 pair")
}

func TestPlan_FileToDirectory(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := t.TempDir()
	src := filepath.Join(srcDir, "a.jpg")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0644))

	output, err := runPlan(t, src, dstDir, "--ext", "png")
	require.NoError(t, err)
	assert.Contains(t, output, filepath.Join(dstDir, "a.png"))
}

func TestPlan_DirectoryFanOut(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := t.TempDir()
	for _, name := range []string{"a.jpg", "b.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(srcDir, name), []byte("x"), 0644))
	}

	output, err := runPlan(t, srcDir, dstDir, "--ext", "png")
	require.NoError(t, err)
	assert.Contains(t, output, filepath.Join(dstDir, "a.png"))
	assert.Contains(t, output, filepath.Join(dstDir, "b.png"))
	assert.Contains(t, output, "2 pairs")
}

func TestPlan_MatchFlag(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := t.TempDir()
	for _, name := range []string{"01.jpg", "02.jpg", "04.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(srcDir, name), []byte("x"), 0644))
	}

	output, err := runPlan(t, srcDir, dstDir, "--ext", "png", "--match", "{1..=3:02d}.jpg")
	require.NoError(t, err)
	assert.Contains(t, output, filepath.Join(dstDir, "01.png"))
	assert.Contains(t, output, filepath.Join(dstDir, "02.png"))
	assert.NotContains(t, output, filepath.Join(dstDir, "04.png"))
}

func TestPlan_BadPattern(t *testing.T) {
	dir := t.TempDir()

	_, err := runPlan(t, dir, "--match", "{9..=1:02d}")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPatternSyntax))
}

func TestPlan_MissingSource(t *testing.T) {
	_, err := runPlan(t, filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceNotFound))
}

func TestPlan_StreamRoundTrip(t *testing.T) {
	output, err := runPlan(t, "-", "-")
	require.NoError(t, err)
	assert.Contains(t, output, "- -> -")
}

func TestPlan_NoStdinFlag(t *testing.T) {
	_, err := runPlan(t, "-", "-", "--no-stdin")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStdinDisallowed))
}
