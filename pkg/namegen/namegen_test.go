package namegen

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/pathpair/pkg/filesystem"
	"github.com/arthur-debert/pathpair/pkg/types"
)

func newTestFS(t *testing.T) (types.FS, afero.Fs) {
	t.Helper()
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/out", 0755))
	return filesystem.NewAferoFS(mem), mem
}

func TestReplaceExt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		ext      string
		expected string
	}{
		{name: "swap extension", input: "a.jpg", ext: "png", expected: "a.png"},
		{name: "leading dot accepted", input: "a.jpg", ext: ".png", expected: "a.png"},
		{name: "add extension", input: "a", ext: "png", expected: "a.png"},
		{name: "strip extension", input: "a.jpg", ext: "", expected: "a"},
		{name: "multi-dot keeps stem", input: "a.tar.gz", ext: "zip", expected: "a.tar.zip"},
		{name: "same extension", input: "a.png", ext: "png", expected: "a.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReplaceExt(tt.input, tt.ext))
		})
	}
}

func TestToken(t *testing.T) {
	tok := Token()
	assert.True(t, strings.HasPrefix(tok, "A"), "token %q should carry the A prefix", tok)
	assert.Equal(t, 2, strings.Count(tok, "-"), "token %q should have three groups", tok)
	assert.NotEqual(t, tok, Token(), "consecutive tokens should differ")
}

func TestUniqueFile_FreeNameWins(t *testing.T) {
	fsys, _ := newTestFS(t)
	syn := New(fsys)

	name, err := syn.UniqueFile("/out", "a.png")
	require.NoError(t, err)
	assert.Equal(t, "a.png", name)
}

func TestUniqueFile_DiskCollision(t *testing.T) {
	fsys, mem := newTestFS(t)
	require.NoError(t, afero.WriteFile(mem, "/out/a.png", []byte("x"), 0644))
	syn := New(fsys)

	name, err := syn.UniqueFile("/out", "a.png")
	require.NoError(t, err)
	assert.NotEqual(t, "a.png", name)
	assert.True(t, strings.HasPrefix(name, "a-"), "disambiguated name %q keeps the stem", name)
	assert.True(t, strings.HasSuffix(name, ".png"), "disambiguated name %q keeps the extension", name)
}

func TestUniqueFile_RunCollision(t *testing.T) {
	// two entries synthesizing the same output name within one run
	// must not both get it, even before anything exists on disk
	fsys, _ := newTestFS(t)
	syn := New(fsys)

	first, err := syn.UniqueFile("/out", "a.png")
	require.NoError(t, err)
	second, err := syn.UniqueFile("/out", "a.png")
	require.NoError(t, err)

	assert.Equal(t, "a.png", first)
	assert.NotEqual(t, first, second)
}

func TestUniqueContainer(t *testing.T) {
	fsys, mem := newTestFS(t)
	syn := New(fsys)

	name, err := syn.UniqueContainer("/out", "photos")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "photos-"))

	// simulate the first run leaving its container behind
	require.NoError(t, mem.MkdirAll(filepath.Join("/out", name), 0755))

	again, err := New(fsys).UniqueContainer("/out", "photos")
	require.NoError(t, err)
	assert.NotEqual(t, name, again)
}

func TestClaimExplicit(t *testing.T) {
	fsys, mem := newTestFS(t)
	require.NoError(t, mem.MkdirAll("/out/taken", 0755))
	syn := New(fsys)

	free, err := syn.ClaimExplicit("/out", "taken")
	require.NoError(t, err)
	assert.False(t, free)

	free, err = syn.ClaimExplicit("/out", "fresh")
	require.NoError(t, err)
	assert.True(t, free)

	// claiming marks the name as issued for the rest of the run
	free, err = syn.ClaimExplicit("/out", "fresh")
	require.NoError(t, err)
	assert.False(t, free)
}
