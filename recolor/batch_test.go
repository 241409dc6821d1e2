/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package recolor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/froststrap/colrfont/bootstrapper"
	"github.com/froststrap/colrfont/internal/truetype"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, data, 0644))
}

// linuxEnv is a linux host with home directory `home`.
func linuxEnv(home string) bootstrapper.Env {
	return bootstrapper.Env{GOOS: "linux", Home: home}
}

func TestIsFontFile(t *testing.T) {
	for _, name := range []string{"a.ttf", "A.TTF", "b.otf", "c.Otf"} {
		assert.True(t, IsFontFile(name), name)
	}
	for _, name := range []string{"notes.txt", "a.ttf.bak", "ttf", "a.woff"} {
		assert.False(t, IsFontFile(name), name)
	}
}

func TestProcessDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "A.ttf"), goregular.TTF)
	writeFile(t, filepath.Join(dir, "B.ttf"), gobold.TTF)
	writeFile(t, filepath.Join(dir, "notes.txt"), []byte("keep me"))

	sum, err := ProcessDirectory(dir, Options{Color: darkBlue, Env: linuxEnv(t.TempDir())})
	require.NoError(t, err)
	assert.Equal(t, Summary{Processed: 2}, sum)

	for _, name := range []string{"A.otf", "B.otf"} {
		fnt, err := truetype.ParseFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assertSingleColor(t, fnt, darkBlue)
	}

	b, err := os.ReadFile(filepath.Join(dir, "notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(b))

	_, err = os.Stat(filepath.Join(dir, bootstrapper.ManifestFileName))
	assert.True(t, os.IsNotExist(err))
}

func TestProcessDirectoryRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a", "b", "Icons.TTF"), goregular.TTF)
	writeFile(t, filepath.Join(dir, "broken.ttf"), []byte("garbage"))

	sum, err := ProcessDirectory(dir, Options{Color: darkBlue, Env: linuxEnv(t.TempDir())})
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Processed)
	assert.Equal(t, 1, sum.Failed)

	_, err = os.Stat(filepath.Join(dir, "a", "b", "Icons.otf"))
	assert.NoError(t, err)
}

func TestProcessDirectoryEmpty(t *testing.T) {
	sum, err := ProcessDirectory(t.TempDir(), Options{Color: darkBlue, Env: linuxEnv(t.TempDir())})
	require.NoError(t, err)
	assert.Equal(t, Summary{}, sum)
}

func TestProcessDirectoryNotDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "A.ttf")
	writeFile(t, file, goregular.TTF)

	for _, root := range []string{file, filepath.Join(dir, "missing")} {
		_, err := ProcessDirectory(root, Options{Color: darkBlue})
		assert.True(t, errors.Is(err, ErrNotDirectory), root)
	}
	_, err := os.Stat(filepath.Join(dir, "A.otf"))
	assert.True(t, os.IsNotExist(err))
}

func TestProcessDirectoryDerivedManifest(t *testing.T) {
	base := t.TempDir()
	pkg := filepath.Join(base, "ExtraContent", "LuaPackages", "Packages", "_Index", "BuilderIcons", "BuilderIcons")
	fontDir := filepath.Join(pkg, "Font")
	writeFile(t, filepath.Join(fontDir, "BuilderIcons-Regular.ttf"), goregular.TTF)

	sum, err := ProcessDirectory(fontDir, Options{Color: darkBlue, Env: linuxEnv(t.TempDir())})
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Processed)
	assert.Equal(t, 0, sum.Deployed)
	assert.Equal(t, filepath.Join(pkg, bootstrapper.ManifestFileName), sum.Manifest)
	assert.FileExists(t, sum.Manifest)
	assert.FileExists(t, filepath.Join(fontDir, "BuilderIcons-Regular.otf"))
}

func TestProcessDirectorySober(t *testing.T) {
	home := t.TempDir()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "BuilderIcons-Regular.ttf"), goregular.TTF)
	writeFile(t, filepath.Join(dir, "BuilderIcons-Filled.ttf"), gobold.TTF)

	sum, err := ProcessDirectory(dir, Options{
		Color:        darkBlue,
		Bootstrapper: bootstrapper.Sober,
		Env:          linuxEnv(home),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Processed)
	assert.Equal(t, 2, sum.Deployed)

	d, err := bootstrapper.Resolve(linuxEnv(home), bootstrapper.Sober, "")
	require.NoError(t, err)
	for _, name := range []string{"BuilderIcons-Regular.otf", "BuilderIcons-Filled.otf"} {
		fnt, err := truetype.ParseFile(filepath.Join(d.FontDir, name))
		require.NoError(t, err, name)
		assertSingleColor(t, fnt, darkBlue)
	}
	assert.Equal(t, filepath.Join(d.Dir, bootstrapper.ManifestFileName), sum.Manifest)
	assert.FileExists(t, sum.Manifest)
}

func TestProcessDirectoryInDeployment(t *testing.T) {
	home := t.TempDir()
	d, err := bootstrapper.Resolve(linuxEnv(home), bootstrapper.Sober, "")
	require.NoError(t, err)
	font := filepath.Join(d.FontDir, "BuilderIcons-Regular.otf")
	writeFile(t, font, goregular.TTF)

	sum, err := ProcessDirectory(d.FontDir, Options{
		Color:        darkBlue,
		Bootstrapper: bootstrapper.Sober,
		Env:          linuxEnv(home),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Processed)
	assert.Equal(t, 0, sum.Failed)
	assert.Equal(t, 0, sum.Deployed)
	assert.FileExists(t, sum.Manifest)

	// Recolored in place, not truncated by copying onto itself.
	fnt, err := truetype.ParseFile(font)
	require.NoError(t, err)
	assertSingleColor(t, fnt, darkBlue)
}

func TestProcessDirectoryWindowsWithoutLocalAppData(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "A.ttf"), goregular.TTF)
	writeFile(t, filepath.Join(dir, "B.ttf"), gobold.TTF)

	env := bootstrapper.Env{
		GOOS:      "windows",
		LookupEnv: func(string) (string, bool) { return "", false },
	}
	sum, err := ProcessDirectory(dir, Options{
		Color:        darkBlue,
		Bootstrapper: bootstrapper.Froststrap,
		ModName:      "MyMod",
		Env:          env,
	})
	require.NoError(t, err)
	assert.Equal(t, Summary{Processed: 2}, sum)
	assert.FileExists(t, filepath.Join(dir, "A.otf"))
	assert.FileExists(t, filepath.Join(dir, "B.otf"))
}

func TestProcessDirectoryBootstrapperWithoutLocation(t *testing.T) {
	home := t.TempDir()
	base := t.TempDir()
	// Even inside a BuilderIcons package, a bootstrapper without a location writes no manifest.
	dir := filepath.Join(base, "ExtraContent", "LuaPackages", "Packages", "_Index", "BuilderIcons", "BuilderIcons")
	writeFile(t, filepath.Join(dir, "A.ttf"), goregular.TTF)

	sum, err := ProcessDirectory(dir, Options{
		Color:        darkBlue,
		Bootstrapper: bootstrapper.Bloxstrap,
		Env:          linuxEnv(home),
	})
	require.NoError(t, err)
	assert.Equal(t, Summary{Processed: 1}, sum)
	_, err = os.Stat(filepath.Join(dir, bootstrapper.ManifestFileName))
	assert.True(t, os.IsNotExist(err))

	entries, err := os.ReadDir(home)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
