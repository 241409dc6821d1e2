/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package bootstrapper

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func windowsEnv(vars map[string]string) Env {
	return Env{
		GOOS: "windows",
		Home: `C:\Users\X`,
		LookupEnv: func(key string) (string, bool) {
			v, ok := vars[key]
			return v, ok
		},
	}
}

func TestResolveWindows(t *testing.T) {
	env := windowsEnv(map[string]string{"LOCALAPPDATA": `C:\Users\X\AppData\Local`})

	testcases := []struct {
		name     string
		modName  string
		expected string
	}{
		{
			Froststrap, "MyMod",
			`C:\Users\X\AppData\Local\Froststrap\Modifications\MyMod\ExtraContent\LuaPackages\Packages\_Index\BuilderIcons\BuilderIcons`,
		},
		{
			Froststrap, "",
			`C:\Users\X\AppData\Local\Froststrap\Modifications\ExtraContent\LuaPackages\Packages\_Index\BuilderIcons\BuilderIcons`,
		},
		{
			Bloxstrap, "MyMod",
			`C:\Users\X\AppData\Local\Bloxstrap\Modifications\ExtraContent\LuaPackages\Packages\_Index\BuilderIcons\BuilderIcons`,
		},
	}

	for _, tcase := range testcases {
		t.Run(tcase.name+"/"+tcase.modName, func(t *testing.T) {
			d, err := Resolve(env, tcase.name, tcase.modName)
			require.NoError(t, err)
			require.NotNil(t, d)
			assert.Equal(t, tcase.expected, d.Dir)
			assert.Equal(t, tcase.expected+`\Font`, d.FontDir)
		})
	}
}

func TestResolveWindowsWithoutLocalAppData(t *testing.T) {
	d, err := Resolve(windowsEnv(nil), Froststrap, "MyMod")
	assert.Nil(t, d)
	assert.True(t, errors.Is(err, ErrNoLocalAppData))

	d, err = Resolve(windowsEnv(map[string]string{"LOCALAPPDATA": ""}), Bloxstrap, "")
	assert.Nil(t, d)
	assert.True(t, errors.Is(err, ErrNoLocalAppData))
}

func TestResolveLinux(t *testing.T) {
	env := Env{GOOS: "linux", Home: "/home/x"}

	d, err := Resolve(env, Sober, "ignored")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t,
		"/home/x/.var/app/org.vinegarhq.Sober/data/sober/asset_overlay/ExtraContent/LuaPackages/Packages/_Index/BuilderIcons/BuilderIcons/Font",
		d.FontDir)

	d, err = Resolve(env, Bloxstrap, "")
	assert.NoError(t, err)
	assert.Nil(t, d)

	d, err = Resolve(Env{GOOS: "darwin", Home: "/Users/x"}, Sober, "")
	assert.NoError(t, err)
	assert.Nil(t, d)
}

func TestDeriveFromPath(t *testing.T) {
	base := t.TempDir()
	pkg := filepath.Join(append([]string{base}, builderIconsSegments...)...)

	testcases := []struct {
		name  string
		dir   string
		found bool
		pkg   string
	}{
		{"package dir", pkg, true, pkg},
		{"font dir", filepath.Join(pkg, "Font"), true, pkg},
		{"nested", filepath.Join(pkg, "Font", "sub"), true, pkg},
		{
			"case insensitive",
			filepath.Join(base, "extracontent", "LUAPACKAGES", "packages", "_index", "buildericons", "BuilderIcons"),
			true,
			filepath.Join(base, "extracontent", "LUAPACKAGES", "packages", "_index", "buildericons", "BuilderIcons"),
		},
		{"unrelated", filepath.Join(base, "fonts"), false, ""},
		{"partial", filepath.Join(base, "Packages", "_Index", "BuilderIcons", "BuilderIcons"), false, ""},
		{"relative", filepath.Join(builderIconsSegments...), true, filepath.Join(builderIconsSegments...)},
	}

	for _, tcase := range testcases {
		t.Run(tcase.name, func(t *testing.T) {
			d, ok := DeriveFromPath(tcase.dir)
			assert.Equal(t, tcase.found, ok)
			if !tcase.found {
				assert.Nil(t, d)
				return
			}
			require.NotNil(t, d)
			assert.Equal(t, tcase.pkg, d.Dir)
			assert.Equal(t, filepath.Join(tcase.pkg, "Font"), d.FontDir)
		})
	}
}

func TestCopyFont(t *testing.T) {
	src := filepath.Join(t.TempDir(), "BuilderIcons-Regular.otf")
	require.NoError(t, os.WriteFile(src, []byte("font data"), 0640))
	mtime := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, mtime, mtime))

	d := &Deployment{Dir: t.TempDir()}
	d.FontDir = filepath.Join(d.Dir, "Font")

	dst, err := d.CopyFont(src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(d.FontDir, "BuilderIcons-Regular.otf"), dst)

	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "font data", string(b))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(mtime))

	// Overwrites an existing copy.
	require.NoError(t, os.WriteFile(src, []byte("new"), 0640))
	_, err = d.CopyFont(src)
	require.NoError(t, err)
	b, err = os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "new", string(b))

	_, err = d.CopyFont(filepath.Join(t.TempDir(), "missing.otf"))
	assert.Error(t, err)
}

func TestCopyFontSameFile(t *testing.T) {
	d := &Deployment{Dir: t.TempDir()}
	d.FontDir = filepath.Join(d.Dir, "Font")
	require.NoError(t, os.MkdirAll(d.FontDir, 0755))
	src := filepath.Join(d.FontDir, "BuilderIcons-Regular.otf")
	require.NoError(t, os.WriteFile(src, []byte("font data"), 0644))

	_, err := d.CopyFont(src)
	assert.True(t, errors.Is(err, ErrSameFile))

	b, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, "font data", string(b))
}

func TestWriteManifest(t *testing.T) {
	d := &Deployment{Dir: filepath.Join(t.TempDir(), "a", "b")}
	d.FontDir = filepath.Join(d.Dir, "Font")

	p, err := d.WriteManifest()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(d.Dir, ManifestFileName), p)

	b, err := os.ReadFile(p)
	require.NoError(t, err)

	var m Manifest
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, BuilderIconsManifest(), m)
	assert.Equal(t, "Builder Icons", m.Name)
	assert.Equal(t, "sameFamilyOnly", m.LoadStrategy)
	require.Len(t, m.Faces, 2)
	assert.Equal(t, Face{
		Name:    "Regular",
		Weight:  400,
		Style:   "normal",
		AssetID: "rbxasset://LuaPackages/Packages/_Index/BuilderIcons/BuilderIcons/Font/BuilderIcons-Regular.otf",
	}, m.Faces[0])
	assert.Equal(t, 700, m.Faces[1].Weight)
	assert.Equal(t, "rbxasset://LuaPackages/Packages/_Index/BuilderIcons/BuilderIcons/Font/BuilderIcons-Filled.otf", m.Faces[1].AssetID)

	// Overwrites.
	require.NoError(t, os.WriteFile(p, []byte("stale"), 0644))
	_, err = d.WriteManifest()
	require.NoError(t, err)
	b2, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, b, b2)
}
