/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package bootstrapper

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/froststrap/colrfont/common"
)

// builderIconsSegments is the package index layout holding the BuilderIcons package, relative to
// the asset root of a bootstrapper.
var builderIconsSegments = []string{
	"ExtraContent",
	"LuaPackages",
	"Packages",
	"_Index",
	"BuilderIcons",
	"BuilderIcons",
}

// fontSegment is the directory below the BuilderIcons package holding the font files.
const fontSegment = "Font"

// soberAssetOverlay is the asset overlay directory of the Sober flatpak, relative to the home directory.
var soberAssetOverlay = []string{".var", "app", "org.vinegarhq.Sober", "data", "sober", "asset_overlay"}

// Deployment is a BuilderIcons package directory that fonts and the manifest are written to.
type Deployment struct {
	// Dir is the BuilderIcons package directory, holding the manifest.
	Dir string
	// FontDir is the directory the fonts are copied to.
	FontDir string
}

// Resolve returns the deployment directory of bootstrapper `name` on host `env`. `modName` selects
// a modification folder and is only used by Froststrap on Windows.
// A nil Deployment and nil error mean the bootstrapper has no known location on this host.
func Resolve(env Env, name, modName string) (*Deployment, error) {
	var root []string
	switch {
	case env.GOOS == "linux" && name == Sober:
		root = append([]string{env.Home}, soberAssetOverlay...)
	case env.GOOS == "windows":
		localAppData := env.getenv("LOCALAPPDATA")
		if localAppData == "" {
			return nil, ErrNoLocalAppData
		}
		root = []string{localAppData, name, "Modifications"}
		if strings.EqualFold(name, Froststrap) && modName != "" {
			root = append(root, modName)
		}
	default:
		common.Log.Debug("No deployment location for %q on %s", name, env.GOOS)
		return nil, nil
	}

	dir := env.join(append(root, builderIconsSegments...)...)
	return &Deployment{
		Dir:     dir,
		FontDir: env.join(dir, fontSegment),
	}, nil
}

// DeriveFromPath returns the deployment whose package directory is `dir` or its nearest ancestor
// ending in the BuilderIcons package layout, compared case-insensitively. Returns false if there
// is none.
func DeriveFromPath(dir string) (*Deployment, bool) {
	sep := string(filepath.Separator)
	parts := strings.Split(filepath.Clean(dir), sep)
	n := len(builderIconsSegments)

	for end := len(parts); end >= n; end-- {
		match := true
		for i, seg := range builderIconsSegments {
			if !strings.EqualFold(parts[end-n+i], seg) {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		pkgDir := strings.Join(parts[:end], sep)
		return &Deployment{
			Dir:     pkgDir,
			FontDir: filepath.Join(pkgDir, fontSegment),
		}, true
	}
	return nil, false
}

// CopyFont copies font file `src` into the font directory, creating it if needed. The copy keeps
// the mode and modification time of `src`. Returns the path of the copy, or ErrSameFile if `src`
// already is that file.
func (d *Deployment) CopyFont(src string) (string, error) {
	err := os.MkdirAll(d.FontDir, 0755)
	if err != nil {
		return "", err
	}
	dst := filepath.Join(d.FontDir, filepath.Base(src))

	in, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return "", err
	}
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(info, dstInfo) {
		return "", fmt.Errorf("%w: %s", ErrSameFile, src)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return "", err
	}
	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return "", fmt.Errorf("copying %s: %w", src, err)
	}
	if err = out.Close(); err != nil {
		return "", err
	}

	if err = os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		common.Log.Debug("Keeping times of %s: %v", dst, err)
	}
	return dst, nil
}
