/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package recolor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/froststrap/colrfont/bootstrapper"
	"github.com/froststrap/colrfont/common"
)

// ErrNotDirectory is returned by ProcessDirectory when the root is not an existing directory.
var ErrNotDirectory = errors.New("invalid directory")

// SupportedExtensions are the (lowercase) extensions of the font files that are processed.
var SupportedExtensions = []string{".ttf", ".otf"}

// Options configure a batch run.
type Options struct {
	Color Color
	// Bootstrapper is the canonical bootstrapper name to deploy to. Empty disables deployment,
	// the manifest is then written only if the root lies inside a BuilderIcons package.
	Bootstrapper string
	// ModName is the Froststrap modification folder name.
	ModName string
	// Env is the host used to locate the bootstrapper directories.
	Env bootstrapper.Env
}

// Summary reports the outcome of a batch run.
type Summary struct {
	// Processed counts the font files found, whether or not their conversion succeeded.
	Processed int
	// Failed counts the font files whose conversion failed.
	Failed int
	// Deployed counts the converted fonts copied into the deployment directory.
	Deployed int
	// Manifest is the path of the written manifest, or "".
	Manifest string
}

// IsFontFile returns true if `name` has one of the SupportedExtensions, in any case.
func IsFontFile(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range SupportedExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// ProcessDirectory recolors every font file below `root` and deploys the results according to
// `opts`. Failures of single files or deployment steps are logged and do not stop the batch; the
// only error returned is ErrNotDirectory.
func ProcessDirectory(root string, opts Options) (Summary, error) {
	var sum Summary

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return sum, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	var deployment *bootstrapper.Deployment
	if opts.Bootstrapper != "" {
		deployment, err = bootstrapper.Resolve(opts.Env, opts.Bootstrapper, opts.ModName)
		if err != nil {
			common.Log.Warning("Not deploying to %s: %v", opts.Bootstrapper, err)
			deployment = nil
		}
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			common.Log.Error("Error reading %s: %v", path, err)
			if d != nil && d.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !IsFontFile(d.Name()) {
			return nil
		}

		sum.Processed++
		out, err := RecolorFile(path, opts.Color)
		if err != nil {
			sum.Failed++
			common.Log.Error("Error processing %s: %v", path, err)
			return nil
		}
		common.Log.Info("Processed: %s", out)

		if deployment != nil {
			dst, err := deployment.CopyFont(out)
			if errors.Is(err, bootstrapper.ErrSameFile) {
				common.Log.Debug("%s is already in %s", out, deployment.FontDir)
				return nil
			}
			if err != nil {
				common.Log.Error("Error copying %s to %s: %v", out, deployment.FontDir, err)
				return nil
			}
			sum.Deployed++
			common.Log.Debug("Copied %s", dst)
		}
		return nil
	})
	if err != nil {
		common.Log.Error("Error walking %s: %v", root, err)
	}

	if opts.Bootstrapper == "" {
		derived, ok := bootstrapper.DeriveFromPath(root)
		if !ok {
			common.Log.Debug("%s is not inside a BuilderIcons package - no manifest written", root)
			return sum, nil
		}
		deployment = derived
	}
	if deployment == nil {
		return sum, nil
	}

	p, err := deployment.WriteManifest()
	if err != nil {
		common.Log.Error("Error writing manifest to %s: %v", deployment.Dir, err)
		return sum, nil
	}
	sum.Manifest = p
	common.Log.Info("Wrote %s", p)
	return sum, nil
}
