/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package bootstrapper knows where the supported bootstrappers read modified BuilderIcons
// assets from, and deploys fonts and the BuilderIcons manifest there.
package bootstrapper

import (
	"errors"
	"fmt"
	"strings"
)

// Canonical bootstrapper names.
const (
	Bloxstrap  = "Bloxstrap"
	Fishstrap  = "Fishstrap"
	Froststrap = "Froststrap"
	Luczystrap = "Luczystrap"
	Lunastrap  = "Lunastrap"
	Sober      = "Sober"
)

// Names lists the supported bootstrappers.
var Names = []string{Bloxstrap, Fishstrap, Froststrap, Luczystrap, Lunastrap, Sober}

var (
	// ErrUnknownBootstrapper is returned for names that match none of Names.
	ErrUnknownBootstrapper = errors.New("invalid bootstrapper")
	// ErrNoLocalAppData is returned on Windows when LOCALAPPDATA is not set.
	ErrNoLocalAppData = errors.New("LOCALAPPDATA is not set")
	// ErrSameFile is returned by Deployment.CopyFont when source and destination are one file.
	ErrSameFile = errors.New("source and destination are the same file")
)

// Canonicalize returns the canonical spelling of bootstrapper `name`, matched case-insensitively.
// An empty name yields "" and no error.
func Canonicalize(name string) (string, error) {
	if name == "" {
		return "", nil
	}
	for _, b := range Names {
		if strings.EqualFold(b, name) {
			return b, nil
		}
	}
	return "", fmt.Errorf("%w '%s' (valid: %s)", ErrUnknownBootstrapper, name, strings.Join(Names, ", "))
}

// Default returns the bootstrapper used when none is given on host OS `goos`.
func Default(goos string) string {
	if goos == "linux" {
		return Sober
	}
	return ""
}
