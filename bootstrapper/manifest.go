/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package bootstrapper

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestFileName is the name of the BuilderIcons font family manifest.
const ManifestFileName = "BuilderIcons.json"

// Manifest describes the font faces of the BuilderIcons family.
type Manifest struct {
	Name         string `json:"name"`
	LoadStrategy string `json:"loadStrategy"`
	Faces        []Face `json:"faces"`
}

// Face is a single font face of a Manifest.
type Face struct {
	Name    string `json:"name"`
	Weight  int    `json:"weight"`
	Style   string `json:"style"`
	AssetID string `json:"assetId"`
}

const assetPrefix = "rbxasset://LuaPackages/Packages/_Index/BuilderIcons/BuilderIcons/Font/"

// BuilderIconsManifest returns the manifest for the recolored BuilderIcons fonts. It does not
// depend on the fonts or the color.
func BuilderIconsManifest() Manifest {
	return Manifest{
		Name:         "Builder Icons",
		LoadStrategy: "sameFamilyOnly",
		Faces: []Face{
			{Name: "Regular", Weight: 400, Style: "normal", AssetID: assetPrefix + "BuilderIcons-Regular.otf"},
			{Name: "Bold", Weight: 700, Style: "normal", AssetID: assetPrefix + "BuilderIcons-Filled.otf"},
		},
	}
}

// WriteManifest (over)writes the BuilderIcons manifest into the package directory, creating it if
// needed. Returns the path of the manifest.
func (d *Deployment) WriteManifest() (string, error) {
	b, err := json.MarshalIndent(BuilderIconsManifest(), "", "  ")
	if err != nil {
		return "", err
	}
	b = append(b, '\n')

	err = os.MkdirAll(d.Dir, 0755)
	if err != nil {
		return "", err
	}
	p := filepath.Join(d.Dir, ManifestFileName)
	return p, os.WriteFile(p, b, 0644)
}
