/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package recolor

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/sfnt"

	"github.com/froststrap/colrfont/common"
	"github.com/froststrap/colrfont/internal/truetype"
)

// OutputExt is the extension of converted fonts.
const OutputExt = ".otf"

// notdef is the reserved glyph that is never colored.
const notdef truetype.GlyphName = ".notdef"

// Recolor replaces the color tables of `fnt`: any COLR table is dropped, CPAL gets a single
// palette with `c` as its only entry, and COLR maps every glyph except .notdef to one layer
// of itself in palette entry 0.
func Recolor(fnt *truetype.Font, c Color) error {
	fnt.RemoveTable("COLR")

	err := fnt.SetPalettes([][]truetype.ColorRecord{{c.Record()}})
	if err != nil {
		return err
	}

	layers := make(map[truetype.GlyphName][]truetype.LayerRecord, fnt.NumGlyphs())
	for _, glyph := range fnt.GlyphOrder() {
		if glyph == notdef {
			continue
		}
		layers[glyph] = []truetype.LayerRecord{{Name: glyph, PaletteIndex: 0}}
	}
	return fnt.SetColorLayers(layers)
}

// OutputPath returns the path a converted `path` is written to: the same path with the extension
// replaced by .otf, unless it already is .otf in any case.
func OutputPath(path string) string {
	ext := filepath.Ext(path)
	if strings.EqualFold(ext, OutputExt) {
		return path
	}
	return strings.TrimSuffix(path, ext) + OutputExt
}

// RecolorFile recolors the font at `path` with `c` and writes it to OutputPath(path), replacing
// any file there. Returns the output path.
func RecolorFile(path string, c Color) (string, error) {
	fnt, err := truetype.ParseFile(path)
	if err != nil {
		return "", err
	}
	common.Log.Debug("%s: family %q, %d glyphs", path, fnt.FamilyName(), fnt.NumGlyphs())

	err = Recolor(fnt, c)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = fnt.Write(&buf)
	if err != nil {
		return "", err
	}
	verifyOutput(path, buf.Bytes(), fnt.NumGlyphs())

	out := OutputPath(path)
	err = os.WriteFile(out, buf.Bytes(), 0644)
	if err != nil {
		return "", err
	}
	return out, nil
}

// verifyOutput checks that the converted font loads with an independent sfnt reader.
// Problems are only logged as the reader does not support every valid font.
func verifyOutput(path string, data []byte, numGlyphs int) {
	f, err := sfnt.Parse(data)
	if err != nil {
		common.Log.Warning("%s: converted font does not load with x/image/font/sfnt: %v", path, err)
		return
	}
	if f.NumGlyphs() != numGlyphs {
		common.Log.Warning("%s: converted font has %d glyphs, expected %d", path, f.NumGlyphs(), numGlyphs)
	}
}
