/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"fmt"
)

// buildGlyphOrder returns the names of the glyphs of `f` by glyph index. Names come from the
// post table where present; missing names become "glyphNNNNN" and glyph 0 is ".notdef".
// Repeated names get a "#n" suffix so that every name is unique.
func (f *font) buildGlyphOrder() []GlyphName {
	if f.maxp == nil {
		return nil
	}
	numGlyphs := int(f.maxp.numGlyphs)

	var postNames []GlyphName
	if f.post != nil {
		postNames = f.post.glyphNames
	}

	order := make([]GlyphName, numGlyphs)
	seen := make(map[GlyphName]int, numGlyphs)
	for gid := 0; gid < numGlyphs; gid++ {
		var name GlyphName
		if gid < len(postNames) {
			name = postNames[gid]
		}
		if name == "" {
			if gid == 0 {
				name = notdefGlyph
			} else {
				name = GlyphName(fmt.Sprintf("glyph%05d", gid))
			}
		}

		if n, dup := seen[name]; dup {
			unique := GlyphName(fmt.Sprintf("%s#%d", name, n))
			for {
				if _, taken := seen[unique]; !taken {
					break
				}
				n++
				unique = GlyphName(fmt.Sprintf("%s#%d", name, n))
			}
			seen[name] = n + 1
			name = unique
		}
		seen[name] = 1
		order[gid] = name
	}

	return order
}
