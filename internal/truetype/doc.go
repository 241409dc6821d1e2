/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package truetype supports loading and writing sfnt (TrueType and OpenType) fonts. Tables that
// are not needed are carried through verbatim; the color tables (COLR v0, CPAL v0) can be
// inspected and replaced before the font is written back out.
package truetype
