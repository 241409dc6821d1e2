/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package recolor turns fonts into single-color COLR/CPAL fonts: every glyph except .notdef
// gets one color layer filled with the only entry of a one-color palette.
package recolor
