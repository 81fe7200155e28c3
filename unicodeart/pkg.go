// The unicodeart package implements the logic for converting an image into
// Unicode art: a grid of glyphs where each glyph approximates the brightness
// of the corresponding pixel in the resampled source.
// By default, the package supports .png, .jpg, .jpeg, .gif, .webp, .bmp and
// .tiff sources, from the local filesystem or an http(s) URL.
//
// Start by calling New() or NewDefault(). Pass the options into the
// constructors (see options.go), then call Convert(), ConvertSource(),
// ConvertReader() or ConvertBytes().
// While all fields are public, treat the converter struct as immutable
// (and thread unsafe).
package unicodeart
