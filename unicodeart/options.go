package unicodeart

import (
	"net/http"

	"golang.org/x/image/draw"
)

type Option func(*Converter)

// WithWidth specifies the desired output width in symbols. Zero keeps the
// source image's native pixel width.
func WithWidth(width int) Option {
	return func(c *Converter) {
		c.Width = width
	}
}

/*
WithSymbolAspectRatio specifies the height/width visual ratio of one terminal
glyph. Use the ratio of the terminal font you are targeting; most terminal
cells are roughly twice as tall as wide, which is the default of 0.5.
*/
func WithSymbolAspectRatio(ratio float64) Option {
	return func(c *Converter) {
		c.SymbolAspectRatio = ratio
	}
}

/*
WithCharset specifies the glyph ramp, ordered darkest/emptiest first. The
string is decoded to codepoints once, so multi-byte glyphs like the default
block characters work.
*/
func WithCharset(charset string) Option {
	return func(c *Converter) {
		c.Charset = []rune(charset)
	}
}

// WithInvert reverses the charset order. Useful when the art is shown on a
// light background.
func WithInvert(invert bool) Option {
	return func(c *Converter) {
		c.Invert = invert
	}
}

// WithScaler specifies the resampling kernel used to resize the source to
// the planned grid dimensions.
func WithScaler(scaler draw.Scaler) Option {
	return func(c *Converter) {
		c.Scaler = scaler
	}
}

// WithHTTPClient specifies the client used to fetch URL sources.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Converter) {
		c.Client = client
	}
}
