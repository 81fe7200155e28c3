package unicodeart

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"golang.org/x/image/draw"
)

const (
	// DefaultCharset orders glyphs from darkest/emptiest to brightest/densest.
	DefaultCharset = " ░▒▓█"

	// DefaultSymbolAspectRatio is the height/width visual ratio of one
	// terminal glyph. Terminal cells are taller than wide, so the output
	// grid needs roughly half the rows of a square raster.
	DefaultSymbolAspectRatio = 0.5

	// emptyCell fills placeholder grids before any sampling happens.
	emptyCell = '.'

	bytesPerCellReserve = 3 // the default charset's block glyphs are 3 bytes in UTF-8

	downloadTimeout = 30 * time.Second
	maxImageBytes   = 32 << 20
)

/*
Converter holds the parameters of one image-to-art conversion. Construct it
with New() or NewDefault() and do not mutate it while a conversion is running.
*/
type Converter struct {
	// Width is the desired output width in symbols. Zero means the source
	// image's native pixel width.
	Width int

	// SymbolAspectRatio is the height/width visual ratio of one terminal
	// glyph. Must be positive; usually < 1.
	SymbolAspectRatio float64

	// Charset maps brightness to glyphs, darkest first. Indexed by
	// codepoint, so multi-byte glyphs are fine.
	Charset []rune

	// Invert reverses the charset, for art shown on light backgrounds.
	Invert bool

	// Scaler resamples the source image to the planned grid dimensions.
	Scaler draw.Scaler

	// Client performs the HTTP fetch for URL sources.
	Client *http.Client
}

/*
NewDefault initializes a converter with default parameters.

  - Width: 0 (the source image's native width)
  - SymbolAspectRatio: 0.5
  - Charset: " ░▒▓█"
  - Invert: false
  - Scaler: draw.CatmullRom
  - Client: an http.Client with a 30 second timeout
*/
func NewDefault() *Converter {
	return &Converter{
		Width:             0,
		SymbolAspectRatio: DefaultSymbolAspectRatio,
		Charset:           []rune(DefaultCharset),
		Scaler:            draw.CatmullRom,
		Client:            &http.Client{Timeout: downloadTimeout},
	}
}

// New initializes a converter with default parameters, then applies options
func New(opts ...Option) *Converter {
	c := NewDefault()

	for _, o := range opts {
		o(c)
	}

	return c
}

/*
Grid is the character grid produced by one conversion. Cells is row-major:
Cells[row][col]. Every row has length Width and len(Cells) == Height.
*/
type Grid struct {
	Width  int
	Height int
	Cells  [][]rune
}

// NewEmptyGrid returns a fully populated placeholder grid with every cell set
// to '.'.
func NewEmptyGrid(width, height int) *Grid {
	cells := make([][]rune, height)
	for y := range cells {
		row := make([]rune, width)
		for x := range row {
			row[x] = emptyCell
		}
		cells[y] = row
	}

	return &Grid{
		Width:  width,
		Height: height,
		Cells:  cells,
	}
}

// GridFromImage samples every pixel of img into a new grid. The image must
// already be grayscale and resized to the intended grid dimensions.
func GridFromImage(img *image.NRGBA, charset []rune) *Grid {
	b := img.Bounds()
	g := NewEmptyGrid(b.Dx(), b.Dy())
	g.copyFrom(img, charset)
	return g
}

// copyFrom requires img to have exactly the grid's dimensions. A mismatch is
// a programming error, not user input, so it panics.
func (g *Grid) copyFrom(img *image.NRGBA, charset []rune) {
	b := img.Bounds()
	if b.Dx() != g.Width || b.Dy() != g.Height {
		msg := fmt.Sprintf("grid is %dx%d but image is %dx%d", g.Width, g.Height, b.Dx(), b.Dy())
		panic(msg)
	}

	numChars := len(charset)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			px := img.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			g.Cells[y][x] = charset[brightnessToIndex(pixelBrightness(px.R, px.A), numChars)]
		}
	}
}

// String serializes the grid: each row's glyphs concatenated, one row per
// line, each line newline-terminated. An empty grid serializes to "".
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width*bytesPerCellReserve + 1) * g.Height)

	for _, row := range g.Cells {
		for _, c := range row {
			sb.WriteRune(c)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// pixelBrightness scores one grayscale pixel in [0, 1]. Alpha scales the
// score, so a fully transparent pixel is 0 no matter its luminance.
func pixelBrightness(lum, alpha uint8) float64 {
	return (float64(lum) / 255) * (float64(alpha) / 255)
}

// brightnessToIndex maps a brightness to a charset index. The -0.5 offset
// centers each glyph's bucket at k/numChars boundaries; rounding is half
// away from zero. The result is always in [0, numChars-1], even for
// brightness outside [0, 1].
func brightnessToIndex(brightness float64, numChars int) int {
	idx := int(math.Round(brightness*float64(numChars) - 0.5))
	if idx < 0 {
		return 0
	}
	if idx >= numChars {
		return numChars - 1
	}
	return idx
}

/*
Convert takes a decoded image and generates the Unicode art string for it.

The target grid size is planned from the source dimensions, the configured
Width and the SymbolAspectRatio (see PlanDimensions); the source is then
grayscale-converted and resampled to that size before per-cell sampling.
A degenerate plan (zero width or height) yields an empty string.
*/
func (c *Converter) Convert(img image.Image) string {
	b := img.Bounds()
	w, h := PlanDimensions(b.Dx(), b.Dy(), c.Width, c.SymbolAspectRatio)
	if w == 0 || h == 0 {
		return ""
	}

	resampled := c.grayscaleResize(img, w, h)

	return GridFromImage(resampled, c.charset()).String()
}

/*
ConvertReader takes an io.Reader that can read the bytes of an image and
converts the decoded result. Supported formats are png, jpeg, gif, webp, bmp
and tiff; importing additional decoder packages extends the set, since the
decode goes through image.Decode().
*/
func (c *Converter) ConvertReader(r io.Reader) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return "", err
	}

	return c.Convert(img), nil
}

// ConvertBytes takes a byte slice representing an image. It calls
// ConvertReader() under the hood.
func (c *Converter) ConvertBytes(b []byte) (string, error) {
	return c.ConvertReader(bytes.NewReader(b))
}

// charset returns the effective glyph ramp: the configured one (or the
// default when unset), reversed when Invert is on.
func (c *Converter) charset() []rune {
	cs := c.Charset
	if len(cs) == 0 {
		cs = []rune(DefaultCharset)
	}
	if !c.Invert {
		return cs
	}

	reversed := make([]rune, len(cs))
	for i, r := range cs {
		reversed[len(cs)-1-i] = r
	}
	return reversed
}
