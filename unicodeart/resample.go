package unicodeart

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

/*
grayscaleResize converts src to grayscale and resamples it to w by h pixels.

The result is a non-premultiplied NRGBA raster with R = G = B = luminance and
the source alpha carried through, which is exactly the 4-channel layout the
pixel sampler expects. Luminance uses the Rec. 709 weights.
*/
func (c *Converter) grayscaleResize(src image.Image, w, h int) *image.NRGBA {
	b := src.Bounds()

	gray := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			lum := uint8((uint32(px.R)*2126 + uint32(px.G)*7152 + uint32(px.B)*722) / 10000)
			gray.SetNRGBA(x, y, color.NRGBA{R: lum, G: lum, B: lum, A: px.A})
		}
	}

	scaler := c.Scaler
	if scaler == nil {
		scaler = draw.CatmullRom
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	scaler.Scale(dst, dst.Bounds(), gray, gray.Bounds(), draw.Src, nil)

	return dst
}
