package unicodeart

/*
PlanDimensions computes the raster size the source image must be resampled to
so that the rendered grid keeps the source's visual aspect ratio when drawn
with non-square terminal glyphs.

width is the desired output width in symbols; zero falls back to origW. The
height is width * symbolAspectRatio / (origW/origH), truncated toward zero
rather than rounded. A zero height (extreme aspect ratio or tiny width) is a
valid degenerate result; callers render it as empty art.
*/
func PlanDimensions(origW, origH, width int, symbolAspectRatio float64) (w, h int) {
	if origW <= 0 || origH <= 0 {
		return 0, 0
	}

	w = width
	if w <= 0 {
		w = origW
	}

	aspectRatio := float64(origW) / float64(origH)
	h = int(float64(w) * symbolAspectRatio / aspectRatio)
	if h < 0 {
		h = 0
	}

	return w, h
}
