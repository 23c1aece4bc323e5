// Package raster draws a canvas tree into an *image.RGBA on the CPU.
//
// Shapes are converted to polygons, clipped to the destination bounds and
// filled with golang.org/x/image/vector; outlines are filled as thin quads.
// Text is drawn with an x/image font.Face and clipped to the item's clamp
// width. Hidden items and their subtrees are skipped.
//
//	r, err := raster.New()
//	if err != nil {
//		return err
//	}
//	img := image.NewRGBA(image.Rect(0, 0, 800, 120))
//	r.Render(img, root)
package raster
