package testutil

import "image/color"

// imageData describes a PNG fixture.
type imageData struct {
	width  int
	height int
	gray   bool
	fill   color.Color
}

// ImageOption configures an image fixture.
type ImageOption func(*imageData)

func defaultImage(w, h int) imageData {
	return imageData{width: w, height: h, gray: true, fill: color.White}
}

// RGBA encodes the image as RGBA with its first pixel set to c.
func RGBA(c color.Color) ImageOption {
	return func(d *imageData) {
		d.gray = false
		d.fill = c
	}
}
