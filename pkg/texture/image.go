package texture

import "github.com/colinmarsh/nextweek-tracer/pkg/core"

// ImageData is a decoded RGB raster, byte-indexed per channel, independent
// of the image codec used to produce it.
type ImageData struct {
	Width, Height int
	// Pixels is row-major, top-to-bottom, 3 bytes (R,G,B) per pixel.
	Pixels []byte
}

func (d *ImageData) pixel(x, y int) (byte, byte, byte) {
	offset := (y*d.Width + x) * 3
	return d.Pixels[offset], d.Pixels[offset+1], d.Pixels[offset+2]
}

// Image samples a decoded raster as a texture. Degenerate (zero-height)
// images fall back to a solid cyan so the miss is visible rather than
// crashing the renderer.
type Image struct {
	data *ImageData
}

// NewImage wraps decoded image data as a Texture.
func NewImage(data *ImageData) *Image {
	return &Image{data: data}
}

var unitInterval = core.NewInterval(0, 1)

func (img *Image) Value(u, v float64, p core.Vec3) core.Color {
	if img.data == nil || img.data.Height <= 0 {
		return core.NewVec3(0, 1, 1)
	}

	u = unitInterval.Clamp(u)
	v = 1.0 - unitInterval.Clamp(v)

	i := int(u * float64(img.data.Width))
	j := int(v * float64(img.data.Height))
	if i >= img.data.Width {
		i = img.data.Width - 1
	}
	if j >= img.data.Height {
		j = img.data.Height - 1
	}

	r, g, b := img.data.pixel(i, j)
	const colorScale = 1.0 / 256.0
	return core.NewVec3(float64(r)*colorScale, float64(g)*colorScale, float64(b)*colorScale)
}
