package model

import (
	"image"
	"image/draw"

	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"
)

// TextureData holds CPU-side pixel data for a texture upload: one tightly
// packed byte slice per mip level, largest level first.
type TextureData struct {
	// Width and Height are the level 0 dimensions in pixels.
	Width  uint32
	Height uint32

	// Format is the pixel format of every level.
	Format gputypes.TextureFormat

	// Levels holds the pixel bytes per mip level.
	Levels [][]byte
}

// ByteLength returns the total byte size across all levels.
func (d *TextureData) ByteLength() int64 {
	var total int64
	for _, l := range d.Levels {
		total += int64(len(l))
	}
	return total
}

// MipLevelCount returns the number of levels present.
func (d *TextureData) MipLevelCount() uint32 { return uint32(len(d.Levels)) }

// FullMipLevels returns the number of mip levels in a complete chain for
// the given base dimensions, down to 1x1.
func FullMipLevels(width, height uint32) uint32 {
	levels := uint32(1)
	for width > 1 || height > 1 {
		width = mipDimension(width, 1)
		height = mipDimension(height, 1)
		levels++
	}
	return levels
}

// TextureDataFromImage converts img to RGBA8 upload data. When
// generateMips is true a complete mip chain down to 1x1 is produced,
// each level downscaled from the previous one with a Catmull-Rom kernel.
func TextureDataFromImage(img image.Image, generateMips bool) (*TextureData, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidTextureSize
	}

	base := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(base, base.Bounds(), img, bounds.Min, draw.Src)

	data := &TextureData{
		Width:  uint32(w),
		Height: uint32(h),
		Format: gputypes.TextureFormatRGBA8Unorm,
		Levels: [][]byte{rgbaPixels(base)},
	}
	if !generateMips {
		return data, nil
	}

	prev := base
	for lw, lh := w, h; lw > 1 || lh > 1; {
		lw = max(lw/2, 1)
		lh = max(lh/2, 1)
		dst := image.NewRGBA(image.Rect(0, 0, lw, lh))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), prev, prev.Bounds(), xdraw.Src, nil)
		data.Levels = append(data.Levels, rgbaPixels(dst))
		prev = dst
	}
	return data, nil
}

// rgbaPixels returns the tightly packed pixel bytes of an RGBA image,
// copying row by row when the stride carries padding.
func rgbaPixels(img *image.RGBA) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if img.Stride == w*4 {
		return img.Pix
	}
	out := make([]byte, 0, w*h*4)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		out = append(out, row...)
	}
	return out
}
