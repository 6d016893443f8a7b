package model

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestFullMipLevels(t *testing.T) {
	tests := []struct {
		w, h, want uint32
	}{
		{1, 1, 1},
		{2, 2, 2},
		{4, 4, 3},
		{256, 256, 9},
		{256, 1, 9},
		{8, 2, 4},
		{100, 100, 7},
	}
	for _, tt := range tests {
		if got := FullMipLevels(tt.w, tt.h); got != tt.want {
			t.Errorf("FullMipLevels(%d, %d) = %d, want %d", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestTextureDataByteLength(t *testing.T) {
	d := &TextureData{
		Width:  4,
		Height: 4,
		Format: gputypes.TextureFormatRGBA8Unorm,
		Levels: [][]byte{
			make([]byte, 64),
			make([]byte, 16),
			make([]byte, 4),
		},
	}
	if got := d.ByteLength(); got != 84 {
		t.Errorf("ByteLength() = %d, want 84", got)
	}
	if got := d.MipLevelCount(); got != 3 {
		t.Errorf("MipLevelCount() = %d, want 3", got)
	}
}

func TestTextureDataFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 60), B: 128, A: 255})
		}
	}

	data, err := TextureDataFromImage(img, false)
	if err != nil {
		t.Fatalf("TextureDataFromImage failed: %v", err)
	}
	if data.Width != 4 || data.Height != 4 {
		t.Errorf("dimensions = %dx%d, want 4x4", data.Width, data.Height)
	}
	if data.Format != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format = %v, want RGBA8Unorm", data.Format)
	}
	if data.MipLevelCount() != 1 {
		t.Errorf("MipLevelCount() = %d, want 1", data.MipLevelCount())
	}
	if len(data.Levels[0]) != 4*4*4 {
		t.Errorf("level 0 length = %d, want %d", len(data.Levels[0]), 4*4*4)
	}
}

func TestTextureDataFromImageWithMips(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))

	data, err := TextureDataFromImage(img, true)
	if err != nil {
		t.Fatalf("TextureDataFromImage failed: %v", err)
	}

	// 8x4 -> 4x2 -> 2x1 -> 1x1.
	if got := data.MipLevelCount(); got != 4 {
		t.Fatalf("MipLevelCount() = %d, want 4", got)
	}
	wantSizes := []int{8 * 4 * 4, 4 * 2 * 4, 2 * 1 * 4, 1 * 1 * 4}
	for i, want := range wantSizes {
		if len(data.Levels[i]) != want {
			t.Errorf("level %d length = %d, want %d", i, len(data.Levels[i]), want)
		}
	}

	if got := data.MipLevelCount(); got != FullMipLevels(8, 4) {
		t.Errorf("MipLevelCount() = %d, want FullMipLevels = %d", got, FullMipLevels(8, 4))
	}
}

func TestTextureDataFromImageNonRGBA(t *testing.T) {
	// Non-RGBA sources are converted.
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.SetGray(0, 0, color.Gray{Y: 200})

	data, err := TextureDataFromImage(img, false)
	if err != nil {
		t.Fatalf("TextureDataFromImage failed: %v", err)
	}
	if len(data.Levels[0]) != 2*2*4 {
		t.Errorf("level 0 length = %d, want %d", len(data.Levels[0]), 2*2*4)
	}
	// Gray 200 expands to R=G=B=200, A=255.
	px := data.Levels[0]
	if px[0] != 200 || px[1] != 200 || px[2] != 200 || px[3] != 255 {
		t.Errorf("converted pixel = %v, want [200 200 200 255]", px[:4])
	}
}

func TestTextureDataFromImageOffsetBounds(t *testing.T) {
	// Images whose bounds do not start at the origin are handled.
	img := image.NewRGBA(image.Rect(10, 20, 14, 24))

	data, err := TextureDataFromImage(img, false)
	if err != nil {
		t.Fatalf("TextureDataFromImage failed: %v", err)
	}
	if data.Width != 4 || data.Height != 4 {
		t.Errorf("dimensions = %dx%d, want 4x4", data.Width, data.Height)
	}
}

func TestTextureDataFromImageEmpty(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if _, err := TextureDataFromImage(img, false); err == nil {
		t.Error("expected error for empty image")
	}
}
