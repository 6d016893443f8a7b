package model

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/model/modelcore"
)

// Buffer is a GPU geometry buffer record: an opaque identity plus the
// authoritative byte size fixed at creation time. Buffers are created
// through [Device.CreateBuffer] and referenced, not owned, by the
// primitives and statistics that register them.
type Buffer struct {
	// id is the device-assigned identity. Stable for the buffer's lifetime.
	id modelcore.BufferID

	// sizeInBytes is the GPU allocation size.
	sizeInBytes int64

	// usage records the buffer usage flags from creation.
	usage gputypes.BufferUsage

	// label is an optional debug name.
	label string

	// cpuCopy is the retained CPU shadow of the uploaded data, or nil.
	cpuCopy []byte
}

// ID returns the buffer's opaque identity.
func (b *Buffer) ID() modelcore.BufferID { return b.id }

// SizeInBytes returns the buffer's GPU byte size.
func (b *Buffer) SizeInBytes() int64 { return b.sizeInBytes }

// Usage returns the buffer usage flags.
func (b *Buffer) Usage() gputypes.BufferUsage { return b.usage }

// Label returns the buffer's debug label.
func (b *Buffer) Label() string { return b.label }

// HasCPUCopy reports whether the buffer retains a CPU shadow copy of its
// data. Statistics model a shadow copy as doubling the buffer's footprint.
func (b *Buffer) HasCPUCopy() bool { return b.cpuCopy != nil }

// CPUCopy returns the retained CPU shadow copy, or nil. The slice is the
// buffer's own retained storage; callers must not modify it.
func (b *Buffer) CPUCopy() []byte { return b.cpuCopy }

// TextureDescriptor describes a texture to create.
type TextureDescriptor struct {
	// Label is an optional debug name.
	Label string

	// Width is the texture width in pixels.
	Width uint32

	// Height is the texture height in pixels.
	Height uint32

	// Depth is the texture depth for 3D textures, or array layer count.
	// Zero resolves to 1 at creation.
	Depth uint32

	// MipLevelCount is the number of mip levels. Zero resolves to 1.
	MipLevelCount uint32

	// Format is the texture pixel format.
	Format gputypes.TextureFormat

	// Usage specifies how the texture will be used.
	Usage gputypes.TextureUsage
}

// Texture is a GPU texture record with a byte size fixed at creation
// time. Material and feature ID textures are represented this way; batch
// textures, whose size changes after creation, use [BatchTexture].
type Texture struct {
	// id is the device-assigned identity. Stable for the texture's lifetime.
	id modelcore.TextureID

	// desc holds the resolved creation descriptor.
	desc TextureDescriptor

	// sizeInBytes is the summed byte size of all mip levels.
	sizeInBytes int64
}

// ID returns the texture's opaque identity.
func (t *Texture) ID() modelcore.TextureID { return t.id }

// SizeInBytes returns the texture's total GPU byte size across all mip
// levels and layers.
func (t *Texture) SizeInBytes() int64 { return t.sizeInBytes }

// Label returns the texture's debug label.
func (t *Texture) Label() string { return t.desc.Label }

// Width returns the texture width in pixels.
func (t *Texture) Width() uint32 { return t.desc.Width }

// Height returns the texture height in pixels.
func (t *Texture) Height() uint32 { return t.desc.Height }

// Format returns the texture pixel format.
func (t *Texture) Format() gputypes.TextureFormat { return t.desc.Format }

// Descriptor returns a copy of the resolved creation descriptor.
func (t *Texture) Descriptor() TextureDescriptor { return t.desc }

// textureByteLength computes the total byte size of a texture described
// by desc: the sum over all mip levels of width x height x layers x
// bytes-per-pixel, with each mip dimension halved and clamped to 1.
// The descriptor must already be resolved (non-zero depth and mip count).
func textureByteLength(desc *TextureDescriptor) int64 {
	bpp := int64(modelcore.BytesPerPixel(desc.Format))

	var total int64
	for level := uint32(0); level < desc.MipLevelCount; level++ {
		w := int64(mipDimension(desc.Width, level))
		h := int64(mipDimension(desc.Height, level))
		total += w * h * int64(desc.Depth) * bpp
	}
	return total
}

// mipDimension returns a base dimension shifted down to the given mip
// level, clamped to 1.
func mipDimension(base, level uint32) uint32 {
	d := base >> level
	if d == 0 {
		return 1
	}
	return d
}
