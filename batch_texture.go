package model

import (
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/model/modelcore"
)

// BatchTexture is the per-model overlay texture used for picking and
// styling. One texel holds the state of one feature; shaders look features
// up by feature ID to apply show/hide, highlight color, and pick output.
//
// Unlike material textures, a batch texture exists before its feature data
// has finished loading: it is created unsized when the model's pipeline is
// first assembled and allocated later, once the asynchronous feature load
// completes. Its [BatchTexture.ByteLength] therefore changes over its
// lifetime, which is why statistics sample it lazily instead of recording
// a size at registration.
type BatchTexture struct {
	// id is the device-reserved identity, assigned before any GPU
	// allocation exists so the record can be registered immediately.
	id modelcore.TextureID

	// featureCount is the number of features the texture must cover.
	featureCount int

	// label is an optional debug name.
	label string

	// texture is the backing GPU texture, nil until allocation.
	texture *Texture
}

// ID returns the batch texture's opaque identity. Valid from creation,
// before any GPU allocation exists.
func (t *BatchTexture) ID() modelcore.TextureID { return t.id }

// FeatureCount returns the number of features the texture covers.
func (t *BatchTexture) FeatureCount() int { return t.featureCount }

// Label returns the batch texture's debug label.
func (t *BatchTexture) Label() string { return t.label }

// Allocated reports whether the backing GPU texture exists yet.
func (t *BatchTexture) Allocated() bool { return t.texture != nil }

// ByteLength returns the current byte size of the backing texture, or
// zero while the feature data is still loading. The value grows when
// [BatchTexture.Allocate] completes; readers holding a reference observe
// the new size on their next read.
func (t *BatchTexture) ByteLength() int64 {
	if t.texture == nil {
		return 0
	}
	return t.texture.SizeInBytes()
}

// Allocate creates the backing GPU texture once the feature data is
// available. Dimensions are the smallest square RGBA8 texture with at
// least one texel per feature. Returns ErrAlreadyAllocated if a backing
// texture already exists.
func (t *BatchTexture) Allocate(device *Device) error {
	if device == nil {
		return ErrNilDevice
	}
	if t.texture != nil {
		return ErrAlreadyAllocated
	}

	side := batchTextureDimension(t.featureCount)
	tex, err := device.CreateTexture(&TextureDescriptor{
		Label:  t.label,
		Width:  side,
		Height: side,
		Format: gputypes.TextureFormatRGBA8Unorm,
		Usage:  gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	}, nil)
	if err != nil {
		return err
	}
	t.texture = tex
	return nil
}

// Texture returns the backing texture, or nil while unallocated.
func (t *BatchTexture) Texture() *Texture { return t.texture }

// batchTextureDimension returns the side length of the smallest square
// texture holding at least featureCount texels.
func batchTextureDimension(featureCount int) uint32 {
	if featureCount < 1 {
		return 1
	}
	side := uint32(math.Ceil(math.Sqrt(float64(featureCount))))
	if side == 0 {
		side = 1
	}
	return side
}
