package model

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/model/internal/gpu"
	"github.com/gogpu/model/modelcore"
)

// DeviceHandle provides GPU device access from the host application.
//
// The host (e.g., a gogpu.App) implements the provider and passes it in;
// model RECEIVES the device from the host, it does NOT create one. This
// keeps GPU resources shared between the model layer and the rest of the
// application.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// model-specific name for the interface while maintaining full
// compatibility with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// Device creates and uploads the GPU resources referenced by models:
// geometry buffers, material textures, and batch textures. Every record
// it returns carries a device-assigned identity and an authoritative byte
// size, which is what model statistics consume.
type Device struct {
	adapter *gpu.Adapter

	destroyed atomic.Bool
}

// NewDevice creates a Device from a host device provider. The provider
// must expose HAL access (HalDevice() any and HalQueue() any returning
// hal.Device and hal.Queue); ErrNoHALAccess is returned otherwise.
func NewDevice(provider DeviceHandle) (*Device, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHALAccess
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHALAccess)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHALAccess)
	}
	return NewHALDevice(device, queue)
}

// NewHALDevice creates a Device directly from HAL handles. Use NewDevice
// when the host exposes a gpucontext provider instead.
func NewHALDevice(device hal.Device, queue hal.Queue) (*Device, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	return &Device{adapter: gpu.NewAdapter(device, queue)}, nil
}

// BufferDescriptor describes a geometry buffer to create and upload.
type BufferDescriptor struct {
	// Label is an optional debug name.
	Label string

	// Data is the buffer content; it is uploaded at creation.
	Data []byte

	// Usage specifies how the buffer will be used.
	Usage gputypes.BufferUsage

	// KeepCPUCopy retains Data as a CPU shadow copy on the returned
	// record. Statistics model a shadow copy as doubling the buffer's
	// footprint.
	KeepCPUCopy bool
}

// CreateBuffer creates a GPU buffer, uploads its data, and returns the
// sized record.
func (d *Device) CreateBuffer(desc *BufferDescriptor) (*Buffer, error) {
	if d.destroyed.Load() {
		return nil, ErrDeviceDestroyed
	}
	if len(desc.Data) == 0 {
		return nil, ErrEmptyBuffer
	}

	usage := desc.Usage | gputypes.BufferUsageCopyDst
	id, err := d.adapter.CreateBuffer(len(desc.Data), usage, desc.Label)
	if err != nil {
		return nil, err
	}
	d.adapter.WriteBuffer(id, 0, desc.Data)

	Logger().Debug("model: buffer created",
		"label", desc.Label, "size", len(desc.Data))

	b := &Buffer{
		id:          id,
		sizeInBytes: int64(len(desc.Data)),
		usage:       usage,
		label:       desc.Label,
	}
	if desc.KeepCPUCopy {
		b.cpuCopy = desc.Data
	}
	return b, nil
}

// CreateTexture creates a GPU texture and returns the sized record.
// Zero Depth and MipLevelCount resolve to 1. When data is non-nil its
// levels are uploaded; the data's extent and format must match desc.
func (d *Device) CreateTexture(desc *TextureDescriptor, data *TextureData) (*Texture, error) {
	if d.destroyed.Load() {
		return nil, ErrDeviceDestroyed
	}
	if desc.Width == 0 || desc.Height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidTextureSize, desc.Width, desc.Height)
	}

	// Resolve defaults
	resolved := *desc
	if resolved.Depth == 0 {
		resolved.Depth = 1
	}
	if resolved.MipLevelCount == 0 {
		resolved.MipLevelCount = 1
	}

	halDesc := &hal.TextureDescriptor{
		Label: resolved.Label,
		Size: hal.Extent3D{
			Width:              resolved.Width,
			Height:             resolved.Height,
			DepthOrArrayLayers: resolved.Depth,
		},
		MipLevelCount: resolved.MipLevelCount,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        resolved.Format,
		Usage:         resolved.Usage,
	}

	id, err := d.adapter.CreateTexture(halDesc)
	if err != nil {
		return nil, err
	}

	if data != nil {
		d.uploadTextureData(id, &resolved, data)
	}

	t := &Texture{
		id:          id,
		desc:        resolved,
		sizeInBytes: textureByteLength(&resolved),
	}

	Logger().Debug("model: texture created",
		"label", resolved.Label,
		"size", fmt.Sprintf("%dx%d", resolved.Width, resolved.Height),
		"mips", resolved.MipLevelCount,
		"bytes", t.sizeInBytes)

	return t, nil
}

// uploadTextureData writes each available mip level of data to the texture.
func (d *Device) uploadTextureData(id modelcore.TextureID, desc *TextureDescriptor, data *TextureData) {
	bpp := uint32(modelcore.BytesPerPixel(desc.Format))

	levels := uint32(len(data.Levels))
	if levels > desc.MipLevelCount {
		levels = desc.MipLevelCount
	}
	for level := uint32(0); level < levels; level++ {
		w := mipDimension(desc.Width, level)
		h := mipDimension(desc.Height, level)
		d.adapter.WriteTexture(id, level, data.Levels[level], w*bpp, hal.Extent3D{
			Width:              w,
			Height:             h,
			DepthOrArrayLayers: desc.Depth,
		})
	}
}

// CreateBatchTexture reserves an identity for a batch texture covering
// featureCount features. No GPU memory is allocated; the backing texture
// is created by [BatchTexture.Allocate] once the feature data arrives.
func (d *Device) CreateBatchTexture(featureCount int, label string) (*BatchTexture, error) {
	if d.destroyed.Load() {
		return nil, ErrDeviceDestroyed
	}
	if featureCount <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidFeatureCount, featureCount)
	}
	return &BatchTexture{
		id:           d.adapter.ReserveTextureID(),
		featureCount: featureCount,
		label:        label,
	}, nil
}

// DestroyBuffer releases a buffer's GPU allocation.
func (d *Device) DestroyBuffer(b *Buffer) {
	if b == nil {
		return
	}
	d.adapter.DestroyBuffer(b.id)
}

// DestroyTexture releases a texture's GPU allocation.
func (d *Device) DestroyTexture(t *Texture) {
	if t == nil {
		return
	}
	d.adapter.DestroyTexture(t.id)
}

// Destroy releases every resource created through this device. Creation
// calls after Destroy return ErrDeviceDestroyed.
func (d *Device) Destroy() {
	d.destroyed.Store(true)
	d.adapter.Destroy()
}
