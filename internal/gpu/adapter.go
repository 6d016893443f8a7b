package gpu

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/types"

	"github.com/gogpu/model/modelcore"
)

// Adapter tracks the GPU resources created for one device: it maps opaque
// modelcore IDs to live hal handles and performs uploads through the HAL
// queue.
//
// Thread Safety: Adapter is safe for concurrent use from multiple
// goroutines. All resource operations are protected by a mutex.
type Adapter struct {
	mu     sync.RWMutex
	device hal.Device
	queue  hal.Queue

	// ID generation
	nextID atomic.Uint64

	// Resource tracking maps modelcore IDs to hal resources
	buffers  map[modelcore.BufferID]hal.Buffer
	textures map[modelcore.TextureID]hal.Texture
}

// NewAdapter creates a new Adapter wrapping the given device and queue.
// The device and queue are owned by the host application; the adapter
// only owns the resources it creates.
func NewAdapter(device hal.Device, queue hal.Queue) *Adapter {
	a := &Adapter{
		device:   device,
		queue:    queue,
		buffers:  make(map[modelcore.BufferID]hal.Buffer),
		textures: make(map[modelcore.TextureID]hal.Texture),
	}

	// Start ID generation at 1 (0 is invalid)
	a.nextID.Store(1)

	return a
}

// newID generates a unique resource ID.
func (a *Adapter) newID() uint64 {
	return a.nextID.Add(1) - 1
}

// Device returns the underlying HAL device.
func (a *Adapter) Device() hal.Device { return a.device }

// === Buffer Management ===

// CreateBuffer creates a GPU buffer of the given size.
func (a *Adapter) CreateBuffer(size int, usage types.BufferUsage, label string) (modelcore.BufferID, error) {
	if size <= 0 {
		return modelcore.InvalidID, fmt.Errorf("gpu: buffer size must be positive, got %d", size)
	}

	desc := &hal.BufferDescriptor{
		Label: label,
		Size:  uint64(size),
		Usage: usage,
	}

	buffer, err := a.device.CreateBuffer(desc)
	if err != nil {
		return modelcore.InvalidID, fmt.Errorf("gpu: failed to create buffer: %w", err)
	}

	id := modelcore.BufferID(a.newID())

	a.mu.Lock()
	a.buffers[id] = buffer
	a.mu.Unlock()

	return id, nil
}

// WriteBuffer writes data to a buffer at the given offset.
func (a *Adapter) WriteBuffer(id modelcore.BufferID, offset uint64, data []byte) {
	a.mu.RLock()
	buffer, ok := a.buffers[id]
	a.mu.RUnlock()

	if ok && len(data) > 0 {
		a.queue.WriteBuffer(buffer, offset, data)
	}
}

// DestroyBuffer releases a GPU buffer.
func (a *Adapter) DestroyBuffer(id modelcore.BufferID) {
	a.mu.Lock()
	buffer, ok := a.buffers[id]
	if ok {
		delete(a.buffers, id)
	}
	a.mu.Unlock()

	if ok {
		a.device.DestroyBuffer(buffer)
	}
}

// === Texture Management ===

// ReserveTextureID reserves an identity with no backing texture. Batch
// textures use this to obtain a stable identity before their asynchronous
// feature data arrives.
func (a *Adapter) ReserveTextureID() modelcore.TextureID {
	return modelcore.TextureID(a.newID())
}

// CreateTexture creates a GPU texture from a resolved HAL descriptor.
func (a *Adapter) CreateTexture(desc *hal.TextureDescriptor) (modelcore.TextureID, error) {
	if desc.Size.Width == 0 || desc.Size.Height == 0 {
		return modelcore.InvalidID, fmt.Errorf("gpu: invalid texture size %dx%d",
			desc.Size.Width, desc.Size.Height)
	}

	texture, err := a.device.CreateTexture(desc)
	if err != nil {
		return modelcore.InvalidID, fmt.Errorf("gpu: failed to create texture: %w", err)
	}

	id := modelcore.TextureID(a.newID())

	a.mu.Lock()
	a.textures[id] = texture
	a.mu.Unlock()

	return id, nil
}

// WriteTexture writes one mip level of pixel data to a texture.
// bytesPerRow is the stride of one row in data; size is the extent of the
// level being written.
func (a *Adapter) WriteTexture(id modelcore.TextureID, level uint32, data []byte, bytesPerRow uint32, size hal.Extent3D) {
	a.mu.RLock()
	texture, ok := a.textures[id]
	a.mu.RUnlock()

	if !ok || len(data) == 0 {
		return
	}

	dst := &hal.ImageCopyTexture{
		Texture:  texture,
		MipLevel: level,
		Origin:   hal.Origin3D{X: 0, Y: 0, Z: 0},
		Aspect:   types.TextureAspectAll,
	}

	layout := &hal.ImageDataLayout{
		Offset:       0,
		BytesPerRow:  bytesPerRow,
		RowsPerImage: size.Height,
	}

	a.queue.WriteTexture(dst, data, layout, &size)
}

// DestroyTexture releases a GPU texture.
func (a *Adapter) DestroyTexture(id modelcore.TextureID) {
	a.mu.Lock()
	texture, ok := a.textures[id]
	if ok {
		delete(a.textures, id)
	}
	a.mu.Unlock()

	if ok {
		a.device.DestroyTexture(texture)
	}
}

// === Lifecycle ===

// BufferCount returns the number of live buffers.
func (a *Adapter) BufferCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.buffers)
}

// TextureCount returns the number of live textures.
func (a *Adapter) TextureCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.textures)
}

// Destroy releases every resource the adapter created. The device and
// queue belong to the host and are left untouched.
func (a *Adapter) Destroy() {
	a.mu.Lock()
	buffers := a.buffers
	textures := a.textures
	a.buffers = make(map[modelcore.BufferID]hal.Buffer)
	a.textures = make(map[modelcore.TextureID]hal.Texture)
	a.mu.Unlock()

	for _, b := range buffers {
		a.device.DestroyBuffer(b)
	}
	for _, t := range textures {
		a.device.DestroyTexture(t)
	}
}
