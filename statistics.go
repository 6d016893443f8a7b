package model

import "github.com/gogpu/model/modelcore"

// Statistics tracks the GPU and CPU memory consumed by one model's
// resources: vertex/index geometry, textures, property tables, and the
// dynamically-sized batch textures used for picking and styling.
//
// A model's resources are frequently shared across several of its draw
// primitives (two primitives reusing one vertex buffer, one base color
// texture bound by many materials). Statistics deduplicates by resource
// identity so that each distinct buffer or texture contributes to its
// total exactly once per pipeline generation, no matter how many
// primitives register it.
//
// Batch textures are handled differently from regular textures: they load
// asynchronously and their byte size changes after registration (zero
// until the feature data arrives, final size afterwards). Statistics keeps
// live references and recomputes their aggregate on every read instead of
// accumulating a snapshot, so [Statistics.BatchTexturesByteLength] never
// reports a stale size.
//
// The owning pipeline calls [Statistics.Clear] once per rebuild, then the
// registration methods once per resource encountered while traversing the
// model's primitives. Registration is idempotent and commutative per
// identity within one generation.
//
// Statistics follows the single-threaded frame-update model and is not
// safe for concurrent use.
type Statistics struct {
	// PointsLength is the total number of point primitives.
	// Caller-accumulated by the owning pipeline; no identity tracking.
	PointsLength int

	// TrianglesLength is the total number of triangles across all
	// triangle list, strip, and fan primitives.
	// Caller-accumulated by the owning pipeline; no identity tracking.
	TrianglesLength int

	// PropertyTablesByteLength is the total byte size of property tables.
	// Caller-accumulated by the owning pipeline; no identity tracking.
	PropertyTablesByteLength int64

	// geometryByteLength accumulates counted geometry buffer bytes.
	geometryByteLength int64

	// texturesByteLength accumulates counted texture bytes.
	texturesByteLength int64

	// bufferIDs holds buffer identities already folded into
	// geometryByteLength this generation.
	bufferIDs map[modelcore.BufferID]struct{}

	// textureIDs holds texture identities already folded into
	// texturesByteLength this generation.
	textureIDs map[modelcore.TextureID]struct{}

	// batchTextures maps batch texture identity to a live reference whose
	// current size is sampled on every read. Never sized at registration.
	batchTextures map[modelcore.TextureID]*BatchTexture
}

// NewStatistics creates an empty Statistics. All totals start at zero.
func NewStatistics() *Statistics {
	return &Statistics{
		bufferIDs:     make(map[modelcore.BufferID]struct{}),
		textureIDs:    make(map[modelcore.TextureID]struct{}),
		batchTextures: make(map[modelcore.TextureID]*BatchTexture),
	}
}

// Clear resets all totals to zero and forgets every registered identity.
// The owning pipeline must call Clear before re-traversing primitives for
// a rebuilt pipeline; otherwise stale totals persist and new registrations
// accumulate on top of old ones.
func (s *Statistics) Clear() {
	s.PointsLength = 0
	s.TrianglesLength = 0
	s.PropertyTablesByteLength = 0
	s.geometryByteLength = 0
	s.texturesByteLength = 0
	clear(s.bufferIDs)
	clear(s.textureIDs)
	clear(s.batchTextures)
}

// AddBuffer registers a geometry buffer. The first registration of a
// buffer identity adds its byte size to the geometry total; repeated
// registrations of the same identity are no-ops.
//
// When hasCPUCopy is true the buffer retains a CPU-resident shadow copy,
// modeled as consuming an equal number of additional bytes. Only the flag
// passed on the first registration of an identity is honored for the
// current generation.
func (s *Statistics) AddBuffer(buffer *Buffer, hasCPUCopy bool) {
	checkArg(buffer != nil, "AddBuffer", "buffer is nil")

	if _, seen := s.bufferIDs[buffer.ID()]; !seen {
		n := buffer.SizeInBytes()
		if hasCPUCopy {
			n *= 2
		}
		s.geometryByteLength += n
	}
	s.bufferIDs[buffer.ID()] = struct{}{}
}

// AddTexture registers a material or feature ID texture whose size is
// fixed at creation time. The first registration of a texture identity
// adds its byte size to the texture total; repeated registrations are
// no-ops.
//
// Batch textures must not be passed here: their size is not stable at
// registration time. Use [Statistics.AddBatchTexture] instead.
func (s *Statistics) AddTexture(texture *Texture) {
	checkArg(texture != nil, "AddTexture", "texture is nil")

	if _, seen := s.textureIDs[texture.ID()]; !seen {
		s.texturesByteLength += texture.SizeInBytes()
	}
	s.textureIDs[texture.ID()] = struct{}{}
}

// AddBatchTexture registers a batch texture for lazy size aggregation.
// No size is read at registration time; the reference is retained so its
// current size can be sampled by [Statistics.BatchTexturesByteLength].
// Re-registering an identity is a no-op and keeps the first reference.
func (s *Statistics) AddBatchTexture(batchTexture *BatchTexture) {
	checkArg(batchTexture != nil, "AddBatchTexture", "batchTexture is nil")

	if _, seen := s.batchTextures[batchTexture.ID()]; !seen {
		s.batchTextures[batchTexture.ID()] = batchTexture
	}
}

// GeometryByteLength returns the total byte size of counted geometry
// buffers, including modeled CPU shadow copies.
func (s *Statistics) GeometryByteLength() int64 {
	return s.geometryByteLength
}

// TexturesByteLength returns the total byte size of counted fixed-size
// textures.
func (s *Statistics) TexturesByteLength() int64 {
	return s.texturesByteLength
}

// BatchTexturesByteLength returns the summed current byte size of every
// registered batch texture. The sum is recomputed on each call from the
// live references: a batch texture that has not finished loading reports
// zero now and its final size on a later read, with no re-registration.
func (s *Statistics) BatchTexturesByteLength() int64 {
	var total int64
	for _, bt := range s.batchTextures {
		total += bt.ByteLength()
	}
	return total
}
